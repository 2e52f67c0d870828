package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/content"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/notify"
	"github.com/KirkDiggler/runes-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/runes-api/internal/pkg/clock"
	"github.com/KirkDiggler/runes-api/internal/pkg/idgen"
	"github.com/KirkDiggler/runes-api/internal/pkg/schedule"
	"github.com/KirkDiggler/runes-api/internal/redis"
	"github.com/KirkDiggler/runes-api/internal/repositories/battles"
	"github.com/KirkDiggler/runes-api/internal/repositories/inventory"
)

// deps holds everything the subcommands share
type deps struct {
	balance   config.Balance
	catalog   *content.Catalog
	clock     clock.Clock
	inventory inventory.Repository
	battles   battles.Repository
	client    redis.Client
}

func loadDeps(ctx context.Context) (*deps, error) {
	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance: %w", err)
	}

	d := &deps{
		balance: balance,
		catalog: content.New(balance),
		clock:   clock.New(),
	}

	if redisURL == "" {
		slog.Info("Using in-memory storage")
		d.inventory = inventory.NewInMemory()
		d.battles = battles.NewInMemory(d.clock)
		return d, nil
	}

	client, err := redis.NewClientFromURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
	}
	d.client = client

	d.inventory, err = inventory.NewRedis(&inventory.RedisConfig{Client: client})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create inventory repository: %w", err)
	}
	d.battles, err = battles.NewRedis(&battles.RedisConfig{Client: client, Clock: d.clock})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create battle repository: %w", err)
	}

	slog.Info("Using redis storage")
	return d, nil
}

func (d *deps) Close() {
	if d.client != nil {
		_ = d.client.Close()
	}
}

func (d *deps) orchestrator(scheduler schedule.Scheduler, presenter notify.Presenter) (combat.Service, error) {
	return combat.NewOrchestrator(&combat.Config{
		Balance:     d.balance,
		Catalog:     d.catalog,
		Roller:      dice.DefaultRoller,
		Scheduler:   scheduler,
		IDGenerator: idgen.NewUUID(""),
		Clock:       d.clock,
		Presenter:   presenter,
		Inventory:   d.inventory,
		Battles:     d.battles,
	})
}
