package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/notify"
	"github.com/KirkDiggler/runes-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/runes-api/internal/pkg/schedule"
	"github.com/KirkDiggler/runes-api/internal/repositories/inventory"
)

var (
	playerName string
	playerRune string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive session",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playerName, "name", "Hero", "player name")
	playCmd.Flags().StringVar(&playerRune, "rune", string(entities.ElementFire), "starting rune")
}

const playHelp = `Commands:
  areas                 list hunting areas
  area <id>             travel to an area and fight
  skills                list your skills
  use <skill>           use a skill on the monster
  continue              fight the next monster here
  town                  return to town
  shop                  list the shop
  buy <item>            buy an item
  bag                   list your inventory
  equip <item>          equip an item from your bag
  unequip <slot>        unequip a slot
  rune <element>        change rune
  status                show your stats
  restart               start over after a defeat
  unlock                recover a stuck turn
  quit                  leave the game`

// game binds a terminal to one session
type game struct {
	out       io.Writer
	svc       combat.Service
	deps      *deps
	timer     *schedule.Timer
	sessionID string
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()

	bus := events.NewBus()
	bus.SubscribeFunc(notify.EventLog, 0, func(_ context.Context, e events.Event) error {
		if text, _, ok := notify.MessageFrom(e); ok {
			fmt.Fprintf(out, "  %s\n", text)
		}
		return nil
	})

	presenter, err := notify.NewBusPresenter(&notify.BusPresenterConfig{EventBus: bus})
	if err != nil {
		return fmt.Errorf("failed to create presenter: %w", err)
	}
	defer presenter.Close()

	timer := schedule.NewTimer()
	svc, err := d.orchestrator(timer, presenter)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	started, err := svc.StartSession(ctx, &combat.StartSessionInput{
		PlayerName: playerName,
		Rune:       entities.Element(playerRune),
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	g := &game{out: out, svc: svc, deps: d, timer: timer, sessionID: started.Session.ID}
	defer func() {
		_, _ = svc.EndSession(context.Background(), &combat.EndSessionInput{SessionID: g.sessionID})
	}()

	fmt.Fprintln(out, playHelp)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		if err := g.dispatch(ctx, fields[0], fields[1:]); err != nil {
			switch {
			case errors.IsInvalidAction(err):
				// already reported through the presenter
			case errors.GetCode(err).Recoverable():
				fmt.Fprintf(out, "  error: %s\n", errors.GetMessage(err))
			default:
				return err
			}
		}
	}
}

func (g *game) dispatch(ctx context.Context, command string, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	switch command {
	case "help":
		fmt.Fprintln(g.out, playHelp)
	case "areas":
		for _, area := range g.deps.catalog.Areas() {
			fmt.Fprintf(g.out, "  %-10s %-22s level %d\n", area.ID, area.Name, area.RecommendedLevel)
		}
	case "area":
		_, err := g.svc.EnterArea(ctx, &combat.EnterAreaInput{SessionID: g.sessionID, AreaID: arg})
		return err
	case "skills":
		return g.showSkills(ctx)
	case "use":
		out, err := g.svc.UseSkill(ctx, &combat.UseSkillInput{SessionID: g.sessionID, SkillID: arg})
		if err != nil {
			return err
		}
		if out.MonsterReplyScheduled {
			g.timer.Wait()
		}
		return g.showStatus(ctx)
	case "continue":
		_, err := g.svc.ContinueBattle(ctx, &combat.ContinueBattleInput{SessionID: g.sessionID})
		return err
	case "town":
		_, err := g.svc.ReturnToTown(ctx, &combat.ReturnToTownInput{SessionID: g.sessionID})
		return err
	case "shop":
		for _, item := range g.deps.catalog.Shop() {
			fmt.Fprintf(g.out, "  %-14s %-20s %4d gold\n", item.ID, item.Name, item.Price)
		}
	case "buy":
		_, err := g.svc.BuyItem(ctx, &combat.BuyItemInput{SessionID: g.sessionID, ItemID: arg})
		return err
	case "bag":
		bag, err := g.deps.inventory.List(ctx, inventory.ListInput{SessionID: g.sessionID})
		if err != nil {
			return err
		}
		if len(bag.Items) == 0 {
			fmt.Fprintln(g.out, "  Your bag is empty.")
		}
		for _, item := range bag.Items {
			fmt.Fprintf(g.out, "  %-14s %-20s %s\n", item.ID, item.Name, item.Slot)
		}
	case "equip":
		_, err := g.svc.EquipItem(ctx, &combat.EquipItemInput{SessionID: g.sessionID, ItemID: arg})
		return err
	case "unequip":
		_, err := g.svc.UnequipItem(ctx, &combat.UnequipItemInput{SessionID: g.sessionID, Slot: entities.Slot(arg)})
		return err
	case "rune":
		_, err := g.svc.SelectRune(ctx, &combat.SelectRuneInput{SessionID: g.sessionID, Rune: entities.Element(arg)})
		return err
	case "status":
		return g.showStatus(ctx)
	case "restart":
		_, err := g.svc.Restart(ctx, &combat.RestartInput{SessionID: g.sessionID, Rune: entities.Element(arg)})
		return err
	case "unlock":
		out, err := g.svc.ForceUnlock(ctx, &combat.ForceUnlockInput{SessionID: g.sessionID})
		if err != nil {
			return err
		}
		if !out.WasLocked {
			fmt.Fprintln(g.out, "  Nothing to unlock.")
		}
	default:
		fmt.Fprintf(g.out, "  Unknown command %q. Type help.\n", command)
	}
	return nil
}

func (g *game) showSkills(ctx context.Context) error {
	got, err := g.svc.GetSession(ctx, &combat.GetSessionInput{SessionID: g.sessionID})
	if err != nil {
		return err
	}
	for _, skill := range got.Session.Player.Skills {
		fmt.Fprintf(g.out, "  %-14s %-18s %3d mana  %s\n", skill.ID, skill.Name, skill.ManaCost, skill.Description)
	}
	return nil
}

func (g *game) showStatus(ctx context.Context) error {
	got, err := g.svc.GetSession(ctx, &combat.GetSessionInput{SessionID: g.sessionID})
	if err != nil {
		return err
	}
	sess := got.Session
	p := sess.Player

	fmt.Fprintf(g.out, "  %s  Lv %d %s  HP %d/%d  MP %d/%d  ATK %d  DEF %d  EXP %d/%d  Gold %d\n",
		p.Name, p.Level, p.Rune, p.HP, p.MaxHP, p.Mana, p.MaxMana, p.Attack, p.Defense,
		p.Exp, p.NextLevelExp, p.Gold)
	if m := sess.Monster; m != nil {
		fmt.Fprintf(g.out, "  %s  Lv %d %s  HP %d/%d\n", m.Name, m.Level, m.Element, m.HP, m.MaxHP)
	}
	if sess.IsGameOver {
		fmt.Fprintln(g.out, "  Game over. Type restart to begin again.")
	}
	return nil
}
