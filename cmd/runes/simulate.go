package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/notify"
	"github.com/KirkDiggler/runes-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/runes-api/internal/pkg/schedule"
)

var (
	simSessions int
	simFights   int
	simArea     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run automated sessions to check the balance table",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simSessions, "sessions", 8, "sessions to run in parallel")
	simulateCmd.Flags().IntVar(&simFights, "fights", 30, "fights per session")
	simulateCmd.Flags().StringVar(&simArea, "area", "meadow", "area to hunt in")
}

// simResult summarizes one automated session
type simResult struct {
	Rune   entities.Element
	Level  int
	Wins   int
	Bosses int
	Turns  int
	Died   bool
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	svc, err := d.orchestrator(schedule.NewInline(), notify.Slog{Logger: slog.Default()})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	runes := d.catalog.Runes()
	results := make([]simResult, simSessions)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < simSessions; i++ {
		element := runes[i%len(runes)]
		g.Go(func() error {
			res, err := simulateSession(gctx, svc, fmt.Sprintf("Sim%d", i+1), element, simArea, simFights)
			if err != nil {
				return fmt.Errorf("session %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUNE\tLEVEL\tWINS\tBOSSES\tTURNS\tDIED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%t\n", r.Rune, r.Level, r.Wins, r.Bosses, r.Turns, r.Died)
	}
	return w.Flush()
}

// simulateSession plays greedily: the strongest affordable damage skill, or
// melee when mana runs low. It stops after fights wins or a final defeat.
func simulateSession(
	ctx context.Context,
	svc combat.Service,
	name string,
	element entities.Element,
	areaID string,
	fights int,
) (simResult, error) {
	res := simResult{Rune: element}

	started, err := svc.StartSession(ctx, &combat.StartSessionInput{PlayerName: name, Rune: element})
	if err != nil {
		return res, err
	}
	id := started.Session.ID
	defer func() {
		_, _ = svc.EndSession(context.Background(), &combat.EndSessionInput{SessionID: id})
	}()

	if _, err := svc.EnterArea(ctx, &combat.EnterAreaInput{SessionID: id, AreaID: areaID}); err != nil {
		return res, err
	}

	kills := 0
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		got, err := svc.GetSession(ctx, &combat.GetSessionInput{SessionID: id})
		if err != nil {
			return res, err
		}
		sess := got.Session
		if sess.IsGameOver {
			res.Died = true
			break
		}

		if sess.Monster == nil {
			// Kills land here whether the player's skill or a poison tick
			// during the monster's reply finished the fight. Bosses do not
			// count toward RegularKills.
			if sess.LastOutcome == combat.OutcomeVictory {
				res.Wins++
				if sess.RegularKills == kills {
					res.Bosses++
				}
				kills = sess.RegularKills
			}
			if res.Wins >= fights {
				break
			}
			if _, err := svc.ContinueBattle(ctx, &combat.ContinueBattleInput{SessionID: id}); err != nil {
				return res, err
			}
			continue
		}

		if _, err := svc.UseSkill(ctx, &combat.UseSkillInput{SessionID: id, SkillID: pickSkill(sess.Player)}); err != nil {
			return res, err
		}
		res.Turns++
	}

	got, err := svc.GetSession(ctx, &combat.GetSessionInput{SessionID: id})
	if err != nil {
		return res, err
	}
	res.Level = got.Session.Player.Level
	if got.Session.IsGameOver {
		res.Died = true
	}
	return res, nil
}

func pickSkill(p *entities.Player) string {
	best := entities.MeleeSkillID
	bestBase := 0.0
	for _, skill := range p.Skills {
		dmg := skill.Effects.Damage
		if skill.IsMelee() || dmg == nil || skill.ManaCost > p.Mana {
			continue
		}
		if dmg.Base > bestBase {
			best, bestBase = skill.ID, dmg.Base
		}
	}
	return best
}
