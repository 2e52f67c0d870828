package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/notify"
)

func TestRecorder(t *testing.T) {
	r := notify.NewRecorder()
	c := &entities.Combatant{ID: "p1", HP: 5, MaxHP: 10}

	r.LogMessage("hit", notify.CategoryDamage)
	r.LogMessage("healed", notify.CategoryHeal)
	r.StatsChanged(c)
	c.HP = 9

	assert.Equal(t, []string{"hit", "healed"}, r.Messages(""))
	assert.Equal(t, []string{"healed"}, r.Messages(notify.CategoryHeal))
	assert.Equal(t, 1, r.Count(notify.EventStatsChanged))
	assert.Equal(t, 5, r.Entries()[2].Snapshot.HP)
}

func TestNopAndSlogDoNotPanic(t *testing.T) {
	c := &entities.Combatant{ID: "p1"}
	for _, p := range []notify.Presenter{notify.Nop{}, notify.Slog{}} {
		p.LogMessage("x", notify.CategoryInfo)
		p.StatsChanged(c)
		p.StatusEffectsChanged(c)
		p.CombatantDefeated(c)
	}
}
