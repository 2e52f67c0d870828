// Package notify delivers combat notifications to whoever renders them.
//
// The combat engine never waits on a presenter. BusPresenter copies what it
// needs and hands events to a background publisher.
package notify

import (
	"log/slog"
	"sync"

	"github.com/KirkDiggler/runes-api/internal/entities"
)

// Category classifies a log line for styling
type Category string

// Log categories
const (
	CategoryInfo    Category = "info"
	CategoryDamage  Category = "damage"
	CategoryHeal    Category = "heal"
	CategoryBuff    Category = "buff"
	CategoryDebuff  Category = "debuff"
	CategoryLevel   Category = "level"
	CategoryLoot    Category = "loot"
	CategoryVictory Category = "victory"
	CategoryDefeat  Category = "defeat"
	CategoryError   Category = "error"
)

// Presenter receives combat notifications. Implementations must not block.
type Presenter interface {
	LogMessage(text string, category Category)
	StatsChanged(c *entities.Combatant)
	StatusEffectsChanged(c *entities.Combatant)
	CombatantDefeated(c *entities.Combatant)
}

// Nop discards every notification
type Nop struct{}

// LogMessage implements Presenter
func (Nop) LogMessage(string, Category) {}

// StatsChanged implements Presenter
func (Nop) StatsChanged(*entities.Combatant) {}

// StatusEffectsChanged implements Presenter
func (Nop) StatusEffectsChanged(*entities.Combatant) {}

// CombatantDefeated implements Presenter
func (Nop) CombatantDefeated(*entities.Combatant) {}

// Slog writes notifications to the structured logger at debug level,
// except log lines which go out at info
type Slog struct {
	Logger *slog.Logger
}

func (s Slog) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// LogMessage implements Presenter
func (s Slog) LogMessage(text string, category Category) {
	s.logger().Info(text, "category", category)
}

// StatsChanged implements Presenter
func (s Slog) StatsChanged(c *entities.Combatant) {
	s.logger().Debug("Stats changed", "id", c.ID, "hp", c.HP, "max_hp", c.MaxHP)
}

// StatusEffectsChanged implements Presenter
func (s Slog) StatusEffectsChanged(c *entities.Combatant) {
	s.logger().Debug("Status effects changed", "id", c.ID, "count", len(c.StatusEffects))
}

// CombatantDefeated implements Presenter
func (s Slog) CombatantDefeated(c *entities.Combatant) {
	s.logger().Debug("Combatant defeated", "id", c.ID, "name", c.Name)
}

// Entry is one notification captured by a Recorder
type Entry struct {
	Kind     string
	Text     string
	Category Category
	Snapshot *entities.Combatant
}

// Recorder keeps every notification in memory
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func snapshot(c *entities.Combatant) *entities.Combatant {
	if c == nil {
		return nil
	}
	cp := c.CloneCombatant()
	return &cp
}

// LogMessage implements Presenter
func (r *Recorder) LogMessage(text string, category Category) {
	r.add(Entry{Kind: EventLog, Text: text, Category: category})
}

// StatsChanged implements Presenter
func (r *Recorder) StatsChanged(c *entities.Combatant) {
	r.add(Entry{Kind: EventStatsChanged, Snapshot: snapshot(c)})
}

// StatusEffectsChanged implements Presenter
func (r *Recorder) StatusEffectsChanged(c *entities.Combatant) {
	r.add(Entry{Kind: EventStatusChanged, Snapshot: snapshot(c)})
}

// CombatantDefeated implements Presenter
func (r *Recorder) CombatantDefeated(c *entities.Combatant) {
	r.add(Entry{Kind: EventDefeated, Snapshot: snapshot(c)})
}

// Entries returns a copy of everything recorded
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the recorded log lines with the given category, or all
// log lines when category is empty
func (r *Recorder) Messages(category Category) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Kind != EventLog {
			continue
		}
		if category == "" || e.Category == category {
			out = append(out, e.Text)
		}
	}
	return out
}

// Count returns how many notifications of a kind were recorded
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
