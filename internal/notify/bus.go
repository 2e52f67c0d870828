package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
)

// Event types published on the bus
const (
	EventLog           = "runes.combat.log"
	EventStatsChanged  = "runes.combat.stats_changed"
	EventStatusChanged = "runes.combat.status_changed"
	EventDefeated      = "runes.combat.defeated"
)

// Keys set on the event context
const (
	KeyMessage  = "message"
	KeyCategory = "category"
)

const defaultQueueSize = 256

// BusPresenterConfig configures a BusPresenter
type BusPresenterConfig struct {
	EventBus  events.EventBus
	QueueSize int
}

// Validate ensures all required dependencies are present
func (c *BusPresenterConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.QueueSize < 0 {
		vb.Field("QueueSize", "must not be negative")
	}

	return vb.Build()
}

// BusPresenter publishes notifications as rpg-toolkit game events from a
// background goroutine. When the queue is full the event is dropped.
type BusPresenter struct {
	bus     events.EventBus
	queue   chan events.Event
	wg      sync.WaitGroup
	once    sync.Once
	closed  atomic.Bool
	dropped atomic.Int64
}

// NewBusPresenter starts a publisher. Call Close to drain it.
func NewBusPresenter(cfg *BusPresenterConfig) (*BusPresenter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bus presenter config")
	}

	size := cfg.QueueSize
	if size == 0 {
		size = defaultQueueSize
	}

	p := &BusPresenter{
		bus:   cfg.EventBus,
		queue: make(chan events.Event, size),
	}

	p.wg.Add(1)
	go p.run()

	return p, nil
}

func (p *BusPresenter) run() {
	defer p.wg.Done()
	for event := range p.queue {
		if err := p.bus.Publish(context.Background(), event); err != nil {
			slog.Warn("Failed to publish combat event", "type", event.Type(), "error", err)
		}
	}
}

// Close stops accepting events and waits until queued ones are published
func (p *BusPresenter) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.queue)
	})
	p.wg.Wait()
}

// Dropped returns how many events were discarded because the queue was full
func (p *BusPresenter) Dropped() int64 {
	return p.dropped.Load()
}

func (p *BusPresenter) enqueue(event events.Event) {
	if p.closed.Load() {
		return
	}
	defer func() {
		// Close raced with us; the event is simply lost
		_ = recover()
	}()
	select {
	case p.queue <- event:
	default:
		p.dropped.Add(1)
		slog.Warn("Combat event queue full, dropping event", "type", event.Type())
	}
}

// LogMessage implements Presenter
func (p *BusPresenter) LogMessage(text string, category Category) {
	event := events.NewGameEvent(EventLog, nil, nil)
	event.Context().Set(KeyMessage, text)
	event.Context().Set(KeyCategory, string(category))
	p.enqueue(event)
}

// StatsChanged implements Presenter
func (p *BusPresenter) StatsChanged(c *entities.Combatant) {
	p.publishEntity(EventStatsChanged, c)
}

// StatusEffectsChanged implements Presenter
func (p *BusPresenter) StatusEffectsChanged(c *entities.Combatant) {
	p.publishEntity(EventStatusChanged, c)
}

// CombatantDefeated implements Presenter
func (p *BusPresenter) CombatantDefeated(c *entities.Combatant) {
	p.publishEntity(EventDefeated, c)
}

// publishEntity sends a snapshot so subscribers never see later mutations
func (p *BusPresenter) publishEntity(eventType string, c *entities.Combatant) {
	if c == nil {
		return
	}
	p.enqueue(events.NewGameEvent(eventType, snapshot(c), nil))
}

// CombatantFrom extracts the combatant snapshot carried by an event
func CombatantFrom(event events.Event) (*entities.Combatant, bool) {
	if event == nil || event.Source() == nil {
		return nil, false
	}
	c, ok := event.Source().(*entities.Combatant)
	return c, ok
}

// MessageFrom extracts the text and category of a log event
func MessageFrom(event events.Event) (string, Category, bool) {
	if event == nil || event.Type() != EventLog {
		return "", "", false
	}
	raw, ok := event.Context().Get(KeyMessage)
	if !ok {
		return "", "", false
	}
	text, _ := raw.(string)
	var category Category
	if rawCat, ok := event.Context().Get(KeyCategory); ok {
		if s, ok := rawCat.(string); ok {
			category = Category(s)
		}
	}
	return text, category, true
}

var (
	_ Presenter = (*BusPresenter)(nil)
	_ Presenter = Nop{}
	_ Presenter = Slog{}
	_ Presenter = (*Recorder)(nil)
)
