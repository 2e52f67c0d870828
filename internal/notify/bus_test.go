package notify_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/notify"
)

type BusPresenterTestSuite struct {
	suite.Suite
	bus       events.EventBus
	presenter *notify.BusPresenter

	mu       sync.Mutex
	received []events.Event
}

func TestBusPresenterSuite(t *testing.T) {
	suite.Run(t, new(BusPresenterTestSuite))
}

func (s *BusPresenterTestSuite) SetupTest() {
	s.bus = events.NewBus()
	s.received = nil

	record := func(_ context.Context, e events.Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.received = append(s.received, e)
		return nil
	}
	for _, t := range []string{
		notify.EventLog, notify.EventStatsChanged, notify.EventStatusChanged, notify.EventDefeated,
	} {
		s.bus.SubscribeFunc(t, 0, record)
	}

	presenter, err := notify.NewBusPresenter(&notify.BusPresenterConfig{EventBus: s.bus})
	s.Require().NoError(err)
	s.presenter = presenter
}

func (s *BusPresenterTestSuite) TearDownTest() {
	s.presenter.Close()
}

func (s *BusPresenterTestSuite) events() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]events.Event(nil), s.received...)
}

func (s *BusPresenterTestSuite) TestRequiresBus() {
	_, err := notify.NewBusPresenter(&notify.BusPresenterConfig{})
	s.Error(err)

	_, err = notify.NewBusPresenter(nil)
	s.Error(err)
}

func (s *BusPresenterTestSuite) TestLogMessageRoundTrip() {
	s.presenter.LogMessage("Slime takes 12 damage", notify.CategoryDamage)
	s.presenter.Close()

	got := s.events()
	s.Require().Len(got, 1)
	text, category, ok := notify.MessageFrom(got[0])
	s.True(ok)
	s.Equal("Slime takes 12 damage", text)
	s.Equal(notify.CategoryDamage, category)
}

func (s *BusPresenterTestSuite) TestEntityEventsCarrySnapshots() {
	c := &entities.Combatant{ID: "m1", Name: "Slime", Kind: entities.EntityTypeMonster, HP: 10, MaxHP: 30}

	s.presenter.StatsChanged(c)
	c.HP = 0
	s.presenter.CombatantDefeated(c)
	s.presenter.StatusEffectsChanged(nil)
	s.presenter.Close()

	got := s.events()
	s.Require().Len(got, 2)

	s.Equal(notify.EventStatsChanged, got[0].Type())
	snap, ok := notify.CombatantFrom(got[0])
	s.Require().True(ok)
	s.Equal(10, snap.HP)

	s.Equal(notify.EventDefeated, got[1].Type())
	snap, ok = notify.CombatantFrom(got[1])
	s.Require().True(ok)
	s.Equal(0, snap.HP)
	s.Equal("m1", snap.GetID())
}

func (s *BusPresenterTestSuite) TestCloseIsIdempotent() {
	s.presenter.Close()
	s.presenter.Close()
	s.presenter.LogMessage("after close", notify.CategoryInfo)
	s.Empty(s.events())
}

// blockingBus holds every Publish until released
type blockingBus struct {
	release chan struct{}
}

func (b *blockingBus) Publish(_ context.Context, _ events.Event) error {
	<-b.release
	return nil
}
func (b *blockingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *blockingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *blockingBus) Unsubscribe(_ string) error { return nil }
func (b *blockingBus) Clear(_ string)             {}
func (b *blockingBus) ClearAll()                  {}

func (s *BusPresenterTestSuite) TestFullQueueDropsInsteadOfBlocking() {
	bus := &blockingBus{release: make(chan struct{})}
	presenter, err := notify.NewBusPresenter(&notify.BusPresenterConfig{EventBus: bus, QueueSize: 1})
	s.Require().NoError(err)

	for i := 0; i < 5; i++ {
		presenter.LogMessage("spam", notify.CategoryInfo)
	}
	s.GreaterOrEqual(presenter.Dropped(), int64(3))

	close(bus.release)
	presenter.Close()
}
