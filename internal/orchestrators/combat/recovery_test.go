package combat_test

import (
	"strings"
	"time"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/notify"
	"github.com/KirkDiggler/runes-api/internal/orchestrators/combat"
)

// failingPresenter records like notify.Recorder but panics once on the first
// message containing trigger
type failingPresenter struct {
	*notify.Recorder
	trigger string
}

func (p *failingPresenter) LogMessage(text string, category notify.Category) {
	if p.trigger != "" && strings.Contains(text, p.trigger) {
		p.trigger = ""
		panic("presenter failed")
	}
	p.Recorder.LogMessage(text, category)
}

// forceUnlock calls ForceUnlock and fails the test if the session stays blocked
func (s *OrchestratorTestSuite) forceUnlock(sessionID string) *combat.ForceUnlockOutput {
	type result struct {
		out *combat.ForceUnlockOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := s.orch.ForceUnlock(s.ctx, &combat.ForceUnlockInput{SessionID: sessionID})
		done <- result{out: out, err: err}
	}()

	select {
	case res := <-done:
		s.Require().NoError(res.err)
		return res.out
	case <-time.After(time.Second):
		s.FailNow("session mutex still held")
		return nil
	}
}

func (s *OrchestratorTestSuite) TestUseSkill_PanicHandsTurnBack() {
	s.orch = s.newOrchestratorWith(s.balance, &failingPresenter{Recorder: s.presenter, trigger: "Ayla uses"})
	sess := s.start()
	s.enter(sess.ID, "field")

	var out *combat.UseSkillOutput
	var err error
	s.NotPanics(func() {
		out, err = s.orch.UseSkill(s.ctx, &combat.UseSkillInput{SessionID: sess.ID, SkillID: entities.MeleeSkillID})
	})
	s.Nil(out)
	s.True(errors.IsInconsistentState(err))
	s.Equal(sess.ID, errors.GetMeta(err)["session_id"])
	s.Equal(0, s.scheduler.Pending())

	unlocked := s.forceUnlock(sess.ID)
	s.False(unlocked.WasLocked)

	got := s.get(sess.ID)
	s.False(got.CombatLocked)
	s.True(got.IsPlayerTurn)
	s.Equal(combat.StatePlayerTurn, got.State)
	s.Equal(12, got.Monster.HP)

	next := s.use(sess.ID, entities.MeleeSkillID)
	s.Equal(6, next.Action.Damage)
	s.True(next.MonsterReplyScheduled)
}

func (s *OrchestratorTestSuite) TestMonsterReply_PanicHandsTurnBack() {
	s.orch = s.newOrchestratorWith(s.balance, &failingPresenter{Recorder: s.presenter, trigger: "Slime uses"})
	sess := s.start()
	s.enter(sess.ID, "field")

	s.use(sess.ID, entities.MeleeSkillID)
	s.NotPanics(func() {
		s.True(s.scheduler.Step())
	})

	got := s.get(sess.ID)
	s.False(got.CombatLocked)
	s.True(got.IsPlayerTurn)
	s.Equal(combat.StatePlayerTurn, got.State)
	s.Equal(100, got.Player.HP)
	s.Contains(s.presenter.Messages(notify.CategoryError), "Something went wrong. It is your turn.")

	unlocked := s.forceUnlock(sess.ID)
	s.False(unlocked.WasLocked)

	next := s.use(sess.ID, entities.MeleeSkillID)
	s.Require().NotNil(next.Victory)
	s.Nil(next.Session.Monster)
	s.True(next.Session.IsPlayerTurn)
}
