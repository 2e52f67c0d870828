package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/runes-api/internal/orchestrators/combat/mock"
	"github.com/KirkDiggler/runes-api/internal/testutils/builders"
)

func TestSimulateSession_CountsEveryVictory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := combatmock.NewMockService(ctrl)
	ctx := context.Background()

	player := builders.NewPlayerBuilder().WithID("p1").Build()
	fighting := &combat.Session{ID: "s1", Player: player, Monster: builders.NewMonsterBuilder().Build()}
	// Regular kill landed by the player's skill
	firstWin := &combat.Session{ID: "s1", Player: player, LastOutcome: combat.OutcomeVictory, RegularKills: 1}
	// Boss finished by poison during its own turn: UseSkill reports no victory
	bossWin := &combat.Session{ID: "s1", Player: player, LastOutcome: combat.OutcomeVictory, RegularKills: 1}
	leveled := builders.NewPlayerBuilder().WithID("p1").WithLevel(3).Build()

	gomock.InOrder(
		svc.EXPECT().StartSession(ctx, &combat.StartSessionInput{PlayerName: "Sim1", Rune: entities.ElementWater}).
			Return(&combat.StartSessionOutput{Session: &combat.Session{ID: "s1"}}, nil),
		svc.EXPECT().EnterArea(ctx, &combat.EnterAreaInput{SessionID: "s1", AreaID: "meadow"}).
			Return(&combat.EnterAreaOutput{}, nil),

		svc.EXPECT().GetSession(ctx, gomock.Any()).Return(&combat.GetSessionOutput{Session: fighting}, nil),
		svc.EXPECT().UseSkill(ctx, gomock.Any()).
			Return(&combat.UseSkillOutput{Victory: &combat.VictoryResult{}}, nil),
		svc.EXPECT().GetSession(ctx, gomock.Any()).Return(&combat.GetSessionOutput{Session: firstWin}, nil),
		svc.EXPECT().ContinueBattle(ctx, &combat.ContinueBattleInput{SessionID: "s1"}).
			Return(&combat.ContinueBattleOutput{}, nil),

		svc.EXPECT().GetSession(ctx, gomock.Any()).Return(&combat.GetSessionOutput{Session: fighting}, nil),
		svc.EXPECT().UseSkill(ctx, gomock.Any()).
			Return(&combat.UseSkillOutput{MonsterReplyScheduled: true}, nil),
		svc.EXPECT().GetSession(ctx, gomock.Any()).Return(&combat.GetSessionOutput{Session: bossWin}, nil),

		svc.EXPECT().GetSession(ctx, gomock.Any()).
			Return(&combat.GetSessionOutput{Session: &combat.Session{ID: "s1", Player: leveled}}, nil),
		svc.EXPECT().EndSession(gomock.Any(), &combat.EndSessionInput{SessionID: "s1"}).
			Return(&combat.EndSessionOutput{}, nil),
	)

	res, err := simulateSession(ctx, svc, "Sim1", entities.ElementWater, "meadow", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Wins)
	assert.Equal(t, 1, res.Bosses)
	assert.Equal(t, 2, res.Turns)
	assert.Equal(t, 3, res.Level)
	assert.False(t, res.Died)
}

func TestSimulateSession_StopsOnDefeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := combatmock.NewMockService(ctrl)
	ctx := context.Background()

	player := builders.NewPlayerBuilder().Build()
	over := &combat.Session{ID: "s1", Player: player, IsGameOver: true, LastOutcome: combat.OutcomeDefeat}

	svc.EXPECT().StartSession(ctx, gomock.Any()).
		Return(&combat.StartSessionOutput{Session: &combat.Session{ID: "s1"}}, nil)
	svc.EXPECT().EnterArea(ctx, gomock.Any()).Return(&combat.EnterAreaOutput{}, nil)
	svc.EXPECT().GetSession(ctx, gomock.Any()).Return(&combat.GetSessionOutput{Session: over}, nil).Times(2)
	svc.EXPECT().EndSession(gomock.Any(), gomock.Any()).Return(&combat.EndSessionOutput{}, nil)

	res, err := simulateSession(ctx, svc, "Sim1", entities.ElementFire, "meadow", 5)
	require.NoError(t, err)
	assert.True(t, res.Died)
	assert.Zero(t, res.Wins)
}

func TestSimulateSession_PropagatesServiceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := combatmock.NewMockService(ctrl)
	ctx := context.Background()

	svc.EXPECT().StartSession(ctx, gomock.Any()).Return(nil, errors.InvalidArgument("rune is required"))

	_, err := simulateSession(ctx, svc, "Sim1", "", "meadow", 1)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPickSkill(t *testing.T) {
	skills := []entities.Skill{
		{ID: entities.MeleeSkillID, Name: "Strike"},
		{ID: "spark", ManaCost: 5, Effects: entities.SkillEffects{Damage: &entities.DamageEffect{Base: 10}}},
		{ID: "blaze", ManaCost: 30, Effects: entities.SkillEffects{Damage: &entities.DamageEffect{Base: 40}}},
		{ID: "mend", ManaCost: 1, Effects: entities.SkillEffects{Heal: &entities.HealEffect{Amount: 99}}},
	}

	rich := builders.NewPlayerBuilder().WithMana(50, 50).WithSkills(skills...).Build()
	assert.Equal(t, "blaze", pickSkill(rich))

	poor := builders.NewPlayerBuilder().WithMana(10, 50).WithSkills(skills...).Build()
	assert.Equal(t, "spark", pickSkill(poor))

	empty := builders.NewPlayerBuilder().WithMana(0, 50).WithSkills(skills...).Build()
	assert.Equal(t, entities.MeleeSkillID, pickSkill(empty))
}
