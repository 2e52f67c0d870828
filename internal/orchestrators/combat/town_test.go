package combat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/runes-api/internal/pkg/idgen"
	"github.com/KirkDiggler/runes-api/internal/pkg/schedule"
	"github.com/KirkDiggler/runes-api/internal/repositories/inventory"
	inventorymock "github.com/KirkDiggler/runes-api/internal/repositories/inventory/mock"
	"github.com/KirkDiggler/runes-api/internal/testutils"
)

// winOnce earns the slime's 10 gold and leaves the session idle in the field
func (s *OrchestratorTestSuite) winOnce() *combat.Session {
	sess := s.start()
	s.enter(sess.ID, "field")
	out := s.use(sess.ID, "fireball")
	s.Require().NotNil(out.Victory)
	return out.Session
}

func (s *OrchestratorTestSuite) bag(sessionID string) []*entities.Item {
	out, err := s.inventory.List(s.ctx, inventory.ListInput{SessionID: sessionID})
	s.Require().NoError(err)
	return out.Items
}

func (s *OrchestratorTestSuite) TestBuyItem_NeedsGold() {
	sess := s.start()

	_, err := s.orch.BuyItem(s.ctx, &combat.BuyItemInput{SessionID: sess.ID, ItemID: "charm"})
	s.True(errors.IsInvalidAction(err))
	s.Empty(s.bag(sess.ID))

	_, err = s.orch.BuyItem(s.ctx, &combat.BuyItemInput{SessionID: sess.ID, ItemID: "crown"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestBuyEquipUnequip() {
	sess := s.winOnce()
	s.Equal(10, sess.Player.Gold)

	bought, err := s.orch.BuyItem(s.ctx, &combat.BuyItemInput{SessionID: sess.ID, ItemID: "charm"})
	s.Require().NoError(err)
	s.Equal(0, bought.Session.Player.Gold)
	s.Len(s.bag(sess.ID), 1)

	equipped, err := s.orch.EquipItem(s.ctx, &combat.EquipItemInput{SessionID: sess.ID, ItemID: "charm"})
	s.Require().NoError(err)
	s.Equal("charm", equipped.Equipped.ID)
	s.Nil(equipped.Unequipped)
	s.Equal(5, equipped.Session.Player.Defense)
	s.Require().NotNil(equipped.Session.Player.Equipment.Accessory)
	s.Empty(s.bag(sess.ID))

	removed, err := s.orch.UnequipItem(s.ctx, &combat.UnequipItemInput{SessionID: sess.ID, Slot: entities.SlotAccessory})
	s.Require().NoError(err)
	s.Equal("charm", removed.Unequipped.ID)
	s.Equal(3, removed.Session.Player.Defense)
	s.Nil(removed.Session.Player.Equipment.Accessory)
	s.Len(s.bag(sess.ID), 1)

	_, err = s.orch.UnequipItem(s.ctx, &combat.UnequipItemInput{SessionID: sess.ID, Slot: entities.SlotAccessory})
	s.True(errors.IsInvalidAction(err))

	_, err = s.orch.UnequipItem(s.ctx, &combat.UnequipItemInput{SessionID: sess.ID, Slot: "hat"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEquipItem_SwapsIntoBag() {
	sess := s.start()
	for _, item := range []*entities.Item{
		{ID: "charm", Name: "Charm", Slot: entities.SlotAccessory, Defense: 2},
		{ID: "ring", Name: "Ring", Slot: entities.SlotAccessory, Attack: 4},
	} {
		_, err := s.inventory.AddItem(s.ctx, inventory.AddItemInput{SessionID: sess.ID, Item: item})
		s.Require().NoError(err)
	}

	_, err := s.orch.EquipItem(s.ctx, &combat.EquipItemInput{SessionID: sess.ID, ItemID: "charm"})
	s.Require().NoError(err)

	out, err := s.orch.EquipItem(s.ctx, &combat.EquipItemInput{SessionID: sess.ID, ItemID: "ring"})
	s.Require().NoError(err)
	s.Equal("charm", out.Unequipped.ID)
	s.Equal(11, out.Session.Player.Attack)
	s.Equal(3, out.Session.Player.Defense)

	bag := s.bag(sess.ID)
	s.Require().Len(bag, 1)
	s.Equal("charm", bag[0].ID)
}

func (s *OrchestratorTestSuite) TestEquipItem_Rejections() {
	sess := s.start()

	_, err := s.orch.EquipItem(s.ctx, &combat.EquipItemInput{SessionID: sess.ID, ItemID: "charm"})
	s.True(errors.IsInvalidAction(err), "not in the bag")

	_, err = s.inventory.AddItem(s.ctx, inventory.AddItemInput{
		SessionID: sess.ID,
		Item:      &entities.Item{ID: "gem", Name: "Gem"},
	})
	s.Require().NoError(err)

	_, err = s.orch.EquipItem(s.ctx, &combat.EquipItemInput{SessionID: sess.ID, ItemID: "gem"})
	s.True(errors.IsInvalidAction(err), "no slot")
	s.Len(s.bag(sess.ID), 1, "rejected item goes back in the bag")

	s.enter(sess.ID, "field")
	_, err = s.orch.EquipItem(s.ctx, &combat.EquipItemInput{SessionID: sess.ID, ItemID: "gem"})
	s.True(errors.IsInvalidAction(err), "mid-fight")
}

func (s *OrchestratorTestSuite) TestBuyRevivalStone() {
	sess := s.winOnce()

	out, err := s.orch.BuyItem(s.ctx, &combat.BuyItemInput{SessionID: sess.ID, ItemID: "stone"})
	s.Require().NoError(err)
	s.True(out.Session.Player.HasRevivalStone)
	s.Equal(5, out.Session.Player.Gold)
	s.Empty(s.bag(sess.ID))

	_, err = s.orch.BuyItem(s.ctx, &combat.BuyItemInput{SessionID: sess.ID, ItemID: "stone"})
	s.True(errors.IsInvalidAction(err))
	s.Equal(5, s.get(sess.ID).Player.Gold)
}

func TestEquipItem_InventoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	bag := inventorymock.NewMockRepository(ctrl)

	orch, err := combat.NewOrchestrator(&combat.Config{
		Balance:     config.DefaultBalance(),
		Catalog:     newTestCatalog(),
		Roller:      testutils.NewScriptedRoller(),
		Scheduler:   schedule.NewManual(),
		IDGenerator: idgen.NewSequential("test"),
		Inventory:   bag,
	})
	require.NoError(t, err)

	ctx := context.Background()
	started, err := orch.StartSession(ctx, &combat.StartSessionInput{PlayerName: "Ayla", Rune: entities.ElementFire})
	require.NoError(t, err)
	id := started.Session.ID

	bag.EXPECT().
		TakeItem(gomock.Any(), inventory.TakeItemInput{SessionID: id, ItemID: "charm"}).
		Return(nil, errors.Internal("redis down"))

	_, err = orch.EquipItem(ctx, &combat.EquipItemInput{SessionID: id, ItemID: "charm"})
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))

	got, err := orch.GetSession(ctx, &combat.GetSessionInput{SessionID: id})
	require.NoError(t, err)
	assert.Nil(t, got.Session.Player.Equipment.Accessory)
	assert.Equal(t, 3, got.Session.Player.Defense)
}
