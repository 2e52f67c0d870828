package combat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/notify"
	"github.com/KirkDiggler/runes-api/internal/repositories/inventory"
)

// requireCalm rejects gear changes while a fight or resolution is active
func (o *orchestrator) requireCalm(sess *session) error {
	if sess.isGameOver {
		return o.reject(sess, "The game is over.")
	}
	if sess.combatLocked || sess.inBattle() {
		return o.reject(sess, "You cannot do that during a fight.")
	}
	return nil
}

// BuyItem spends gold on a catalog item
func (o *orchestrator) BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := o.requireCalm(sess); err != nil {
		return nil, err
	}

	item, err := o.catalog.GetItem(input.ItemID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load item %s", input.ItemID)
	}
	if sess.player.Gold < item.Price {
		return nil, o.reject(sess, "%s costs %d gold; you have %d.", item.Name, item.Price, sess.player.Gold)
	}
	if item.Revives && sess.player.HasRevivalStone {
		return nil, o.reject(sess, "You already carry a revival stone.")
	}

	if item.Revives {
		sess.player.HasRevivalStone = true
	} else if _, err := o.inventory.AddItem(ctx, inventory.AddItemInput{SessionID: sess.id, Item: item}); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", item.ID)
	}
	sess.player.Gold -= item.Price

	slog.Info("Item bought", "session_id", sess.id, "item_id", item.ID, "price", item.Price)
	o.presenter.LogMessage(fmt.Sprintf("You buy %s for %d gold.", item.Name, item.Price), notify.CategoryLoot)

	return &BuyItemOutput{Item: item, Session: sess.snapshot()}, nil
}

// EquipItem moves an item from the bag into its slot
func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := o.requireCalm(sess); err != nil {
		return nil, err
	}

	taken, err := o.inventory.TakeItem(ctx, inventory.TakeItemInput{SessionID: sess.id, ItemID: input.ItemID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, o.reject(sess, "You don't have that item.")
		}
		return nil, errors.Wrapf(err, "failed to take %s from inventory", input.ItemID)
	}
	item := taken.Item

	if item.Slot == "" {
		o.putBack(ctx, sess, item)
		return nil, o.reject(sess, "%s cannot be equipped.", item.Name)
	}

	prev := sess.player.Equipment.Set(item.Slot, item)
	if prev != nil {
		o.putBack(ctx, sess, prev)
	}
	o.progression.RecalculateStats(sess.player)

	slog.Info("Item equipped", "session_id", sess.id, "item_id", item.ID, "slot", item.Slot)
	o.presenter.LogMessage(fmt.Sprintf("You equip %s.", item.Name), notify.CategoryInfo)
	o.presenter.StatsChanged(&sess.player.Combatant)

	return &EquipItemOutput{Equipped: item, Unequipped: prev, Session: sess.snapshot()}, nil
}

// UnequipItem empties a slot into the bag
func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	slots := make([]string, 0, 4)
	for _, s := range entities.AllSlots() {
		slots = append(slots, string(s))
	}
	errors.ValidateEnum("slot", string(input.Slot), slots, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := o.requireCalm(sess); err != nil {
		return nil, err
	}

	if sess.player.Equipment.Get(input.Slot) == nil {
		return nil, o.reject(sess, "Nothing is equipped in the %s slot.", input.Slot)
	}

	item := sess.player.Equipment.Set(input.Slot, nil)
	if _, err := o.inventory.AddItem(ctx, inventory.AddItemInput{SessionID: sess.id, Item: item}); err != nil {
		sess.player.Equipment.Set(input.Slot, item)
		return nil, errors.Wrapf(err, "failed to store %s", item.ID)
	}
	o.progression.RecalculateStats(sess.player)

	slog.Info("Item unequipped", "session_id", sess.id, "item_id", item.ID, "slot", input.Slot)
	o.presenter.LogMessage(fmt.Sprintf("You take off %s.", item.Name), notify.CategoryInfo)
	o.presenter.StatsChanged(&sess.player.Combatant)

	return &UnequipItemOutput{Unequipped: item, Session: sess.snapshot()}, nil
}

// GrantRevivalStone gives the player a revival stone if they lack one
func (o *orchestrator) GrantRevivalStone(
	_ context.Context,
	input *GrantRevivalStoneInput,
) (*GrantRevivalStoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.isGameOver {
		return nil, o.reject(sess, "The game is over.")
	}
	if sess.player.HasRevivalStone {
		return nil, o.reject(sess, "You already carry a revival stone.")
	}

	sess.player.HasRevivalStone = true
	o.presenter.LogMessage("You receive a revival stone.", notify.CategoryLoot)

	return &GrantRevivalStoneOutput{Session: sess.snapshot()}, nil
}

// putBack returns an item to the bag, logging when that fails
func (o *orchestrator) putBack(ctx context.Context, sess *session, item *entities.Item) {
	if _, err := o.inventory.AddItem(ctx, inventory.AddItemInput{SessionID: sess.id, Item: item}); err != nil {
		slog.Error("Failed to return item to inventory",
			"session_id", sess.id,
			"item_id", item.ID,
			"error", err,
		)
	}
}
