package entities

// Slot is an equipment slot
type Slot string

// Equipment slots
const (
	SlotWeapon    Slot = "weapon"
	SlotShield    Slot = "shield"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// AllSlots lists the fixed equipment slots
func AllSlots() []Slot {
	return []Slot{SlotWeapon, SlotShield, SlotArmor, SlotAccessory}
}

// Item is an equippable piece of gear or a consumable drop
type Item struct {
	ID    string
	Name  string
	Slot  Slot // empty for non-equippable items
	Price int

	// Flat stat deltas while equipped
	Attack  int
	Defense int
	MaxHP   int
	MaxMana int

	// Added to the wearer's elemental boost percent
	ElementalBoostPercent float64

	// Grants a revival stone when used
	Revives bool
}

// Equipment holds one nullable item per slot
type Equipment struct {
	Weapon    *Item
	Shield    *Item
	Armor     *Item
	Accessory *Item
}

// Get returns the item in a slot
func (e *Equipment) Get(slot Slot) *Item {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotShield:
		return e.Shield
	case SlotArmor:
		return e.Armor
	case SlotAccessory:
		return e.Accessory
	default:
		return nil
	}
}

// Set puts an item in a slot and returns what was there. Unknown slots are ignored.
func (e *Equipment) Set(slot Slot, item *Item) *Item {
	prev := e.Get(slot)
	switch slot {
	case SlotWeapon:
		e.Weapon = item
	case SlotShield:
		e.Shield = item
	case SlotArmor:
		e.Armor = item
	case SlotAccessory:
		e.Accessory = item
	default:
		return nil
	}
	return prev
}

// Items returns the equipped items in slot order
func (e *Equipment) Items() []*Item {
	var items []*Item
	for _, slot := range AllSlots() {
		if it := e.Get(slot); it != nil {
			items = append(items, it)
		}
	}
	return items
}
