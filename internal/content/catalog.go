// Package content ships the static game data: rune skill sets, hunting
// areas with their monsters, and items.
package content

import (
	"sort"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
)

// RevivalStoneID is the consumable that saves the player from one defeat
const RevivalStoneID = "revival_stone"

// Catalog is an immutable lookup over the game data
type Catalog struct {
	melee entities.Skill
	runes map[entities.Element][]entities.Skill
	areas map[string]*entities.Area
	items map[string]*entities.Item
}

// New builds the shipped catalog. The melee skill takes its numbers from
// the balance table.
func New(balance config.Balance) *Catalog {
	c := &Catalog{
		melee: entities.Skill{
			ID:          entities.MeleeSkillID,
			Name:        "Strike",
			Description: "A basic attack that restores a little mana",
			Effects: entities.SkillEffects{
				Damage:    &entities.DamageEffect{BasePercent: balance.MeleeBasePercent},
				ManaRegen: balance.MeleeManaRegen,
			},
		},
		runes: runeSkills(),
		areas: make(map[string]*entities.Area),
		items: make(map[string]*entities.Item),
	}

	for _, area := range areas() {
		c.areas[area.ID] = area
		for i := range area.Drops {
			c.items[area.Drops[i].ID] = &area.Drops[i]
		}
	}
	for i := range shopItems {
		c.items[shopItems[i].ID] = &shopItems[i]
	}

	return c
}

// Runes lists the elements a player can bind
func (c *Catalog) Runes() []entities.Element {
	out := make([]entities.Element, 0, len(c.runes))
	for _, e := range entities.AllElements() {
		if _, ok := c.runes[e]; ok {
			out = append(out, e)
		}
	}
	return out
}

// SkillsForRune returns melee followed by the rune's skills
func (c *Catalog) SkillsForRune(element entities.Element) ([]entities.Skill, error) {
	skills, ok := c.runes[element]
	if !ok {
		return nil, errors.InvalidArgumentf("no skills for rune %q", element)
	}
	out := make([]entities.Skill, 0, len(skills)+1)
	out = append(out, c.melee)
	out = append(out, skills...)
	return out, nil
}

// GetArea returns an area by ID
func (c *Catalog) GetArea(id string) (*entities.Area, error) {
	area, ok := c.areas[id]
	if !ok {
		return nil, errors.NotFoundf("area %q not found", id)
	}
	return area, nil
}

// Areas lists every area ordered by recommended level
func (c *Catalog) Areas() []*entities.Area {
	out := make([]*entities.Area, 0, len(c.areas))
	for _, a := range c.areas {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecommendedLevel < out[j].RecommendedLevel
	})
	return out
}

// GetItem returns a copy of an item by ID
func (c *Catalog) GetItem(id string) (*entities.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, errors.NotFoundf("item %q not found", id)
	}
	cp := *item
	return &cp, nil
}

// Shop lists the items sold in town
func (c *Catalog) Shop() []entities.Item {
	return append([]entities.Item(nil), shopItems...)
}
