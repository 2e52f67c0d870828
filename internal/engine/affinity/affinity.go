// Package affinity holds the elemental type chart.
package affinity

import "github.com/KirkDiggler/runes-api/internal/entities"

// Multipliers returned by Multiplier
const (
	Strong  = 2.0
	Weak    = 0.5
	Immune  = 0.0
	Neutral = 1.0
)

type matchups struct {
	strong []entities.Element
	weak   []entities.Element
	immune []entities.Element
}

// chart is keyed by the attacking element.
// Fire against Fire is neutral; only Dark and Light resist themselves.
var chart = map[entities.Element]matchups{
	entities.ElementFire: {
		strong: []entities.Element{entities.ElementNature, entities.ElementIce},
		weak:   []entities.Element{entities.ElementWater, entities.ElementEarth},
	},
	entities.ElementWater: {
		strong: []entities.Element{entities.ElementFire, entities.ElementEarth},
		weak:   []entities.Element{entities.ElementNature, entities.ElementIce},
	},
	entities.ElementNature: {
		strong: []entities.Element{entities.ElementWater, entities.ElementEarth},
		weak:   []entities.Element{entities.ElementFire, entities.ElementIce},
	},
	entities.ElementEarth: {
		strong: []entities.Element{entities.ElementFire, entities.ElementLightning},
		weak:   []entities.Element{entities.ElementNature, entities.ElementWater},
	},
	entities.ElementIce: {
		strong: []entities.Element{entities.ElementNature, entities.ElementEarth},
		weak:   []entities.Element{entities.ElementFire, entities.ElementWater},
	},
	entities.ElementLightning: {
		strong: []entities.Element{entities.ElementWater, entities.ElementIce},
		weak:   []entities.Element{entities.ElementNature},
		immune: []entities.Element{entities.ElementEarth},
	},
	entities.ElementLight: {
		strong: []entities.Element{entities.ElementDark},
		weak:   []entities.Element{entities.ElementLight},
	},
	entities.ElementDark: {
		strong: []entities.Element{entities.ElementLight},
		weak:   []entities.Element{entities.ElementDark},
	},
	entities.ElementNormal: {
		weak:   []entities.Element{entities.ElementEarth},
		immune: []entities.Element{entities.ElementDark},
	},
}

// Multiplier returns the damage factor of an attacker element against a
// defender element. Unknown elements are neutral.
func Multiplier(attacker, defender entities.Element) float64 {
	m, ok := chart[attacker]
	if !ok {
		return Neutral
	}
	switch {
	case contains(m.strong, defender):
		return Strong
	case contains(m.weak, defender):
		return Weak
	case contains(m.immune, defender):
		return Immune
	default:
		return Neutral
	}
}

func contains(list []entities.Element, e entities.Element) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
