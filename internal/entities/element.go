package entities

// Element is an elemental affinity tag. A player's active element is their rune.
type Element string

// Elements known to the affinity table
const (
	ElementFire      Element = "Fire"
	ElementWater     Element = "Water"
	ElementNature    Element = "Nature"
	ElementLight     Element = "Light"
	ElementDark      Element = "Dark"
	ElementEarth     Element = "Earth"
	ElementIce       Element = "Ice"
	ElementLightning Element = "Lightning"
	ElementNormal    Element = "Normal"
)

// AllElements lists the elements in display order
func AllElements() []Element {
	return []Element{
		ElementFire, ElementWater, ElementNature, ElementLight, ElementDark,
		ElementEarth, ElementIce, ElementLightning, ElementNormal,
	}
}

// String returns the element name
func (e Element) String() string {
	return string(e)
}
