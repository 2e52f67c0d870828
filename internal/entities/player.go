package entities

// Player is the persistent combatant controlled by the user
type Player struct {
	Combatant

	Level        int
	Mana         int
	MaxMana      int
	Exp          int
	NextLevelExp int
	Gold         int

	// Active elemental affinity
	Rune Element

	// Replaced wholesale when the rune changes
	Skills []Skill

	Equipment             Equipment
	ElementalBoostPercent float64

	// Consumed by the first lethal hit
	HasRevivalStone bool
}

// FindSkill returns the skill with the given ID
func (p *Player) FindSkill(id string) (*Skill, bool) {
	for i := range p.Skills {
		if p.Skills[i].ID == id {
			return &p.Skills[i], true
		}
	}
	return nil, false
}

// SpendMana deducts mana, returning false when there isn't enough
func (p *Player) SpendMana(amount int) bool {
	if amount <= 0 {
		return true
	}
	if p.Mana < amount {
		return false
	}
	p.Mana -= amount
	return true
}

// RestoreMana adds mana up to the maximum and returns the amount gained
func (p *Player) RestoreMana(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Mana
	p.Mana += amount
	p.ClampMana()
	return p.Mana - before
}

// ClampMana keeps mana inside [0, MaxMana]
func (p *Player) ClampMana() {
	if p.Mana > p.MaxMana {
		p.Mana = p.MaxMana
	}
	if p.Mana < 0 {
		p.Mana = 0
	}
}

// Clone returns a deep copy safe to hand to readers
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Combatant = p.CloneCombatant()
	out.Skills = append([]Skill(nil), p.Skills...)
	return &out
}
