package entities

// Monster is a spawned enemy instance
type Monster struct {
	Combatant

	TemplateID string
	Level      int
	ExpReward  int
	GoldReward int
	IsBoss     bool
	Skills     []MonsterSkill
}

// Clone returns a deep copy safe to hand to readers
func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}
	out := *m
	out.Combatant = m.CloneCombatant()
	out.Skills = append([]MonsterSkill(nil), m.Skills...)
	return &out
}

// MonsterTemplate is static data a monster is spawned from
type MonsterTemplate struct {
	ID          string
	Name        string
	Element     Element
	BaseMaxHP   int
	BaseAttack  int
	BaseDefense int
	BaseExp     int
	BaseGold    int
	Skills      []MonsterSkill
}

// Area is a hunting ground reached from town
type Area struct {
	ID               string
	Name             string
	RecommendedLevel int
	Element          Element // dominant element
	Intensity        float64 // stat multiplier for every spawn
	Monsters         []MonsterTemplate
	Bosses           []MonsterTemplate
	Drops            []Item
}
