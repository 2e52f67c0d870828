package content

import "github.com/KirkDiggler/runes-api/internal/entities"

func damage(element entities.Element, base float64) *entities.DamageEffect {
	return &entities.DamageEffect{Element: element, Base: base}
}

func grant(effect entities.EffectType, value float64, duration int) *entities.StatusGrant {
	return &entities.StatusGrant{Effect: effect, Value: value, Duration: duration}
}

func runeSkills() map[entities.Element][]entities.Skill {
	return map[entities.Element][]entities.Skill{
		entities.ElementFire: {
			{ID: "fireball", Name: "Fireball", ManaCost: 10,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementFire, 12)}},
			{ID: "kindle", Name: "Kindle", ManaCost: 8, Description: "Raise attack for 3 turns",
				Effects: entities.SkillEffects{Buff: grant(entities.EffectAttackUp, 4, 3)}},
			{ID: "inferno", Name: "Inferno", ManaCost: 22,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementFire, 22)}},
		},
		entities.ElementWater: {
			{ID: "water_jet", Name: "Water Jet", ManaCost: 9,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementWater, 11)}},
			{ID: "tidal_mend", Name: "Tidal Mend", ManaCost: 12,
				Effects: entities.SkillEffects{Heal: &entities.HealEffect{Amount: 25}}},
			{ID: "undertow", Name: "Undertow", ManaCost: 14, Description: "Weaken the enemy's attack",
				Effects: entities.SkillEffects{
					Damage: damage(entities.ElementWater, 8),
					Debuff: grant(entities.EffectAttackDown, 3, 3),
				}},
			{ID: "meditate", Name: "Meditate", Description: "Recover mana",
				Effects: entities.SkillEffects{ManaRegen: 12}},
		},
		entities.ElementNature: {
			{ID: "thorn_lash", Name: "Thorn Lash", ManaCost: 8,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementNature, 10)}},
			{ID: "venom_bloom", Name: "Venom Bloom", ManaCost: 12, Description: "Poison the enemy",
				Effects: entities.SkillEffects{
					Damage: damage(entities.ElementNature, 6),
					Debuff: grant(entities.EffectPoison, 4, 3),
				}},
			{ID: "regrowth", Name: "Regrowth", ManaCost: 12, Description: "Heal and resist poison",
				Effects: entities.SkillEffects{
					Heal: &entities.HealEffect{Amount: 20},
					Buff: grant(entities.EffectPoisonResist, 3, 4),
				}},
		},
		entities.ElementEarth: {
			{ID: "rock_throw", Name: "Rock Throw", ManaCost: 10,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementEarth, 12)}},
			{ID: "stone_skin", Name: "Stone Skin", ManaCost: 10, Description: "Raise defense for 3 turns",
				Effects: entities.SkillEffects{Buff: grant(entities.EffectDefenseUp, 4, 3)}},
			{ID: "quake", Name: "Quake", ManaCost: 20,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementEarth, 20)}},
		},
		entities.ElementIce: {
			{ID: "frost_shard", Name: "Frost Shard", ManaCost: 9,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementIce, 11)}},
			{ID: "glacial_armor", Name: "Glacial Armor", ManaCost: 8,
				Effects: entities.SkillEffects{Buff: grant(entities.EffectDefenseUp, 3, 3)}},
			{ID: "frostbite", Name: "Frostbite", ManaCost: 12, Description: "Crack the enemy's guard",
				Effects: entities.SkillEffects{
					Damage: damage(entities.ElementIce, 8),
					Debuff: grant(entities.EffectDefenseDown, 2, 3),
				}},
		},
		entities.ElementLightning: {
			{ID: "spark", Name: "Spark", ManaCost: 8,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementLightning, 10)}},
			{ID: "focus_charge", Name: "Focus Charge", ManaCost: 6, Description: "Double the next skill",
				Effects: entities.SkillEffects{Buff: grant(entities.EffectSkillBoost, 1.0, 3)}},
			{ID: "thunderclap", Name: "Thunderclap", ManaCost: 24,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementLightning, 24)}},
		},
		entities.ElementLight: {
			{ID: "holy_ray", Name: "Holy Ray", ManaCost: 10,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementLight, 12)}},
			{ID: "radiance", Name: "Radiance", ManaCost: 14,
				Effects: entities.SkillEffects{Heal: &entities.HealEffect{Amount: 30}}},
			{ID: "blessing", Name: "Blessing", ManaCost: 10, Description: "Chance to evade attacks",
				Effects: entities.SkillEffects{Buff: grant(entities.EffectEvasionUp, 0.3, 3)}},
		},
		entities.ElementDark: {
			{ID: "shadow_bolt", Name: "Shadow Bolt", ManaCost: 10,
				Effects: entities.SkillEffects{Damage: damage(entities.ElementDark, 12)}},
			{ID: "drain_life", Name: "Drain Life", ManaCost: 12, Description: "Heal for half the damage dealt",
				Effects: entities.SkillEffects{Damage: &entities.DamageEffect{
					Element: entities.ElementDark, Base: 10, HealPercentOfDamage: 0.5,
				}}},
			{ID: "curse", Name: "Curse", ManaCost: 10, Description: "Lower the enemy's defense",
				Effects: entities.SkillEffects{Debuff: grant(entities.EffectDefenseDown, 3, 3)}},
		},
	}
}
