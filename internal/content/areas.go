package content

import "github.com/KirkDiggler/runes-api/internal/entities"

func attack(name string, mult, chance float64) entities.MonsterSkill {
	return entities.MonsterSkill{Name: name, DamageMultiplier: mult, Chance: chance}
}

var shopItems = []entities.Item{
	{ID: "bronze_sword", Name: "Bronze Sword", Slot: entities.SlotWeapon, Price: 60, Attack: 3},
	{ID: "steel_sword", Name: "Steel Sword", Slot: entities.SlotWeapon, Price: 220, Attack: 7},
	{ID: "wooden_shield", Name: "Wooden Shield", Slot: entities.SlotShield, Price: 50, Defense: 2},
	{ID: "tower_shield", Name: "Tower Shield", Slot: entities.SlotShield, Price: 240, Defense: 5, MaxHP: 20},
	{ID: "leather_armor", Name: "Leather Armor", Slot: entities.SlotArmor, Price: 80, Defense: 2, MaxHP: 15},
	{ID: "chain_mail", Name: "Chain Mail", Slot: entities.SlotArmor, Price: 260, Defense: 4, MaxHP: 40},
	{ID: "rune_charm", Name: "Rune Charm", Slot: entities.SlotAccessory, Price: 150, ElementalBoostPercent: 0.15},
	{ID: "mana_ring", Name: "Mana Ring", Slot: entities.SlotAccessory, Price: 120, MaxMana: 25},
	{ID: RevivalStoneID, Name: "Revival Stone", Price: 300, Revives: true},
}

func areas() []*entities.Area {
	return []*entities.Area{
		{
			ID: "meadow", Name: "Whispering Meadow", RecommendedLevel: 1,
			Element: entities.ElementNature, Intensity: 1.0,
			Monsters: []entities.MonsterTemplate{
				{ID: "slime", Name: "Slime", Element: entities.ElementNature,
					BaseMaxHP: 30, BaseAttack: 6, BaseDefense: 2, BaseExp: 20, BaseGold: 10,
					Skills: []entities.MonsterSkill{
						attack("Ooze", 1.0, 0.7),
						{Name: "Acid Splash", DamageMultiplier: 1.3, Chance: 0.3,
							Debuff: &entities.StatusGrant{Effect: entities.EffectDefenseDown, Value: 1, Duration: 2}},
					}},
				{ID: "wild_boar", Name: "Wild Boar", Element: entities.ElementEarth,
					BaseMaxHP: 40, BaseAttack: 7, BaseDefense: 3, BaseExp: 25, BaseGold: 12,
					Skills: []entities.MonsterSkill{attack("Tusk", 1.0, 0.6), attack("Charge", 1.5, 0.4)}},
				{ID: "pixie", Name: "Pixie", Element: entities.ElementLight,
					BaseMaxHP: 25, BaseAttack: 8, BaseDefense: 1, BaseExp: 22, BaseGold: 15,
					Skills: []entities.MonsterSkill{
						attack("Glitter", 1.0, 0.5),
						{Name: "Siphon", DamageMultiplier: 0.8, HealPercentOfDamage: 0.5, Chance: 0.5},
					}},
			},
			Bosses: []entities.MonsterTemplate{
				{ID: "meadow_queen", Name: "Meadow Queen", Element: entities.ElementNature,
					BaseMaxHP: 90, BaseAttack: 10, BaseDefense: 4, BaseExp: 60, BaseGold: 50,
					Skills: []entities.MonsterSkill{
						attack("Vine Whip", 1.2, 0.5),
						{Name: "Spore Cloud", DamageMultiplier: 0.6, Chance: 0.3,
							Debuff: &entities.StatusGrant{Effect: entities.EffectPoison, Value: 5, Duration: 3}},
						{Name: "Bloom", Chance: 0.2,
							Buff: &entities.StatusGrant{Effect: entities.EffectDefenseUp, Value: 3, Duration: 3}},
					}},
			},
			Drops: []entities.Item{
				{ID: "twig_wand", Name: "Twig Wand", Slot: entities.SlotWeapon, Price: 40, Attack: 2,
					ElementalBoostPercent: 0.05},
				{ID: "petal_cloak", Name: "Petal Cloak", Slot: entities.SlotArmor, Price: 45, Defense: 1, MaxHP: 10},
			},
		},
		{
			ID: "caverns", Name: "Ember Caverns", RecommendedLevel: 5,
			Element: entities.ElementFire, Intensity: 1.2,
			Monsters: []entities.MonsterTemplate{
				{ID: "fire_imp", Name: "Fire Imp", Element: entities.ElementFire,
					BaseMaxHP: 35, BaseAttack: 9, BaseDefense: 2, BaseExp: 30, BaseGold: 18,
					Skills: []entities.MonsterSkill{attack("Claw", 1.0, 0.6), attack("Ember", 1.4, 0.4)}},
				{ID: "magma_golem", Name: "Magma Golem", Element: entities.ElementEarth,
					BaseMaxHP: 60, BaseAttack: 8, BaseDefense: 5, BaseExp: 38, BaseGold: 22,
					Skills: []entities.MonsterSkill{
						attack("Slam", 1.1, 0.7),
						{Name: "Harden", Chance: 0.3,
							Buff: &entities.StatusGrant{Effect: entities.EffectDefenseUp, Value: 3, Duration: 2}},
					}},
				{ID: "cave_bat", Name: "Cave Bat", Element: entities.ElementDark,
					BaseMaxHP: 28, BaseAttack: 10, BaseDefense: 1, BaseExp: 28, BaseGold: 14,
					Skills: []entities.MonsterSkill{
						{Name: "Leech", DamageMultiplier: 1.0, HealPercentOfDamage: 0.5, Chance: 1},
					}},
			},
			Bosses: []entities.MonsterTemplate{
				{ID: "ember_wyrm", Name: "Ember Wyrm", Element: entities.ElementFire,
					BaseMaxHP: 140, BaseAttack: 14, BaseDefense: 6, BaseExp: 90, BaseGold: 80,
					Skills: []entities.MonsterSkill{
						attack("Flame Breath", 1.4, 0.5),
						{Name: "Roar", Chance: 0.2,
							Debuff: &entities.StatusGrant{Effect: entities.EffectAttackDown, Value: 3, Duration: 3}},
						attack("Tail Sweep", 1.0, 0.3),
					}},
			},
			Drops: []entities.Item{
				{ID: "ember_blade", Name: "Ember Blade", Slot: entities.SlotWeapon, Price: 180, Attack: 6},
				{ID: "ash_charm", Name: "Ash Charm", Slot: entities.SlotAccessory, Price: 160,
					ElementalBoostPercent: 0.1},
			},
		},
		{
			ID: "glacier", Name: "Frostveil Glacier", RecommendedLevel: 10,
			Element: entities.ElementIce, Intensity: 1.4,
			Monsters: []entities.MonsterTemplate{
				{ID: "frost_wolf", Name: "Frost Wolf", Element: entities.ElementIce,
					BaseMaxHP: 45, BaseAttack: 11, BaseDefense: 3, BaseExp: 42, BaseGold: 24,
					Skills: []entities.MonsterSkill{attack("Bite", 1.0, 0.6), attack("Howl Strike", 1.3, 0.4)}},
				{ID: "ice_wraith", Name: "Ice Wraith", Element: entities.ElementWater,
					BaseMaxHP: 38, BaseAttack: 12, BaseDefense: 2, BaseExp: 45, BaseGold: 26,
					Skills: []entities.MonsterSkill{
						attack("Chill Touch", 1.0, 0.6),
						{Name: "Numb", DamageMultiplier: 0.7, Chance: 0.4,
							Debuff: &entities.StatusGrant{Effect: entities.EffectAttackDown, Value: 2, Duration: 2}},
					}},
				{ID: "storm_hawk", Name: "Storm Hawk", Element: entities.ElementLightning,
					BaseMaxHP: 36, BaseAttack: 13, BaseDefense: 2, BaseExp: 44, BaseGold: 25,
					Skills: []entities.MonsterSkill{attack("Talon", 1.0, 0.7), attack("Bolt Dive", 1.6, 0.3)}},
			},
			Bosses: []entities.MonsterTemplate{
				{ID: "glacier_titan", Name: "Glacier Titan", Element: entities.ElementIce,
					BaseMaxHP: 180, BaseAttack: 16, BaseDefense: 8, BaseExp: 130, BaseGold: 110,
					Skills: []entities.MonsterSkill{
						attack("Avalanche", 1.5, 0.4),
						{Name: "Permafrost", Chance: 0.3,
							Buff: &entities.StatusGrant{Effect: entities.EffectDefenseUp, Value: 5, Duration: 3}},
						attack("Stomp", 1.1, 0.3),
					}},
			},
			Drops: []entities.Item{
				{ID: "frost_mail", Name: "Frost Mail", Slot: entities.SlotArmor, Price: 300, Defense: 5, MaxHP: 30},
				{ID: "storm_band", Name: "Storm Band", Slot: entities.SlotAccessory, Price: 280, MaxMana: 30,
					ElementalBoostPercent: 0.1},
			},
		},
		{
			ID: "abyss", Name: "Shadow Abyss", RecommendedLevel: 15,
			Element: entities.ElementDark, Intensity: 1.7,
			Monsters: []entities.MonsterTemplate{
				{ID: "shade", Name: "Shade", Element: entities.ElementDark,
					BaseMaxHP: 50, BaseAttack: 14, BaseDefense: 3, BaseExp: 60, BaseGold: 35,
					Skills: []entities.MonsterSkill{
						attack("Grasp", 1.0, 0.6),
						{Name: "Wither", DamageMultiplier: 0.8, Chance: 0.4,
							Debuff: &entities.StatusGrant{Effect: entities.EffectPoison, Value: 6, Duration: 3}},
					}},
				{ID: "bone_knight", Name: "Bone Knight", Element: entities.ElementNormal,
					BaseMaxHP: 70, BaseAttack: 13, BaseDefense: 6, BaseExp: 65, BaseGold: 40,
					Skills: []entities.MonsterSkill{attack("Cleave", 1.2, 0.7), attack("Shield Bash", 0.9, 0.3)}},
				{ID: "void_eye", Name: "Void Eye", Element: entities.ElementDark,
					BaseMaxHP: 45, BaseAttack: 16, BaseDefense: 2, BaseExp: 62, BaseGold: 38,
					Skills: []entities.MonsterSkill{
						{Name: "Gaze", DamageMultiplier: 1.1, HealPercentOfDamage: 0.3, Chance: 1},
					}},
			},
			Bosses: []entities.MonsterTemplate{
				{ID: "abyss_lord", Name: "Abyss Lord", Element: entities.ElementDark,
					BaseMaxHP: 240, BaseAttack: 20, BaseDefense: 9, BaseExp: 200, BaseGold: 180,
					Skills: []entities.MonsterSkill{
						attack("Doom Strike", 1.6, 0.4),
						{Name: "Dark Pact", DamageMultiplier: 1.0, HealPercentOfDamage: 0.5, Chance: 0.3},
						{Name: "Dread", Chance: 0.3,
							Debuff: &entities.StatusGrant{Effect: entities.EffectDefenseDown, Value: 4, Duration: 3}},
					}},
			},
			Drops: []entities.Item{
				{ID: "void_edge", Name: "Void Edge", Slot: entities.SlotWeapon, Price: 450, Attack: 11},
				{ID: "abyssal_aegis", Name: "Abyssal Aegis", Slot: entities.SlotShield, Price: 420, Defense: 7,
					MaxHP: 30},
			},
		},
	}
}
