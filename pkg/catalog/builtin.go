package catalog

// --- ВСТРОЕННЫЕ ТЕМЫ ---
// Каждый вызов строит тему заново, общих слайсов между вызовами нет.

// Fire - агрессивные огненные враги
func Fire() *Theme {
	return &Theme{
		Name:       "Fire",
		ElementTag: "FIRE",
		Behavior:   "AGGRESSIVE",
		Abilities: []EffectDefinition{
			{
				Name:        "Flame Breath",
				Potency:     150,
				Description: "Breathe a massive cone of fire, dealing AoE damage and applying burn effect",
			},
			{
				Name:        "Fire Shield",
				Potency:     0, // защитный эффект, урона нет
				Description: "Create a defensive shield of flames that reflects 30% of incoming fire damage",
			},
		},
		Loot: DropDefinition{
			Items:      []string{"Fire Gem", "Dragon Scale", "Flame Rune"},
			Gold:       500,
			Experience: 250,
		},
	}
}

// Ice - оборонительные ледяные враги
func Ice() *Theme {
	return &Theme{
		Name:       "Ice",
		ElementTag: "ICE",
		Behavior:   "DEFENSIVE",
		Abilities: []EffectDefinition{
			{
				Name:        "Frost Breath",
				Potency:     120,
				Description: "Exhale a freezing breath, dealing damage and slowing enemy movement by 50%",
			},
			{
				Name:        "Ice Shield",
				Potency:     0,
				Description: "Form a shield of ice that freezes attackers for 2 seconds",
			},
		},
		Loot: DropDefinition{
			Items:      []string{"Ice Gem", "Frost Scale", "Ice Rune"},
			Gold:       450,
			Experience: 225,
		},
	}
}

// Shadow - тактические теневые враги
func Shadow() *Theme {
	return &Theme{
		Name:       "Shadow",
		ElementTag: "SHADOW",
		Behavior:   "TACTICAL",
		Abilities: []EffectDefinition{
			{
				Name:        "Shadow Strike",
				Potency:     180,
				Description: "Strike from the shadows with deadly precision, blinding the target for 1 attack",
			},
			{
				Name:        "Vanish",
				Potency:     0,
				Description: "Melt into the shadows, increasing evasion chance to 60% for 3 turns",
			},
		},
		Loot: DropDefinition{
			Items:      []string{"Shadow Gem", "Dark Essence", "Shadow Rune"},
			Gold:       550,
			Experience: 300,
		},
	}
}

// Builtin возвращает новую библиотеку со встроенными темами.
func Builtin() Library {
	lib := make(Library, 3)
	for _, t := range []*Theme{Fire(), Ice(), Shadow()} {
		lib[t.key()] = t
	}
	return lib
}
