package registry

import "github.com/ross1116/critterbattlecli/internal/typechart"

// Built-in catalog. The production build swaps this for an injected data
// source; the shapes are identical either way.

var builtinMoves = []Move{
	{ID: "tackle", Name: "Tackle", Type: typechart.Normal, Power: 40, Accuracy: 100, PP: 35, Category: Physical},
	{ID: "quick-strike", Name: "Quick Strike", Type: typechart.Normal, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Category: Physical},
	{ID: "body-slam", Name: "Body Slam", Type: typechart.Normal, Power: 85, Accuracy: 100, PP: 15, Category: Physical,
		Effect: &SecondaryEffect{Ailment: AilmentParalyze, Chance: 30}},
	{ID: "hyper-howl", Name: "Hyper Howl", Type: typechart.Normal, Power: 90, Accuracy: 95, PP: 10, Category: Special},
	{ID: "hypno-wave", Name: "Hypno Wave", Type: typechart.Normal, Power: 0, Accuracy: 70, PP: 20, Category: Status,
		Effect: &SecondaryEffect{Ailment: AilmentSleep, Chance: 100, Turns: 3}},

	{ID: "ember", Name: "Ember", Type: typechart.Fire, Power: 40, Accuracy: 100, PP: 25, Category: Special,
		Effect: &SecondaryEffect{Ailment: AilmentBurn, Chance: 10}},
	{ID: "flame-claw", Name: "Flame Claw", Type: typechart.Fire, Power: 65, Accuracy: 95, PP: 20, Category: Physical,
		Effect: &SecondaryEffect{Ailment: AilmentBurn, Chance: 10}},
	{ID: "inferno-burst", Name: "Inferno Burst", Type: typechart.Fire, Power: 95, Accuracy: 85, PP: 10, Category: Special,
		Effect: &SecondaryEffect{Ailment: AilmentBurn, Chance: 20}},

	{ID: "water-jet", Name: "Water Jet", Type: typechart.Water, Power: 40, Accuracy: 100, PP: 25, Category: Special},
	{ID: "aqua-fang", Name: "Aqua Fang", Type: typechart.Water, Power: 65, Accuracy: 95, PP: 20, Category: Physical},
	{ID: "tidal-crash", Name: "Tidal Crash", Type: typechart.Water, Power: 95, Accuracy: 85, PP: 10, Category: Special},

	{ID: "vine-lash", Name: "Vine Lash", Type: typechart.Grass, Power: 45, Accuracy: 100, PP: 25, Category: Physical},
	{ID: "leaf-blade", Name: "Leaf Blade", Type: typechart.Grass, Power: 70, Accuracy: 95, PP: 15, Category: Physical},
	{ID: "spore-cloud", Name: "Spore Cloud", Type: typechart.Grass, Power: 0, Accuracy: 85, PP: 15, Category: Status,
		Effect: &SecondaryEffect{Ailment: AilmentPoison, Chance: 100}},

	{ID: "spark", Name: "Spark", Type: typechart.Electric, Power: 40, Accuracy: 100, PP: 30, Category: Special,
		Effect: &SecondaryEffect{Ailment: AilmentParalyze, Chance: 10}},
	{ID: "volt-burst", Name: "Volt Burst", Type: typechart.Electric, Power: 90, Accuracy: 90, PP: 15, Category: Special,
		Effect: &SecondaryEffect{Ailment: AilmentParalyze, Chance: 10}},

	{ID: "frost-bite", Name: "Frost Bite", Type: typechart.Ice, Power: 45, Accuracy: 100, PP: 25, Category: Physical,
		Effect: &SecondaryEffect{Ailment: AilmentFreeze, Chance: 10, Turns: 2}},
	{ID: "ice-shard", Name: "Ice Shard", Type: typechart.Ice, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Category: Physical},

	{ID: "mud-shot", Name: "Mud Shot", Type: typechart.Ground, Power: 55, Accuracy: 95, PP: 15, Category: Special},
	{ID: "earth-crush", Name: "Earth Crush", Type: typechart.Ground, Power: 90, Accuracy: 85, PP: 10, Category: Physical},

	{ID: "wing-cutter", Name: "Wing Cutter", Type: typechart.Flying, Power: 60, Accuracy: 95, PP: 20, Category: Physical},
	{ID: "gale-dive", Name: "Gale Dive", Type: typechart.Flying, Power: 85, Accuracy: 90, PP: 15, Category: Physical},
}

var builtinSpecies = []Species{
	{
		ID: "embercub", Name: "Embercub", Types: []typechart.Type{typechart.Fire},
		Stats:    BaseStats{HP: 39, Attack: 52, Defense: 43, SpAtk: 60, SpDef: 50, Speed: 65},
		Learnset: []LearnableMove{{"tackle", 1}, {"ember", 1}, {"flame-claw", 12}, {"inferno-burst", 24}},
		EvolvesInto: "pyroclaw", EvolveLevel: 16,
		CatchRate: 45, BaseExp: 62, HeightM: 0.6, WeightKG: 8.5,
	},
	{
		ID: "pyroclaw", Name: "Pyroclaw", Types: []typechart.Type{typechart.Fire, typechart.Flying},
		Stats:    BaseStats{HP: 58, Attack: 64, Defense: 58, SpAtk: 80, SpDef: 65, Speed: 80},
		Learnset: []LearnableMove{{"flame-claw", 1}, {"ember", 1}, {"wing-cutter", 18}, {"inferno-burst", 24}, {"gale-dive", 32}},
		CatchRate: 45, BaseExp: 142, HeightM: 1.1, WeightKG: 19,
	},
	{
		ID: "aquafin", Name: "Aquafin", Types: []typechart.Type{typechart.Water},
		Stats:    BaseStats{HP: 44, Attack: 48, Defense: 65, SpAtk: 50, SpDef: 64, Speed: 43},
		Learnset: []LearnableMove{{"tackle", 1}, {"water-jet", 1}, {"aqua-fang", 12}, {"tidal-crash", 24}},
		EvolvesInto: "tidalon", EvolveLevel: 16,
		CatchRate: 45, BaseExp: 63, HeightM: 0.5, WeightKG: 9,
	},
	{
		ID: "tidalon", Name: "Tidalon", Types: []typechart.Type{typechart.Water},
		Stats:    BaseStats{HP: 59, Attack: 63, Defense: 80, SpAtk: 65, SpDef: 80, Speed: 58},
		Learnset: []LearnableMove{{"aqua-fang", 1}, {"water-jet", 1}, {"body-slam", 20}, {"tidal-crash", 24}},
		CatchRate: 45, BaseExp: 142, HeightM: 1.0, WeightKG: 22.5,
	},
	{
		ID: "sproutle", Name: "Sproutle", Types: []typechart.Type{typechart.Grass},
		Stats:    BaseStats{HP: 45, Attack: 49, Defense: 49, SpAtk: 65, SpDef: 65, Speed: 45},
		Learnset: []LearnableMove{{"tackle", 1}, {"vine-lash", 1}, {"spore-cloud", 10}, {"leaf-blade", 20}},
		EvolvesInto: "verdantis", EvolveLevel: 16,
		CatchRate: 45, BaseExp: 64, HeightM: 0.7, WeightKG: 6.9,
	},
	{
		ID: "verdantis", Name: "Verdantis", Types: []typechart.Type{typechart.Grass, typechart.Ground},
		Stats:    BaseStats{HP: 60, Attack: 62, Defense: 63, SpAtk: 80, SpDef: 80, Speed: 60},
		Learnset: []LearnableMove{{"vine-lash", 1}, {"leaf-blade", 1}, {"mud-shot", 18}, {"earth-crush", 30}},
		CatchRate: 45, BaseExp: 142, HeightM: 1.0, WeightKG: 13,
	},
	{
		ID: "zapkit", Name: "Zapkit", Types: []typechart.Type{typechart.Electric, typechart.Flying},
		Stats:    BaseStats{HP: 35, Attack: 55, Defense: 40, SpAtk: 50, SpDef: 50, Speed: 90},
		Learnset: []LearnableMove{{"quick-strike", 1}, {"spark", 1}, {"wing-cutter", 14}, {"volt-burst", 26}},
		CatchRate: 190, BaseExp: 112, HeightM: 0.4, WeightKG: 6,
	},
	{
		ID: "frostfang", Name: "Frostfang", Types: []typechart.Type{typechart.Ice},
		Stats:    BaseStats{HP: 55, Attack: 70, Defense: 55, SpAtk: 45, SpDef: 55, Speed: 75},
		Learnset: []LearnableMove{{"frost-bite", 1}, {"quick-strike", 1}, {"ice-shard", 10}, {"body-slam", 22}},
		CatchRate: 120, BaseExp: 120, HeightM: 0.9, WeightKG: 27,
	},
	{
		ID: "boulderon", Name: "Boulderon", Types: []typechart.Type{typechart.Ground},
		Stats:    BaseStats{HP: 80, Attack: 80, Defense: 100, SpAtk: 30, SpDef: 45, Speed: 20},
		Learnset: []LearnableMove{{"tackle", 1}, {"mud-shot", 1}, {"body-slam", 16}, {"earth-crush", 28}},
		CatchRate: 90, BaseExp: 135, HeightM: 1.2, WeightKG: 105,
	},
	{
		ID: "plainpup", Name: "Plainpup", Types: []typechart.Type{typechart.Normal},
		Stats:    BaseStats{HP: 55, Attack: 55, Defense: 50, SpAtk: 45, SpDef: 50, Speed: 60},
		Learnset: []LearnableMove{{"tackle", 1}, {"quick-strike", 6}, {"hypno-wave", 14}, {"hyper-howl", 26}},
		CatchRate: 255, BaseExp: 55, HeightM: 0.5, WeightKG: 10,
	},
}

var builtinItems = []Item{
	{ID: "capture-orb", Name: "Capture Orb", Kind: ItemOrb, OrbModifier: 1.0, Price: 200},
	{ID: "great-orb", Name: "Great Orb", Kind: ItemOrb, OrbModifier: 1.5, Price: 600},
	{ID: "ultra-orb", Name: "Ultra Orb", Kind: ItemOrb, OrbModifier: 2.0, Price: 1200},
	{ID: "potion", Name: "Potion", Kind: ItemPotion, HealAmount: 20, Price: 300},
	{ID: "super-potion", Name: "Super Potion", Kind: ItemPotion, HealAmount: 50, Price: 700},
	{ID: "full-heal", Name: "Full Heal", Kind: ItemStatusHeal, Price: 600},
}
