package registry

import "github.com/ross1116/critterbattlecli/internal/typechart"

// Ailment is a non-volatile status condition. A critter holds at most one.
type Ailment string

const (
	AilmentNone     Ailment = ""
	AilmentBurn     Ailment = "burn"
	AilmentParalyze Ailment = "paralyze"
	AilmentSleep    Ailment = "sleep"
	AilmentPoison   Ailment = "poison"
	AilmentFreeze   Ailment = "freeze"
)

// MoveCategory tells the damage calc which stat pair a move uses.
type MoveCategory string

const (
	Physical MoveCategory = "physical"
	Special  MoveCategory = "special"
	Status   MoveCategory = "status"
)

// BaseStats is a species' stat block before level scaling.
type BaseStats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"sp_atk"`
	SpDef   int `json:"sp_def"`
	Speed   int `json:"speed"`
}

// LearnableMove is a learnset entry: the move a species can learn and the
// level at which it becomes available.
type LearnableMove struct {
	MoveID string `json:"move_id"`
	Level  int    `json:"level"`
}

// Species is an immutable catalog entry. Loaded once, never mutated.
type Species struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Types       []typechart.Type `json:"types"`
	Stats       BaseStats        `json:"stats"`
	Learnset    []LearnableMove  `json:"learnset"`
	EvolvesInto string           `json:"evolves_into,omitempty"`
	EvolveLevel int              `json:"evolve_level,omitempty"`
	CatchRate   int              `json:"catch_rate"`
	BaseExp     int              `json:"base_exp"`
	HeightM     float64          `json:"height_m"`
	WeightKG    float64          `json:"weight_kg"`
}

// SecondaryEffect is an optional rider on a damaging or status move.
type SecondaryEffect struct {
	Ailment Ailment `json:"ailment"`
	Chance  int     `json:"chance"` // percent
	Turns   int     `json:"turns"`  // duration for timed ailments, 0 = indefinite
}

// Move is an immutable catalog entry.
type Move struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Type     typechart.Type   `json:"type"`
	Power    int              `json:"power"` // 0 for status moves
	Accuracy int              `json:"accuracy"`
	PP       int              `json:"pp"`
	Priority int              `json:"priority"`
	Category MoveCategory     `json:"category"`
	Effect   *SecondaryEffect `json:"effect,omitempty"`
}

// ItemKind partitions the item catalog by battle behavior.
type ItemKind string

const (
	ItemOrb        ItemKind = "orb"
	ItemPotion     ItemKind = "potion"
	ItemStatusHeal ItemKind = "status-heal"
)

// Item is an immutable catalog entry.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        ItemKind `json:"kind"`
	OrbModifier float64  `json:"orb_modifier,omitempty"`
	HealAmount  int      `json:"heal_amount,omitempty"`
	Price       int      `json:"price"`
}
