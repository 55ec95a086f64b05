package typechart

import "fmt"

// Type is one of the fixed elemental tags a species or move can carry.
type Type string

const (
	Normal   Type = "normal"
	Fire     Type = "fire"
	Water    Type = "water"
	Grass    Type = "grass"
	Electric Type = "electric"
	Ice      Type = "ice"
	Ground   Type = "ground"
	Flying   Type = "flying"
)

// AllTypes lists every valid type in registration order.
var AllTypes = []Type{Normal, Fire, Water, Grass, Electric, Ice, Ground, Flying}

// chart maps attacker type -> defender type -> multiplier.
// Missing entries are neutral (1.0). Valid multipliers are 0, 0.5 and 2.
var chart = map[Type]map[Type]float64{
	Fire: {
		Grass: 2, Ice: 2,
		Fire: 0.5, Water: 0.5,
	},
	Water: {
		Fire: 2, Ground: 2,
		Water: 0.5, Grass: 0.5,
	},
	Grass: {
		Water: 2, Ground: 2,
		Fire: 0.5, Grass: 0.5, Flying: 0.5,
	},
	Electric: {
		Water: 2, Flying: 2,
		Grass: 0.5, Electric: 0.5,
		Ground: 0,
	},
	Ice: {
		Grass: 2, Ground: 2, Flying: 2,
		Fire: 0.5, Water: 0.5, Ice: 0.5,
	},
	Ground: {
		Fire: 2, Electric: 2,
		Grass: 0.5,
		Flying: 0,
	},
	Flying: {
		Grass: 2,
		Electric: 0.5,
	},
}

// ParseType validates a raw type tag. Unknown tags are a data error and must
// be rejected when a catalog loads, never at battle time.
func ParseType(raw string) (Type, error) {
	t := Type(raw)
	for _, known := range AllTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown type %q", raw)
}

// Effectiveness returns the combined multiplier of an attack type against a
// defender's type list: the product of the pairwise multipliers. An empty
// defender list is neutral.
func Effectiveness(attack Type, defenderTypes []Type) float64 {
	effectiveness := 1.0
	row, ok := chart[attack]
	if !ok {
		return effectiveness
	}
	for _, dt := range defenderTypes {
		if mult, ok := row[dt]; ok {
			effectiveness *= mult
		}
	}
	return effectiveness
}

func IsSuperEffective(attack Type, defenderTypes []Type) bool {
	return Effectiveness(attack, defenderTypes) > 1.0
}

func IsNotVeryEffective(attack Type, defenderTypes []Type) bool {
	return Effectiveness(attack, defenderTypes) < 1.0
}

// StrongAgainst returns every attack type that is super effective against the
// given type set. Used by presentation, but kept on the same table so UI and
// combat can never disagree.
func StrongAgainst(defenderTypes []Type) []Type {
	var out []Type
	for _, atk := range AllTypes {
		if IsSuperEffective(atk, defenderTypes) {
			out = append(out, atk)
		}
	}
	return out
}

// WeakAgainst returns every attack type that is not very effective (or has no
// effect) against the given type set.
func WeakAgainst(defenderTypes []Type) []Type {
	var out []Type
	for _, atk := range AllTypes {
		if IsNotVeryEffective(atk, defenderTypes) {
			out = append(out, atk)
		}
	}
	return out
}
