package leveling

import "math"

const (
	MinLevel = 1
	MaxLevel = 100
)

// TotalExpFor returns the total experience required to reach a level on the
// cubic growth curve. Levels past the ceiling cost the same as the ceiling.
func TotalExpFor(level int) int {
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return level * level * level
}

// LevelForExp returns the highest level whose threshold the given total
// experience meets.
func LevelForExp(exp int) int {
	level := int(math.Cbrt(float64(exp)))
	// Cube-root rounding can land one off on exact cubes.
	for level < MaxLevel && TotalExpFor(level+1) <= exp {
		level++
	}
	for level > MinLevel && TotalExpFor(level) > exp {
		level--
	}
	if level < MinLevel {
		level = MinLevel
	}
	return level
}

// ExperienceGained computes the experience awarded for defeating a creature.
// The active battler earns full experience and benched party members half;
// trainer-owned opponents are worth half of a wild one. Never less than 1.
func ExperienceGained(baseExp, defeatedLevel int, wasActive, isWild bool) int {
	exp := float64(baseExp) * float64(defeatedLevel) / 7
	if !wasActive {
		exp /= 2
	}
	if !isWild {
		exp /= 2
	}
	gained := int(math.Round(exp))
	if gained < 1 {
		gained = 1
	}
	return gained
}
