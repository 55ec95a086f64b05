package battle

import (
	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
)

// statusCatchBonus maps a target's condition to its capture multiplier.
var statusCatchBonus = map[registry.Ailment]float64{
	registry.AilmentSleep:    2.0,
	registry.AilmentFreeze:   2.0,
	registry.AilmentParalyze: 1.5,
	registry.AilmentPoison:   1.5,
	registry.AilmentBurn:     1.5,
}

// StatusBonusFor returns the capture multiplier for a status condition.
func StatusBonusFor(a registry.Ailment) float64 {
	if bonus, ok := statusCatchBonus[a]; ok {
		return bonus
	}
	return 1.0
}

// CalculateCatchProbability returns the chance of capturing the target with
// the given orb and status multipliers. Always within [0,1], and strictly
// decreasing as the target's HP ratio rises: a full-health target cannot be
// caught.
func CalculateCatchProbability(target *critter.Critter, orbModifier, statusBonus float64) float64 {
	if target == nil || target.Species() == nil {
		return 0
	}
	p := float64(target.Species().CatchRate) / 255 * orbModifier * statusBonus * (1 - target.HPRatio())
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// AttemptCatch rolls a capture. Only valid in a wild encounter against a
// non-fainted target while the battle is active; anything else returns false
// without touching state.
func (m *Manager) AttemptCatch(b *Battle, target *critter.Critter, orbModifier float64) bool {
	if b == nil || target == nil || b.Status != StatusActive || !b.Wild || target.Fainted {
		return false
	}

	p := CalculateCatchProbability(target, orbModifier, StatusBonusFor(target.Status))
	caught := m.rng.Float64() < p
	if caught {
		b.logf("Gotcha! %s was caught!", target.Name())
		m.emit(EventCaptureSuccess, map[string]any{
			"battle_id":  b.ID,
			"critter_id": target.ID,
			"species_id": target.SpeciesID,
		})
	} else {
		b.logf("Oh no! %s broke free!", target.Name())
		m.emit(EventCaptureFailed, map[string]any{
			"battle_id":  b.ID,
			"critter_id": target.ID,
		})
	}
	return caught
}

// shakeThresholds drives the capture animation's suspense. Each threshold
// gets its own draw; the animation stops at the first threshold the draw
// exceeds, otherwise it runs all four shakes.
var shakeThresholds = [...]float64{0.3, 0.6, 0.85, 1.0}

// SimulateCatchAnimation returns a 1-4 shake count for the presentation
// layer. It carries no gameplay weight; the capture roll already happened.
func (m *Manager) SimulateCatchAnimation() int {
	for i, threshold := range shakeThresholds {
		if m.rng.Float64() > threshold {
			return i + 1
		}
	}
	return len(shakeThresholds)
}

// AttemptFlee rolls an escape from a wild encounter. Success odds scale with
// the speed ratio, capped at 90%; fleeing a trainer battle always fails.
func (m *Manager) AttemptFlee(b *Battle, playerSpeed, opponentSpeed int) bool {
	if b == nil || b.Status != StatusActive || !b.Wild {
		return false
	}
	if opponentSpeed <= 0 {
		opponentSpeed = 1
	}
	p := 0.5 * float64(playerSpeed) / float64(opponentSpeed)
	if p > 0.9 {
		p = 0.9
	}
	fled := m.rng.Float64() < p
	if fled {
		b.logf("Got away safely!")
		m.emit(EventFleeSuccess, map[string]any{"battle_id": b.ID})
	} else {
		b.logf("Can't escape!")
		m.emit(EventFleeFailed, map[string]any{"battle_id": b.ID})
	}
	return fled
}
