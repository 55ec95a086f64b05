package ai

import (
	"math/rand/v2"

	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
	"github.com/ross1116/critterbattlecli/internal/typechart"
)

// Chooser selects a move for an opposing critter. A nil result means the
// critter has no moves at all; callers narrate that instead of crashing.
type Chooser interface {
	ChooseMove(attacker, defender *critter.Critter) *registry.Move
}

// WildChooser picks uniformly at random among moves with remaining PP,
// falling back to the first move when every slot is exhausted.
type WildChooser struct {
	Reg *registry.Registry
	RNG *rand.Rand
}

func (w *WildChooser) ChooseMove(attacker, _ *critter.Critter) *registry.Move {
	if attacker == nil || len(attacker.Moves) == 0 {
		return nil
	}

	var usable []string
	for _, slot := range attacker.Moves {
		if slot.PP > 0 {
			usable = append(usable, slot.MoveID)
		}
	}
	if len(usable) == 0 {
		mv, _ := w.Reg.MoveByID(attacker.Moves[0].MoveID)
		return mv
	}

	mv, _ := w.Reg.MoveByID(usable[w.RNG.IntN(len(usable))])
	return mv
}

// TrainerChooser scores each usable move by expected value:
// power x effectiveness x STAB x accuracy plus a small random jitter. Ties
// break toward the first-registered move. The boss variant weights
// effectiveness more heavily and narrows the jitter, which makes it converge
// on the strongest matchup almost every turn.
type TrainerChooser struct {
	Reg *registry.Registry
	RNG *rand.Rand

	// EffectivenessWeight scales the type matchup term; Jitter is the upper
	// bound of the random score noise.
	EffectivenessWeight float64
	Jitter              float64
}

// NewTrainerChooser returns the standard trained-opponent picker.
func NewTrainerChooser(reg *registry.Registry, rng *rand.Rand) *TrainerChooser {
	return &TrainerChooser{Reg: reg, RNG: rng, EffectivenessWeight: 1.0, Jitter: 5.0}
}

// NewBossChooser returns the gym-leader variant: more aggressive, less
// exploitable.
func NewBossChooser(reg *registry.Registry, rng *rand.Rand) *TrainerChooser {
	return &TrainerChooser{Reg: reg, RNG: rng, EffectivenessWeight: 1.5, Jitter: 2.0}
}

func (tc *TrainerChooser) ChooseMove(attacker, defender *critter.Critter) *registry.Move {
	if attacker == nil || len(attacker.Moves) == 0 {
		return nil
	}

	var best *registry.Move
	bestScore := 0.0
	for _, slot := range attacker.Moves {
		if slot.PP <= 0 {
			continue
		}
		mv, ok := tc.Reg.MoveByID(slot.MoveID)
		if !ok {
			continue
		}
		score := tc.score(mv, attacker, defender)
		if best == nil || score > bestScore {
			best = mv
			bestScore = score
		}
	}
	if best == nil {
		mv, _ := tc.Reg.MoveByID(attacker.Moves[0].MoveID)
		return mv
	}
	return best
}

func (tc *TrainerChooser) score(mv *registry.Move, attacker, defender *critter.Critter) float64 {
	effectiveness := 1.0
	if defender != nil {
		effectiveness = typechart.Effectiveness(mv.Type, defender.Types())
	}
	stab := 1.0
	for _, t := range attacker.Types() {
		if t == mv.Type {
			stab = 1.5
			break
		}
	}
	score := float64(mv.Power) * effectiveness * tc.EffectivenessWeight * stab * float64(mv.Accuracy) / 100
	if tc.Jitter > 0 {
		score += tc.RNG.Float64() * tc.Jitter
	}
	return score
}

// SuggestSwitch is the trainer pre-emptive swap heuristic. When the active
// critter is both type-disadvantaged against the incoming attack type and
// below half HP, it returns the index of a bench critter that resists (or
// failing that, is neutral to) the incoming type. ok=false when no swap is
// warranted or no candidate exists.
func SuggestSwitch(party []*critter.Critter, activeIndex int, incoming typechart.Type) (int, bool) {
	if activeIndex < 0 || activeIndex >= len(party) {
		return 0, false
	}
	active := party[activeIndex]
	if active == nil {
		return 0, false
	}
	if !typechart.IsSuperEffective(incoming, active.Types()) || active.HPRatio() >= 0.5 {
		return 0, false
	}

	neutral := -1
	for i, c := range party {
		if i == activeIndex || c == nil || c.Fainted {
			continue
		}
		eff := typechart.Effectiveness(incoming, c.Types())
		if eff < 1.0 {
			return i, true
		}
		if eff == 1.0 && neutral == -1 {
			neutral = i
		}
	}
	if neutral >= 0 {
		return neutral, true
	}
	return 0, false
}
