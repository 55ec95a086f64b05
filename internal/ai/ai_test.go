package ai_test

import (
	"math/rand/v2"
	"testing"

	"github.com/ross1116/critterbattlecli/internal/ai"
	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
	"github.com/ross1116/critterbattlecli/internal/typechart"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	if err := reg.LoadBuiltin(); err != nil {
		t.Fatalf("LoadBuiltin failed: %v", err)
	}
	return reg
}

func seededRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 42))
}

func TestWildChooserEmptyMoveListReturnsNoMove(t *testing.T) {
	reg := newRegistry(t)
	w := &ai.WildChooser{Reg: reg, RNG: seededRNG()}

	c, _ := critter.New(reg, "plainpup", 5)
	c.Moves = nil

	if mv := w.ChooseMove(c, nil); mv != nil {
		t.Errorf("empty move list should yield no move, got %v", mv)
	}
	if mv := w.ChooseMove(nil, nil); mv != nil {
		t.Errorf("nil attacker should yield no move, got %v", mv)
	}
}

func TestWildChooserPicksOnlyUsableMoves(t *testing.T) {
	reg := newRegistry(t)
	w := &ai.WildChooser{Reg: reg, RNG: seededRNG()}

	c, _ := critter.New(reg, "plainpup", 10) // tackle, quick-strike
	c.SlotFor("tackle").PP = 0

	for i := 0; i < 50; i++ {
		mv := w.ChooseMove(c, nil)
		if mv == nil || mv.ID == "tackle" {
			t.Fatalf("iteration %d: chose %v, want quick-strike only", i, mv)
		}
	}
}

func TestWildChooserFallsBackToFirstMoveWhenExhausted(t *testing.T) {
	reg := newRegistry(t)
	w := &ai.WildChooser{Reg: reg, RNG: seededRNG()}

	c, _ := critter.New(reg, "plainpup", 10)
	for i := range c.Moves {
		c.Moves[i].PP = 0
	}

	mv := w.ChooseMove(c, nil)
	if mv == nil || mv.ID != c.Moves[0].MoveID {
		t.Errorf("exhausted moveset should fall back to first move, got %v", mv)
	}
}

func TestTrainerChooserPrefersEffectiveSTABMoves(t *testing.T) {
	reg := newRegistry(t)
	tc := ai.NewTrainerChooser(reg, seededRNG())
	tc.Jitter = 0 // deterministic for the assertion

	attacker, _ := critter.New(reg, "embercub", 30) // fire; knows tackle, ember, flame-claw, inferno-burst
	defender, _ := critter.New(reg, "sproutle", 30) // grass

	mv := tc.ChooseMove(attacker, defender)
	if mv == nil || mv.Type != typechart.Fire {
		t.Fatalf("against grass, fire attacker should pick a fire move, got %v", mv)
	}
	// inferno-burst: 95 power x 2 eff x 1.5 stab x 0.85 acc beats the rest.
	if mv.ID != "inferno-burst" {
		t.Errorf("chose %s, want inferno-burst", mv.ID)
	}
}

func TestTrainerChooserSkipsExhaustedMoves(t *testing.T) {
	reg := newRegistry(t)
	tc := ai.NewTrainerChooser(reg, seededRNG())
	tc.Jitter = 0

	attacker, _ := critter.New(reg, "embercub", 30)
	defender, _ := critter.New(reg, "sproutle", 30)
	attacker.SlotFor("inferno-burst").PP = 0

	mv := tc.ChooseMove(attacker, defender)
	if mv == nil || mv.ID == "inferno-burst" {
		t.Errorf("exhausted best move should be skipped, got %v", mv)
	}
	if mv.ID != "flame-claw" {
		t.Errorf("chose %s, want flame-claw as next best", mv.ID)
	}
}

func TestBossChooserWeightsEffectivenessHarder(t *testing.T) {
	reg := newRegistry(t)
	boss := ai.NewBossChooser(reg, seededRNG())
	if boss.EffectivenessWeight <= 1.0 {
		t.Errorf("boss effectiveness weight = %v, want > 1", boss.EffectivenessWeight)
	}
	trainer := ai.NewTrainerChooser(reg, seededRNG())
	if boss.Jitter >= trainer.Jitter {
		t.Errorf("boss jitter %v should be narrower than trainer %v", boss.Jitter, trainer.Jitter)
	}
}

func TestSuggestSwitch(t *testing.T) {
	reg := newRegistry(t)

	sproutle, _ := critter.New(reg, "sproutle", 20)  // grass: weak to fire
	aquafin, _ := critter.New(reg, "aquafin", 20)    // water: resists fire
	plainpup, _ := critter.New(reg, "plainpup", 20)  // normal: neutral to fire
	party := []*critter.Critter{sproutle, aquafin, plainpup}

	// Healthy: no swap even at a type disadvantage.
	if _, ok := ai.SuggestSwitch(party, 0, typechart.Fire); ok {
		t.Error("healthy critter should not swap")
	}

	sproutle.ApplyDamage(sproutle.Stats.MaxHP/2 + 1)
	idx, ok := ai.SuggestSwitch(party, 0, typechart.Fire)
	if !ok || idx != 1 {
		t.Errorf("SuggestSwitch = %d,%v, want 1 (aquafin resists fire)", idx, ok)
	}

	// With the resister fainted, settle for the neutral pick.
	aquafin.ApplyDamage(aquafin.Stats.MaxHP)
	idx, ok = ai.SuggestSwitch(party, 0, typechart.Fire)
	if !ok || idx != 2 {
		t.Errorf("SuggestSwitch = %d,%v, want 2 (plainpup neutral)", idx, ok)
	}

	// No candidates at all.
	plainpup.ApplyDamage(plainpup.Stats.MaxHP)
	if _, ok := ai.SuggestSwitch(party, 0, typechart.Fire); ok {
		t.Error("no bench candidates should mean no swap")
	}

	// Neutral matchup never swaps.
	if _, ok := ai.SuggestSwitch(party, 0, typechart.Normal); ok {
		t.Error("neutral incoming type should not trigger a swap")
	}
}
