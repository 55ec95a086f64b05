package battle_test

import (
	"math"
	"testing"

	"github.com/ross1116/critterbattlecli/internal/battle"
	"github.com/ross1116/critterbattlecli/internal/registry"
)

func TestCatchProbabilityLiteralScenario(t *testing.T) {
	_, reg := newManager(t)

	// Catch-rate 45, target at exactly half HP, plain orb, no status:
	// (45/255) * 1.0 * 1.0 * 0.5
	target := mustCritter(t, reg, "embercub", 10)
	target.CurrentHP = target.Stats.MaxHP / 2
	target.Stats.MaxHP = target.CurrentHP * 2 // pin the ratio at exactly 0.5

	want := 45.0 / 255.0 * 0.5
	got := battle.CalculateCatchProbability(target, 1.0, 1.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("catch probability = %.6f, want %.6f", got, want)
	}
	if math.Abs(got-0.0882) > 0.001 {
		t.Errorf("catch probability = %.4f, want about 0.0882", got)
	}
}

func TestCatchProbabilityBoundsAndMonotonicity(t *testing.T) {
	_, reg := newManager(t)
	target := mustCritter(t, reg, "plainpup", 10) // catch rate 255

	previous := 1.1
	for hp := 0; hp <= target.Stats.MaxHP; hp++ {
		target.CurrentHP = hp
		p := battle.CalculateCatchProbability(target, 1.0, 1.0)
		if p < 0 || p > 1 {
			t.Fatalf("probability %v out of [0,1] at hp %d", p, hp)
		}
		if p >= previous {
			t.Fatalf("probability should strictly decrease as HP rises: %v -> %v at hp %d", previous, p, hp)
		}
		previous = p
	}

	target.CurrentHP = target.Stats.MaxHP
	if p := battle.CalculateCatchProbability(target, 1.0, 1.0); p != 0 {
		t.Errorf("full-health target should be uncatchable, got %v", p)
	}
}

func TestStatusBonusTable(t *testing.T) {
	cases := []struct {
		ailment registry.Ailment
		want    float64
	}{
		{registry.AilmentSleep, 2.0},
		{registry.AilmentFreeze, 2.0},
		{registry.AilmentParalyze, 1.5},
		{registry.AilmentPoison, 1.5},
		{registry.AilmentBurn, 1.5},
		{registry.AilmentNone, 1.0},
	}
	for _, c := range cases {
		if got := battle.StatusBonusFor(c.ailment); got != c.want {
			t.Errorf("StatusBonusFor(%q) = %v, want %v", c.ailment, got, c.want)
		}
	}
}

func TestAttemptCatchOnlyInWildEncounters(t *testing.T) {
	m, reg := newManager(t)
	player := mustParticipant(t, "Ash", mustCritter(t, reg, "embercub", 10))
	trainer := mustParticipant(t, "Rival", mustCritter(t, reg, "aquafin", 10))

	b := m.NewBattle(player, trainer, false)
	target := trainer.Active()
	target.CurrentHP = 1
	logBefore := len(b.Log)

	for i := 0; i < 20; i++ {
		if m.AttemptCatch(b, target, 10.0) {
			t.Fatal("catching in a trainer battle must always fail")
		}
	}
	if len(b.Log) != logBefore {
		t.Error("failed trainer-battle catch must not mutate the battle log")
	}
}

func TestAttemptCatchRejectsFaintedTarget(t *testing.T) {
	m, reg := newManager(t)
	player := mustParticipant(t, "Ash", mustCritter(t, reg, "embercub", 10))
	wild := mustParticipant(t, "Wild", mustCritter(t, reg, "plainpup", 5))

	b := m.NewBattle(player, wild, true)
	target := wild.Active()
	target.ApplyDamage(target.Stats.MaxHP)

	if m.AttemptCatch(b, target, 10.0) {
		t.Error("catching a fainted target must fail")
	}
}

func TestAttemptCatchEventuallySucceedsOnWeakTarget(t *testing.T) {
	m, reg := newManager(t)
	player := mustParticipant(t, "Ash", mustCritter(t, reg, "embercub", 10))
	wild := mustParticipant(t, "Wild", mustCritter(t, reg, "plainpup", 5))

	b := m.NewBattle(player, wild, true)
	target := wild.Active()
	target.CurrentHP = 1

	caught := false
	var successes int
	m.Subscribe(battle.EventCaptureSuccess, func(e battle.Event) { successes++ })

	for i := 0; i < 200 && !caught; i++ {
		caught = m.AttemptCatch(b, target, 2.0)
	}
	if !caught {
		t.Fatal("a 1-HP catch-rate-255 target should be caught within 200 ultra orb throws")
	}
	if successes != 1 {
		t.Errorf("capture.success emitted %d times, want 1", successes)
	}
}

func TestSimulateCatchAnimationRange(t *testing.T) {
	m, _ := newManager(t)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		shakes := m.SimulateCatchAnimation()
		if shakes < 1 || shakes > 4 {
			t.Fatalf("shake count %d outside 1-4", shakes)
		}
		seen[shakes] = true
	}
	if !seen[1] || !seen[4] {
		t.Errorf("500 samples should cover both quick breaks and full suspense, saw %v", seen)
	}
}

func TestAttemptFlee(t *testing.T) {
	m, reg := newManager(t)
	player := mustParticipant(t, "Ash", mustCritter(t, reg, "zapkit", 20))
	trainer := mustParticipant(t, "Rival", mustCritter(t, reg, "boulderon", 20))

	// Trainer battle: never.
	b := m.NewBattle(player, trainer, false)
	for i := 0; i < 20; i++ {
		if m.AttemptFlee(b, 100, 1) {
			t.Fatal("fleeing a trainer battle must always fail")
		}
	}

	// Wild battle with an overwhelming speed edge: capped at 0.9 but should
	// succeed within a handful of tries.
	wild := m.NewBattle(player, trainer, true)
	fled := false
	for i := 0; i < 100 && !fled; i++ {
		fled = m.AttemptFlee(wild, 1000, 1)
	}
	if !fled {
		t.Error("a 90% flee chance should succeed within 100 attempts")
	}
}
