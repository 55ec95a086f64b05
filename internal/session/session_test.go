package session_test

import (
	"testing"

	"github.com/ross1116/critterbattlecli/internal/session"
)

func TestHappyPathPhaseSequence(t *testing.T) {
	s := session.New(nil, nil)

	steps := []struct {
		event string
		phase string
	}{
		{session.EventBegin, session.PhasePreBattleInfo},
		{session.EventAnnounce, session.PhaseBringOutCritter},
		{session.EventDeploy, session.PhasePlayerInput},
		{session.EventPlayerReady, session.PhaseEnemyInput},
		{session.EventEnemyReady, session.PhaseBattle},
		{session.EventResolve, session.PhasePostAttackCheck},
		{session.EventContinue, session.PhasePlayerInput},
		{session.EventPlayerReady, session.PhaseEnemyInput},
		{session.EventEnemyReady, session.PhaseBattle},
		{session.EventResolve, session.PhasePostAttackCheck},
		{session.EventReward, session.PhaseGainExperience},
		{session.EventFinish, session.PhaseFinished},
	}

	for i, step := range steps {
		if !s.TransitionTo(step.event) {
			t.Fatalf("step %d: transition %s rejected at phase %s", i, step.event, s.Phase())
		}
		if s.Phase() != step.phase {
			t.Fatalf("step %d: phase = %s, want %s", i, s.Phase(), step.phase)
		}
	}
	if !s.Finished() {
		t.Error("session should be finished")
	}
}

func TestIllegalTransitionsRejected(t *testing.T) {
	s := session.New(nil, nil)

	if s.TransitionTo(session.EventResolve) {
		t.Error("resolve from intro should be rejected")
	}
	if s.Phase() != session.PhaseIntro {
		t.Errorf("phase = %s, want intro after rejected transition", s.Phase())
	}
	if s.Can(session.EventResolve) {
		t.Error("Can(resolve) should be false at intro")
	}
	if !s.Can(session.EventBegin) {
		t.Error("Can(begin) should be true at intro")
	}
}

func TestFinishedIsTerminal(t *testing.T) {
	s := session.New(nil, nil)
	drive(t, s, session.EventBegin, session.EventAnnounce, session.EventDeploy,
		session.EventPlayerReady, session.EventEnemyReady, session.EventResolve, session.EventFinish)

	if !s.Finished() {
		t.Fatal("session should be finished")
	}
	for _, event := range []string{session.EventBegin, session.EventContinue, session.EventResolve, session.EventFinish} {
		if s.TransitionTo(event) {
			t.Errorf("transition %s left the terminal phase", event)
		}
	}
	if s.Phase() != session.PhaseFinished {
		t.Errorf("phase = %s, want finished", s.Phase())
	}
}

func TestReentrantTransitionDropped(t *testing.T) {
	var s *session.Session
	var nested []bool
	s = session.New(nil, func(phase string) {
		if phase == session.PhasePreBattleInfo {
			// A re-entrant request while the first transition is still in
			// flight must be dropped, not queued.
			nested = append(nested, s.TransitionTo(session.EventAnnounce))
		}
	})

	if !s.TransitionTo(session.EventBegin) {
		t.Fatal("begin rejected")
	}
	if len(nested) != 1 || nested[0] {
		t.Errorf("nested transition results = %v, want [false]", nested)
	}
	if s.Phase() != session.PhasePreBattleInfo {
		t.Errorf("phase = %s, want preBattleInfo (nested transition dropped)", s.Phase())
	}
	// The machine is free again afterwards.
	if !s.TransitionTo(session.EventAnnounce) {
		t.Error("transition after completed in-flight transition should work")
	}
}

func TestSwitchAndFleeBranches(t *testing.T) {
	s := session.New(nil, nil)
	drive(t, s, session.EventBegin, session.EventAnnounce, session.EventDeploy,
		session.EventPlayerReady, session.EventEnemyReady, session.EventResolve)

	if !s.TransitionTo(session.EventSwitch) {
		t.Fatal("switch branch rejected")
	}
	if !s.TransitionTo(session.EventResume) {
		t.Fatal("resume after switch rejected")
	}

	drive(t, s, session.EventPlayerReady, session.EventEnemyReady, session.EventResolve)
	if !s.TransitionTo(session.EventFlee) {
		t.Fatal("flee branch rejected")
	}
	if !s.TransitionTo(session.EventFinish) {
		t.Fatal("finish after fleeing rejected")
	}
}

func drive(t *testing.T, s *session.Session, events ...string) {
	t.Helper()
	for _, event := range events {
		if !s.TransitionTo(event) {
			t.Fatalf("transition %s rejected at phase %s", event, s.Phase())
		}
	}
}
