// Package session sequences the phases of one battle for the presentation
// layer. The arithmetic core stays synchronous; the only concurrency guard
// the system needs is this machine's at-most-one in-flight transition rule.
package session

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"
)

// Battle phases.
const (
	PhaseIntro           = "intro"
	PhasePreBattleInfo   = "preBattleInfo"
	PhaseBringOutCritter = "bringOutCritter"
	PhasePlayerInput     = "playerInput"
	PhaseEnemyInput      = "enemyInput"
	PhaseBattle          = "battle"
	PhasePostAttackCheck = "postAttackCheck"
	PhaseSwitchCritter   = "switchCritter"
	PhaseGainExperience  = "gainExperience"
	PhaseFleeing         = "fleeing"
	PhaseFinished        = "finished"
)

// Transition names.
const (
	EventBegin       = "begin"       // intro -> preBattleInfo
	EventAnnounce    = "announce"    // preBattleInfo -> bringOutCritter
	EventDeploy      = "deploy"      // bringOutCritter -> playerInput
	EventPlayerReady = "playerReady" // playerInput -> enemyInput
	EventReconsider  = "reconsider"  // enemyInput -> playerInput
	EventEnemyReady  = "enemyReady"  // enemyInput -> battle
	EventResolve     = "resolve"     // battle -> postAttackCheck
	EventContinue    = "continue"    // postAttackCheck -> playerInput
	EventSwitch      = "switch"      // postAttackCheck -> switchCritter
	EventResume      = "resume"      // switchCritter -> playerInput
	EventReward      = "reward"      // postAttackCheck -> gainExperience
	EventNextEnemy   = "nextEnemy"   // gainExperience -> bringOutCritter
	EventFlee        = "flee"        // postAttackCheck -> fleeing
	EventFinish      = "finish"      // terminal entry
)

// Session drives the phase machine. One session owns one battle; it is not
// safe for concurrent use and does not need to be -- re-entrant transition
// requests (e.g. from rapid input) are dropped, not queued.
type Session struct {
	machine       *fsm.FSM
	transitioning bool
	log           *slog.Logger
	onEnter       func(phase string)
}

// New builds a session at the intro phase. onEnter, when non-nil, fires
// after each completed transition with the phase just entered.
func New(logger *slog.Logger, onEnter func(phase string)) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{log: logger, onEnter: onEnter}
	s.machine = fsm.NewFSM(
		PhaseIntro,
		fsm.Events{
			{Name: EventBegin, Src: []string{PhaseIntro}, Dst: PhasePreBattleInfo},
			{Name: EventAnnounce, Src: []string{PhasePreBattleInfo}, Dst: PhaseBringOutCritter},
			{Name: EventDeploy, Src: []string{PhaseBringOutCritter}, Dst: PhasePlayerInput},
			{Name: EventPlayerReady, Src: []string{PhasePlayerInput}, Dst: PhaseEnemyInput},
			{Name: EventReconsider, Src: []string{PhaseEnemyInput}, Dst: PhasePlayerInput},
			{Name: EventEnemyReady, Src: []string{PhaseEnemyInput}, Dst: PhaseBattle},
			{Name: EventResolve, Src: []string{PhaseBattle}, Dst: PhasePostAttackCheck},
			{Name: EventContinue, Src: []string{PhasePostAttackCheck}, Dst: PhasePlayerInput},
			{Name: EventSwitch, Src: []string{PhasePostAttackCheck}, Dst: PhaseSwitchCritter},
			{Name: EventResume, Src: []string{PhaseSwitchCritter}, Dst: PhasePlayerInput},
			{Name: EventReward, Src: []string{PhasePostAttackCheck}, Dst: PhaseGainExperience},
			{Name: EventNextEnemy, Src: []string{PhaseGainExperience}, Dst: PhaseBringOutCritter},
			{Name: EventFlee, Src: []string{PhasePostAttackCheck}, Dst: PhaseFleeing},
			{Name: EventFinish, Src: []string{PhasePostAttackCheck, PhaseGainExperience, PhaseFleeing}, Dst: PhaseFinished},
		},
		fsm.Callbacks{},
	)
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() string {
	return s.machine.Current()
}

// Finished reports whether the session reached its terminal phase.
func (s *Session) Finished() bool {
	return s.Phase() == PhaseFinished
}

// TransitionTo requests a named transition. It returns false and leaves the
// machine untouched when another transition is in flight, when the session
// is finished, or when the transition is not legal from the current phase.
func (s *Session) TransitionTo(event string) bool {
	if s.transitioning {
		s.log.Debug("dropping re-entrant transition", "event", event, "phase", s.Phase())
		return false
	}
	if s.Finished() {
		return false
	}
	s.transitioning = true
	defer func() { s.transitioning = false }()

	if err := s.machine.Event(context.Background(), event); err != nil {
		s.log.Debug("transition rejected", "event", event, "phase", s.Phase(), "err", err)
		return false
	}
	s.log.Debug("phase change", "event", event, "phase", s.Phase())
	if s.onEnter != nil {
		s.onEnter(s.Phase())
	}
	return true
}

// Can reports whether a transition is legal from the current phase.
func (s *Session) Can(event string) bool {
	return !s.Finished() && s.machine.Can(event)
}
