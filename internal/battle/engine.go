package battle

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
	"github.com/ross1116/critterbattlecli/internal/typechart"
)

// Manager owns battle resolution: damage, ordering, catching, fleeing and
// the terminal-state check. It is deterministic given its random source.
type Manager struct {
	reg  *registry.Registry
	rng  *rand.Rand
	subs map[string][]func(Event)
}

func NewManager(reg *registry.Registry, rng *rand.Rand) *Manager {
	return &Manager{
		reg:  reg,
		rng:  rng,
		subs: make(map[string][]func(Event)),
	}
}

// NewBattle builds the aggregate for one session: both sides at slot 0,
// turn 0, status Active.
func (m *Manager) NewBattle(player, opponent *Participant, wild bool) *Battle {
	b := &Battle{
		ID:       uuid.NewString(),
		Player:   player,
		Opponent: opponent,
		Wild:     wild,
		Status:   StatusActive,
	}
	b.logf("%s challenges %s!", player.Name, opponent.Name)
	m.emit(EventBattleStart, map[string]any{
		"battle_id": b.ID,
		"wild":      wild,
	})
	return b
}

// MoveOutcome is the result of resolving one move against a defender.
type MoveOutcome struct {
	Damage             int
	IsSuperEffective   bool
	IsNotVeryEffective bool
}

// ResolveMoveAction computes the damage of attacker using moveID against a
// defender described by its stats and types. Status-category moves and
// unknown move ids resolve to a zero outcome with no flags; an unregistered
// move skips the effect rather than failing the turn.
func (m *Manager) ResolveMoveAction(attacker *critter.Critter, moveID string, defStats critter.StatBlock, defTypes []typechart.Type) MoveOutcome {
	if attacker == nil {
		slog.Warn("ResolveMoveAction called with nil attacker", "move", moveID)
		return MoveOutcome{}
	}
	mv, ok := m.reg.MoveByID(moveID)
	if !ok {
		return MoveOutcome{}
	}
	if mv.Category == registry.Status || mv.Power == 0 {
		return MoveOutcome{}
	}

	var atkStat, defStat int
	switch mv.Category {
	case registry.Physical:
		atkStat, defStat = attacker.Stats.Attack, defStats.Defense
		if attacker.Status == registry.AilmentBurn {
			atkStat /= 2
		}
	case registry.Special:
		atkStat, defStat = attacker.Stats.SpAtk, defStats.SpDef
	}
	if atkStat <= 0 || defStat <= 0 {
		slog.Warn("stat derivation error", "move", moveID, "atk", atkStat, "def", defStat)
		return MoveOutcome{}
	}

	stab := 1.0
	for _, t := range attacker.Types() {
		if t == mv.Type {
			stab = 1.5
			break
		}
	}
	effectiveness := typechart.Effectiveness(mv.Type, defTypes)
	randomFactor := 0.85 + m.rng.Float64()*0.15

	return MoveOutcome{
		Damage:             DamageRoll(attacker.Level, mv.Power, atkStat, defStat, stab, effectiveness, randomFactor),
		IsSuperEffective:   effectiveness > 1.0,
		IsNotVeryEffective: effectiveness < 1.0,
	}
}

// DamageRoll is the damage formula, kept pure so the arithmetic can be
// pinned in tests with a fixed random factor. Damaging moves deal at least 1
// unless the defender is immune.
func DamageRoll(level, power, atkStat, defStat int, stab, effectiveness, randomFactor float64) int {
	base := (2*float64(level)/5+2)*float64(power)*(float64(atkStat)/float64(defStat))/100 + 2
	dmg := int(math.Floor(base / 25 * stab * effectiveness * randomFactor))
	if dmg < 1 && effectiveness > 0 {
		dmg = 1
	}
	if effectiveness == 0 {
		dmg = 0
	}
	return dmg
}

// Actor identifies which side acts first in a turn.
type Actor string

const (
	ActorPlayer   Actor = "player"
	ActorOpponent Actor = "opponent"
)

// DetermineTurnOrder compares speed plus move priority. Ties go to the
// player, deliberately and deterministically.
func DetermineTurnOrder(player, opponent *critter.Critter, playerPriority, opponentPriority int) Actor {
	playerInitiative := playerPriority
	opponentInitiative := opponentPriority
	if player != nil {
		playerInitiative += player.Stats.Speed
	}
	if opponent != nil {
		opponentInitiative += opponent.Stats.Speed
	}
	if opponentInitiative > playerInitiative {
		return ActorOpponent
	}
	return ActorPlayer
}

// DoesMoveHit rolls accuracy as a percentage.
func (m *Manager) DoesMoveHit(accuracy int) bool {
	return m.rng.Float64()*100 <= float64(accuracy)
}
