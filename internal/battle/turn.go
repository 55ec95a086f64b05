package battle

import (
	"github.com/ross1116/critterbattlecli/internal/ai"
	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
)

// PlayTurn resolves one full battle turn: the opponent's AI picks a move,
// both actions run in speed/priority order, end-of-turn status effects tick,
// the turn counter advances and the terminal check runs. It returns the
// narration lines the turn appended to the battle log.
func (m *Manager) PlayTurn(b *Battle, playerMoveID string, opponentAI ai.Chooser) []string {
	if b == nil || b.Status != StatusActive {
		return nil
	}
	logStart := len(b.Log)

	playerActive := b.Player.Active()
	opponentActive := b.Opponent.Active()
	if playerActive == nil || opponentActive == nil {
		b.logf("A critter is missing from the field!")
		return b.Log[logStart:]
	}

	playerMove, _ := m.reg.MoveByID(playerMoveID)
	var opponentMove *registry.Move
	if opponentAI != nil {
		opponentMove = opponentAI.ChooseMove(opponentActive, playerActive)
	}

	first := DetermineTurnOrder(playerActive, opponentActive, movePriority(playerMove), movePriority(opponentMove))

	actions := []struct {
		attacker, defender *Participant
		move               *registry.Move
	}{
		{b.Player, b.Opponent, playerMove},
		{b.Opponent, b.Player, opponentMove},
	}
	if first == ActorOpponent {
		actions[0], actions[1] = actions[1], actions[0]
	}

	for _, act := range actions {
		if b.Status != StatusActive {
			break
		}
		atk, def := act.attacker.Active(), act.defender.Active()
		if atk == nil || def == nil || atk.Fainted || def.Fainted {
			continue
		}
		m.executeMove(b, act.attacker, act.defender, act.move)
		m.CheckBattleStatus(b)
	}

	if b.Status == StatusActive {
		m.tickEndOfTurn(b, b.Player)
		m.tickEndOfTurn(b, b.Opponent)
		m.CheckBattleStatus(b)
	}

	b.Turn++
	return b.Log[logStart:]
}

func movePriority(mv *registry.Move) int {
	if mv == nil {
		return 0
	}
	return mv.Priority
}

func (m *Manager) executeMove(b *Battle, atkP, defP *Participant, mv *registry.Move) {
	attacker := atkP.Active()
	defender := defP.Active()

	if mv == nil {
		b.logf("%s has no move to use!", attacker.Name())
		return
	}
	if !m.canAct(b, attacker) {
		return
	}
	if !attacker.SpendPP(mv.ID) {
		b.logf("%s tried to use %s but has no PP left!", attacker.Name(), mv.Name)
		return
	}

	b.logf("%s used %s!", attacker.Name(), mv.Name)
	if !m.DoesMoveHit(mv.Accuracy) {
		b.logf("%s's attack missed!", attacker.Name())
		return
	}

	if mv.Category == registry.Status {
		if mv.Effect == nil || !m.ApplyStatusEffect(b, defP, mv.Effect.Ailment, mv.Effect.Turns) {
			b.logf("But it failed!")
		}
		return
	}

	outcome := m.ResolveMoveAction(attacker, mv.ID, defender.Stats, defender.Types())
	switch {
	case outcome.Damage == 0 && outcome.IsNotVeryEffective:
		b.logf("It doesn't affect %s!", defender.Name())
		return
	case outcome.IsSuperEffective:
		b.logf("It's super effective!")
	case outcome.IsNotVeryEffective:
		b.logf("It's not very effective...")
	}

	b.logf("%s took %d damage!", defender.Name(), outcome.Damage)
	m.DamageActiveCritter(b, defP, outcome.Damage)

	if mv.Effect != nil && !defender.Fainted && m.rng.IntN(100) < mv.Effect.Chance {
		m.ApplyStatusEffect(b, defP, mv.Effect.Ailment, mv.Effect.Turns)
	}
}

// canAct runs the pre-move status gate: sleeping and frozen critters skip
// their action (waking when the counter runs out), paralysis skips 25% of
// the time.
func (m *Manager) canAct(b *Battle, c *critter.Critter) bool {
	switch c.Status {
	case registry.AilmentSleep:
		if c.StatusTurns > 0 {
			c.StatusTurns--
			b.logf("%s is fast asleep!", c.Name())
			return false
		}
		c.CureStatus()
		b.logf("%s woke up!", c.Name())
	case registry.AilmentFreeze:
		if c.StatusTurns > 0 {
			c.StatusTurns--
			b.logf("%s is frozen solid!", c.Name())
			return false
		}
		c.CureStatus()
		b.logf("%s thawed out!", c.Name())
	case registry.AilmentParalyze:
		if m.rng.Float64() < 0.25 {
			b.logf("%s is paralyzed and can't move!", c.Name())
			return false
		}
	}
	return true
}

// tickEndOfTurn applies residual status damage to a side's active critter.
func (m *Manager) tickEndOfTurn(b *Battle, p *Participant) {
	c := p.Active()
	if c == nil || c.Fainted {
		return
	}
	switch c.Status {
	case registry.AilmentBurn:
		dmg := c.Stats.MaxHP / 16
		if dmg < 1 {
			dmg = 1
		}
		b.logf("%s took damage from its burn!", c.Name())
		m.DamageActiveCritter(b, p, dmg)
	case registry.AilmentPoison:
		dmg := c.Stats.MaxHP / 8
		if dmg < 1 {
			dmg = 1
		}
		b.logf("%s took damage from poison!", c.Name())
		m.DamageActiveCritter(b, p, dmg)
	}
}
