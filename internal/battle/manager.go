package battle

import (
	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/leveling"
	"github.com/ross1116/critterbattlecli/internal/registry"
)

// SwitchCritter moves a participant's active slot. Invalid indices, fainted
// targets, switching to the current slot, or a finished battle are all
// no-ops returning false so the driving layer can poll instead of catching
// errors.
func (m *Manager) SwitchCritter(b *Battle, p *Participant, index int) bool {
	if b == nil || p == nil || b.Status != StatusActive {
		return false
	}
	if index < 0 || index >= len(p.Party) || index == p.ActiveIndex {
		return false
	}
	target := p.Party[index]
	if target == nil || target.Fainted {
		return false
	}
	p.ActiveIndex = index
	b.logf("%s sent out %s!", p.Name, target.Name())
	m.emit(EventSwitched, map[string]any{
		"battle_id":      b.ID,
		"participant_id": p.ID,
		"active_index":   index,
		"critter_id":     target.ID,
	})
	return true
}

// DamageActiveCritter applies damage to a participant's active critter.
func (m *Manager) DamageActiveCritter(b *Battle, p *Participant, damage int) bool {
	if b == nil || p == nil || b.Status != StatusActive || damage < 0 {
		return false
	}
	target := p.Active()
	if target == nil || target.Fainted {
		return false
	}
	target.ApplyDamage(damage)
	m.emit(EventDamageDealt, map[string]any{
		"battle_id":  b.ID,
		"critter_id": target.ID,
		"damage":     damage,
		"current_hp": target.CurrentHP,
	})
	if target.Fainted {
		b.logf("%s fainted!", target.Name())
		m.emit(EventFainted, map[string]any{
			"battle_id":  b.ID,
			"critter_id": target.ID,
		})
	}
	return true
}

// ApplyStatusEffect puts a condition on the participant's active critter.
// False when it already has one, has fainted, or the battle is over.
func (m *Manager) ApplyStatusEffect(b *Battle, p *Participant, ailment registry.Ailment, turns int) bool {
	if b == nil || p == nil || b.Status != StatusActive {
		return false
	}
	target := p.Active()
	if target == nil || !target.ApplyAilment(ailment, turns) {
		return false
	}
	b.logf("%s was afflicted by %s!", target.Name(), ailment)
	m.emit(EventStatusApplied, map[string]any{
		"battle_id":  b.ID,
		"critter_id": target.ID,
		"ailment":    string(ailment),
	})
	return true
}

// HealParty fully restores a roster: HP, PP and status. Used by healing
// stations between battles, so it takes no battle and needs none.
func (m *Manager) HealParty(p *Participant) {
	if p == nil {
		return
	}
	for _, c := range p.Party {
		if c == nil {
			continue
		}
		c.Heal(c.Stats.MaxHP)
		c.RestorePP()
	}
}

// CheckBattleStatus is the single authority for ending a battle. Both sides
// out is an error state (a draw should not normally occur); otherwise the
// side with critters left wins. Once terminal the stored status is returned
// unchanged forever.
func (m *Manager) CheckBattleStatus(b *Battle) Status {
	if b == nil {
		return StatusError
	}
	if b.Status != StatusActive {
		return b.Status
	}

	playerAlive := b.Player.HasActiveCritters()
	opponentAlive := b.Opponent.HasActiveCritters()

	switch {
	case !playerAlive && !opponentAlive:
		b.Status = StatusError
	case !playerAlive:
		b.Status = StatusOpponentWon
		b.logf("%s is out of usable critters! %s wins!", b.Player.Name, b.Opponent.Name)
	case !opponentAlive:
		b.Status = StatusPlayerWon
		b.logf("%s is out of usable critters! %s wins!", b.Opponent.Name, b.Player.Name)
	default:
		return StatusActive
	}

	m.emit(EventBattleEnd, map[string]any{
		"battle_id": b.ID,
		"status":    string(b.Status),
		"turns":     b.Turn,
	})
	return b.Status
}

// PendingGrowth is what a level-up unlocked but did not apply. Learning a
// move and evolving both need a separate confirmation step.
type PendingGrowth struct {
	ExpGained      int
	LevelsGained   int
	LearnableMoves []string
	CanEvolve      bool
}

// DistributeExperience awards the winning side's active critter experience
// for the defeated critter and reports any pending move-learn or evolution
// prompts.
func (m *Manager) DistributeExperience(b *Battle, winner *Participant, defeated *registry.Species, defeatedLevel int) PendingGrowth {
	var pending PendingGrowth
	if b == nil || winner == nil || defeated == nil {
		return pending
	}
	earner := winner.Active()
	if earner == nil || earner.Fainted {
		return pending
	}

	oldLevel := earner.Level
	pending.ExpGained = leveling.ExperienceGained(defeated.BaseExp, defeatedLevel, true, b.Wild)
	pending.LevelsGained = earner.AddExperience(pending.ExpGained)
	b.logf("%s gained %d experience!", earner.Name(), pending.ExpGained)
	if pending.LevelsGained > 0 {
		b.logf("%s grew to level %d!", earner.Name(), earner.Level)
	}
	m.emit(EventExpGained, map[string]any{
		"battle_id":  b.ID,
		"critter_id": earner.ID,
		"exp":        pending.ExpGained,
		"levels":     pending.LevelsGained,
	})

	if pending.LevelsGained > 0 {
		pending.LearnableMoves = earner.LearnableBetween(oldLevel, earner.Level)
		for _, moveID := range pending.LearnableMoves {
			m.emit(EventMoveLearnable, map[string]any{
				"critter_id": earner.ID,
				"move_id":    moveID,
			})
		}
		if earner.CanEvolve() {
			pending.CanEvolve = true
			m.emit(EventEvolutionReady, map[string]any{
				"critter_id":   earner.ID,
				"species_id":   earner.SpeciesID,
				"evolves_into": earner.Species().EvolvesInto,
			})
		}
	}
	return pending
}

// ConfirmLearnMove applies a confirmed move-learn prompt. When the critter
// is at the slot cap, forgetID names the move to drop first; an empty
// forgetID with a full moveset fails.
func (m *Manager) ConfirmLearnMove(c *critter.Critter, moveID, forgetID string) bool {
	if c == nil {
		return false
	}
	if forgetID != "" && !c.ForgetMove(forgetID) {
		return false
	}
	return c.LearnMove(m.reg, moveID)
}

// ConfirmEvolution applies a confirmed evolution prompt.
func (m *Manager) ConfirmEvolution(c *critter.Critter) bool {
	if c == nil {
		return false
	}
	return c.Evolve(m.reg)
}
