package battle

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
)

// Status is the battle's lifecycle state. Transitions are monotonic: once a
// battle leaves Active it accepts no further mutating actions.
type Status string

const (
	StatusActive      Status = "active"
	StatusPlayerWon   Status = "player_won"
	StatusOpponentWon Status = "opponent_won"
	StatusError       Status = "error"
)

// Participant is one side of a battle: a named roster with one active slot.
type Participant struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Party       []*critter.Critter `json:"party"`
	ActiveIndex int                `json:"active_index"`
}

// NewParticipant validates the roster size and starts at slot 0.
func NewParticipant(name string, party []*critter.Critter) (*Participant, error) {
	if len(party) < 1 || len(party) > 6 {
		return nil, fmt.Errorf("roster must hold 1-6 critters, has %d", len(party))
	}
	for i, c := range party {
		if c == nil {
			return nil, fmt.Errorf("roster slot %d is nil", i)
		}
	}
	return &Participant{
		ID:    uuid.NewString(),
		Name:  name,
		Party: party,
	}, nil
}

// Active returns the critter in the active slot, or nil on a bad index.
func (p *Participant) Active() *critter.Critter {
	if p.ActiveIndex < 0 || p.ActiveIndex >= len(p.Party) {
		return nil
	}
	return p.Party[p.ActiveIndex]
}

// HasActiveCritters reports whether any roster member can still fight.
func (p *Participant) HasActiveCritters() bool {
	for _, c := range p.Party {
		if c != nil && !c.Fainted {
			return true
		}
	}
	return false
}

// Battle is the mutable aggregate for one battle session. It holds only
// plain data (critters included) so it can cross the persistence boundary
// as-is.
type Battle struct {
	ID       string       `json:"id"`
	Player   *Participant `json:"player"`
	Opponent *Participant `json:"opponent"`
	Turn     int          `json:"turn"`
	Wild     bool         `json:"wild"`
	Log      []string     `json:"log"`
	Status   Status       `json:"status"`
}

func (b *Battle) logf(format string, args ...any) {
	b.Log = append(b.Log, fmt.Sprintf(format, args...))
}

// Snapshot serializes the battle to plain data.
func (b *Battle) Snapshot() ([]byte, error) {
	return json.Marshal(b)
}

// RestoreBattle rebuilds a battle from saved data, re-resolving every
// critter's species reference through the critter snapshot path. Malformed
// data is a hard failure.
func RestoreBattle(reg *registry.Registry, data []byte) (*Battle, error) {
	var b Battle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode battle snapshot: %w", err)
	}
	for _, p := range []*Participant{b.Player, b.Opponent} {
		if p == nil {
			return nil, fmt.Errorf("battle snapshot missing a participant")
		}
		for i, c := range p.Party {
			if c == nil {
				return nil, fmt.Errorf("participant %s slot %d is nil", p.Name, i)
			}
			raw, err := json.Marshal(c)
			if err != nil {
				return nil, err
			}
			restored, err := critter.FromSnapshot(reg, raw)
			if err != nil {
				return nil, fmt.Errorf("participant %s slot %d: %w", p.Name, i, err)
			}
			p.Party[i] = restored
		}
	}
	if b.Status == "" {
		b.Status = StatusActive
	}
	return &b, nil
}
