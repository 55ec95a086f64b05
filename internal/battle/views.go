package battle

import (
	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
)

// CritterSummary is the roster line the presentation layer shows for each
// party member.
type CritterSummary struct {
	Name      string
	Level     int
	HPPercent float64
	Status    registry.Ailment
	Fainted   bool
}

// TeamSummary builds summaries for a whole roster.
func TeamSummary(party []*critter.Critter) []CritterSummary {
	summaries := make([]CritterSummary, len(party))
	for i, c := range party {
		if c == nil {
			summaries[i] = CritterSummary{Name: "(empty slot)"}
			continue
		}
		summaries[i] = CritterSummary{
			Name:      c.Name(),
			Level:     c.Level,
			HPPercent: c.HPRatio() * 100,
			Status:    c.Status,
			Fainted:   c.Fainted,
		}
	}
	return summaries
}

// MoveView is one selectable move line: catalog data joined with the
// critter's PP counter.
type MoveView struct {
	ID       string
	Name     string
	Type     string
	Power    int
	Accuracy int
	PP       int
	MaxPP    int
	Category registry.MoveCategory
}

// MoveViews lists a critter's moves for a selection menu. Slots whose move
// id no longer resolves are skipped rather than crashing the menu.
func MoveViews(reg *registry.Registry, c *critter.Critter) []MoveView {
	if c == nil {
		return nil
	}
	views := make([]MoveView, 0, len(c.Moves))
	for _, slot := range c.Moves {
		mv, ok := reg.MoveByID(slot.MoveID)
		if !ok {
			continue
		}
		views = append(views, MoveView{
			ID:       mv.ID,
			Name:     mv.Name,
			Type:     string(mv.Type),
			Power:    mv.Power,
			Accuracy: mv.Accuracy,
			PP:       slot.PP,
			MaxPP:    slot.MaxPP,
			Category: mv.Category,
		})
	}
	return views
}
