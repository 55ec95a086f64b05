package critter

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/ross1116/critterbattlecli/internal/leveling"
	"github.com/ross1116/critterbattlecli/internal/registry"
	"github.com/ross1116/critterbattlecli/internal/typechart"
)

// IV and nature are fixed for now; kept as named constants so a future build
// can parameterize them per instance.
const (
	fixedIV   = 31
	natureMod = 1.0
	MaxMoves  = 4
)

// StatBlock is a critter's level-derived stat snapshot.
type StatBlock struct {
	MaxHP   int `json:"max_hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"sp_atk"`
	SpDef   int `json:"sp_def"`
	Speed   int `json:"speed"`
}

// MoveSlot is a learned move instance with its PP counter.
type MoveSlot struct {
	MoveID string `json:"move_id"`
	PP     int    `json:"pp"`
	MaxPP  int    `json:"max_pp"`
}

// Critter is a leveled instance of a species. All exported fields are plain
// data so the whole entity round-trips through JSON for the save system; the
// species pointer is a cache re-resolved on load.
type Critter struct {
	ID          string           `json:"id"`
	SpeciesID   string           `json:"species_id"`
	Nickname    string           `json:"nickname,omitempty"`
	Level       int              `json:"level"`
	Exp         int              `json:"exp"`
	Stats       StatBlock        `json:"stats"`
	CurrentHP   int              `json:"current_hp"`
	Status      registry.Ailment `json:"status,omitempty"`
	StatusTurns int              `json:"status_turns,omitempty"`
	Fainted     bool             `json:"fainted"`
	Moves       []MoveSlot       `json:"moves"`

	species *registry.Species
}

// New builds a critter of the given species at the given level, at full HP,
// knowing the newest moves its learnset allows. A bad species id or level is
// a data-integrity error, not a game condition.
func New(reg *registry.Registry, speciesID string, level int) (*Critter, error) {
	sp, ok := reg.SpeciesByID(speciesID)
	if !ok {
		return nil, fmt.Errorf("unknown species %q", speciesID)
	}
	if level < leveling.MinLevel || level > leveling.MaxLevel {
		return nil, fmt.Errorf("level %d outside [%d,%d]", level, leveling.MinLevel, leveling.MaxLevel)
	}

	c := &Critter{
		ID:        uuid.NewString(),
		SpeciesID: speciesID,
		Level:     level,
		Exp:       leveling.TotalExpFor(level),
		species:   sp,
	}
	c.Stats = deriveStats(sp.Stats, level)
	c.CurrentHP = c.Stats.MaxHP

	for _, lm := range sp.Learnset {
		if lm.Level > level {
			continue
		}
		if len(c.Moves) == MaxMoves {
			// Keep the newest moves: drop the oldest slot.
			c.Moves = c.Moves[1:]
		}
		c.learn(reg, lm.MoveID)
	}
	return c, nil
}

func deriveStats(base registry.BaseStats, level int) StatBlock {
	stat := func(b int) int {
		return int(math.Floor((float64(2*b+fixedIV)*float64(level)/100 + 5) * natureMod))
	}
	maxHP := int(math.Floor(float64(2*base.HP+fixedIV+100)*float64(level)/100 + 5))
	if maxHP < 1 {
		maxHP = 1
	}
	return StatBlock{
		MaxHP:   maxHP,
		Attack:  stat(base.Attack),
		Defense: stat(base.Defense),
		SpAtk:   stat(base.SpAtk),
		SpDef:   stat(base.SpDef),
		Speed:   stat(base.Speed),
	}
}

// Species returns the cached catalog entry.
func (c *Critter) Species() *registry.Species { return c.species }

// Name returns the nickname when set, otherwise the species display name.
func (c *Critter) Name() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	if c.species != nil {
		return c.species.Name
	}
	return c.SpeciesID
}

func (c *Critter) Types() []typechart.Type {
	if c.species == nil {
		return nil
	}
	return c.species.Types
}

// HPRatio returns current HP as a fraction of max, in [0,1].
func (c *Critter) HPRatio() float64 {
	if c.Stats.MaxHP <= 0 {
		return 0
	}
	return float64(c.CurrentHP) / float64(c.Stats.MaxHP)
}

// ApplyDamage subtracts HP, clamping at zero and setting the fainted flag
// exactly when HP reaches zero. Negative amounts are ignored.
func (c *Critter) ApplyDamage(amount int) {
	if amount < 0 {
		return
	}
	c.CurrentHP -= amount
	if c.CurrentHP <= 0 {
		c.CurrentHP = 0
		c.Fainted = true
	}
}

// Heal restores HP up to max and clears any status condition and the fainted
// flag. Negative amounts are ignored.
func (c *Critter) Heal(amount int) {
	if amount < 0 {
		return
	}
	c.CurrentHP += amount
	if c.CurrentHP > c.Stats.MaxHP {
		c.CurrentHP = c.Stats.MaxHP
	}
	if c.CurrentHP > 0 {
		c.Fainted = false
	}
	c.CureStatus()
}

// CureStatus clears the status condition without touching HP.
func (c *Critter) CureStatus() {
	c.Status = registry.AilmentNone
	c.StatusTurns = 0
}

// ApplyAilment sets a status condition. Conditions don't stack: a critter
// that already has one, or has fainted, is left alone.
func (c *Critter) ApplyAilment(a registry.Ailment, turns int) bool {
	if a == registry.AilmentNone || c.Status != registry.AilmentNone || c.Fainted {
		return false
	}
	c.Status = a
	c.StatusTurns = turns
	return true
}

// AddExperience adds exp and applies every level-up the new total crosses,
// recalculating stats at each step and preserving the HP ratio. Returns the
// number of levels gained. Experience never decreases and is capped at the
// level ceiling's total.
func (c *Critter) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.Exp += amount
	if ceiling := leveling.TotalExpFor(leveling.MaxLevel); c.Exp > ceiling {
		c.Exp = ceiling
	}

	gained := 0
	for c.Level < leveling.MaxLevel && c.Exp >= leveling.TotalExpFor(c.Level+1) {
		c.Level++
		gained++
		c.recalcStats()
	}
	return gained
}

// recalcStats rebuilds the stat block for the current species and level,
// scaling current HP so the HP ratio survives the new max.
func (c *Critter) recalcStats() {
	ratio := c.HPRatio()
	c.Stats = deriveStats(c.species.Stats, c.Level)
	c.CurrentHP = int(math.Ceil(float64(c.Stats.MaxHP) * ratio))
	if c.CurrentHP > c.Stats.MaxHP {
		c.CurrentHP = c.Stats.MaxHP
	}
	if c.CurrentHP <= 0 {
		c.CurrentHP = 0
		c.Fainted = true
	}
}

// LearnMove adds a move instance. Adding past the slot cap, an unknown move
// id, or a duplicate is a no-op returning false; callers that want to swap a
// move out check capacity first and forget one.
func (c *Critter) LearnMove(reg *registry.Registry, moveID string) bool {
	if len(c.Moves) >= MaxMoves {
		return false
	}
	return c.learn(reg, moveID)
}

func (c *Critter) learn(reg *registry.Registry, moveID string) bool {
	if c.Knows(moveID) {
		return false
	}
	mv, ok := reg.MoveByID(moveID)
	if !ok {
		return false
	}
	c.Moves = append(c.Moves, MoveSlot{MoveID: mv.ID, PP: mv.PP, MaxPP: mv.PP})
	return true
}

// ForgetMove removes a known move, freeing its slot.
func (c *Critter) ForgetMove(moveID string) bool {
	for i, slot := range c.Moves {
		if slot.MoveID == moveID {
			c.Moves = append(c.Moves[:i], c.Moves[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Critter) Knows(moveID string) bool {
	for _, slot := range c.Moves {
		if slot.MoveID == moveID {
			return true
		}
	}
	return false
}

// SlotFor returns the move slot for a move id, or nil.
func (c *Critter) SlotFor(moveID string) *MoveSlot {
	for i := range c.Moves {
		if c.Moves[i].MoveID == moveID {
			return &c.Moves[i]
		}
	}
	return nil
}

// SpendPP consumes one PP of a move. False when the move is unknown or
// exhausted, so the caller can narrate "no PP left" instead of acting.
func (c *Critter) SpendPP(moveID string) bool {
	slot := c.SlotFor(moveID)
	if slot == nil || slot.PP <= 0 {
		return false
	}
	slot.PP--
	return true
}

// RestorePP refills every move slot, as happens between battles.
func (c *Critter) RestorePP() {
	for i := range c.Moves {
		c.Moves[i].PP = c.Moves[i].MaxPP
	}
}

// LearnableBetween lists learnset moves unlocked above oldLevel and at or
// below newLevel that the critter doesn't already know.
func (c *Critter) LearnableBetween(oldLevel, newLevel int) []string {
	var out []string
	if c.species == nil {
		return out
	}
	for _, lm := range c.species.Learnset {
		if lm.Level > oldLevel && lm.Level <= newLevel && !c.Knows(lm.MoveID) {
			out = append(out, lm.MoveID)
		}
	}
	return out
}

// CanEvolve reports whether the species has an evolution the current level
// unlocks.
func (c *Critter) CanEvolve() bool {
	return c.species != nil && c.species.EvolvesInto != "" && c.Level >= c.species.EvolveLevel
}

// Evolve swaps the critter to its evolution target, recalculating stats and
// preserving the HP ratio. The nickname, level, exp, status and moves carry
// over. Requires a prior confirmation step; this only performs the swap.
func (c *Critter) Evolve(reg *registry.Registry) bool {
	if !c.CanEvolve() {
		return false
	}
	next, ok := reg.SpeciesByID(c.species.EvolvesInto)
	if !ok {
		return false
	}
	c.SpeciesID = next.ID
	c.species = next
	c.recalcStats()
	return true
}

// Snapshot serializes the critter to plain data for the save system.
func (c *Critter) Snapshot() ([]byte, error) {
	return json.Marshal(c)
}

// FromSnapshot rebuilds a critter from saved plain data, re-resolving the
// species reference and re-checking invariants. Malformed data is a hard
// failure.
func FromSnapshot(reg *registry.Registry, data []byte) (*Critter, error) {
	var c Critter
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode critter snapshot: %w", err)
	}
	sp, ok := reg.SpeciesByID(c.SpeciesID)
	if !ok {
		return nil, fmt.Errorf("snapshot references unknown species %q", c.SpeciesID)
	}
	if c.Level < leveling.MinLevel || c.Level > leveling.MaxLevel {
		return nil, fmt.Errorf("snapshot level %d outside [%d,%d]", c.Level, leveling.MinLevel, leveling.MaxLevel)
	}
	if len(c.Moves) > MaxMoves {
		return nil, fmt.Errorf("snapshot holds %d moves, max %d", len(c.Moves), MaxMoves)
	}
	c.species = sp
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	if c.CurrentHP > c.Stats.MaxHP {
		c.CurrentHP = c.Stats.MaxHP
	}
	c.Fainted = c.CurrentHP == 0
	return &c, nil
}
