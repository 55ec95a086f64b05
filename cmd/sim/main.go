// Command sim runs a headless, fully automated trainer battle and prints the
// resulting battle log. With CRITTER_SEED set the run is reproducible, which
// makes it useful for balancing the move and species catalogs.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ross1116/critterbattlecli/internal/ai"
	"github.com/ross1116/critterbattlecli/internal/battle"
	"github.com/ross1116/critterbattlecli/internal/config"
	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	reg := registry.New()
	if err := reg.LoadBuiltin(); err != nil {
		logger.Error("catalog load failed", "err", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	logger.Info("simulation starting", "seed", seed, "max_turns", cfg.MaxTurns)

	mgr := battle.NewManager(reg, rng)
	mgr.Subscribe(battle.EventBattleEnd, func(ev battle.Event) {
		logger.Info("battle ended", "status", ev.Payload["status"], "turns", ev.Payload["turns"])
	})

	challenger, err := buildParty(reg, "Challenger", []pick{
		{"pyroclaw", 32}, {"zapkit", 30}, {"boulderon", 31},
	})
	if err != nil {
		logger.Error("challenger party invalid", "err", err)
		os.Exit(1)
	}
	leader, err := buildParty(reg, "Gym Leader", []pick{
		{"tidalon", 33}, {"frostfang", 31}, {"verdantis", 32},
	})
	if err != nil {
		logger.Error("leader party invalid", "err", err)
		os.Exit(1)
	}

	b := mgr.NewBattle(challenger, leader, false)
	challengerAI := ai.NewTrainerChooser(reg, rng)
	leaderAI := ai.NewBossChooser(reg, rng)

	printed := 0
	for b.Status == battle.StatusActive && b.Turn < cfg.MaxTurns {
		// Both sides run on AI: the challenger picks first and its move id
		// feeds the turn resolver the same way a human selection would.
		var moveID string
		if mv := challengerAI.ChooseMove(challenger.Active(), leader.Active()); mv != nil {
			moveID = mv.ID
		}
		mgr.PlayTurn(b, moveID, leaderAI)

		for ; printed < len(b.Log); printed++ {
			logger.Info(b.Log[printed], "turn", b.Turn)
		}

		replaceFainted(mgr, b, challenger, leaderAI)
		replaceFainted(mgr, b, leader, challengerAI)
	}

	if b.Status == battle.StatusActive {
		logger.Warn("turn cap reached without a result", "turns", b.Turn)
		return
	}
	if b.Status == battle.StatusPlayerWon {
		defeated := leader.Active()
		pending := mgr.DistributeExperience(b, challenger, defeated.Species(), defeated.Level)
		for ; printed < len(b.Log); printed++ {
			logger.Info(b.Log[printed], "turn", b.Turn)
		}
		logger.Info("growth pending",
			"exp", pending.ExpGained,
			"levels", pending.LevelsGained,
			"learnable", pending.LearnableMoves,
			"can_evolve", pending.CanEvolve)
	}
}

type pick struct {
	speciesID string
	level     int
}

func buildParty(reg *registry.Registry, name string, picks []pick) (*battle.Participant, error) {
	party := make([]*critter.Critter, 0, len(picks))
	for _, p := range picks {
		c, err := critter.New(reg, p.speciesID, p.level)
		if err != nil {
			return nil, err
		}
		party = append(party, c)
	}
	return battle.NewParticipant(name, party)
}

// replaceFainted sends out the bench pick an opposing trainer would fear
// most, falling back to the first healthy slot.
func replaceFainted(mgr *battle.Manager, b *battle.Battle, p *battle.Participant, enemy *ai.TrainerChooser) {
	if b.Status != battle.StatusActive {
		return
	}
	active := p.Active()
	if active == nil || !active.Fainted {
		return
	}

	enemyActive := b.Opponent.Active()
	if p == b.Opponent {
		enemyActive = b.Player.Active()
	}
	if enemyActive != nil {
		if mv := enemy.ChooseMove(enemyActive, nil); mv != nil {
			if idx, ok := ai.SuggestSwitch(p.Party, p.ActiveIndex, mv.Type); ok {
				if mgr.SwitchCritter(b, p, idx) {
					return
				}
			}
		}
	}
	for i, c := range p.Party {
		if c != nil && !c.Fainted && i != p.ActiveIndex {
			mgr.SwitchCritter(b, p, i)
			return
		}
	}
}
