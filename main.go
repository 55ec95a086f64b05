package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ross1116/critterbattlecli/internal/ai"
	"github.com/ross1116/critterbattlecli/internal/battle"
	"github.com/ross1116/critterbattlecli/internal/config"
	"github.com/ross1116/critterbattlecli/internal/critter"
	"github.com/ross1116/critterbattlecli/internal/registry"
	"github.com/ross1116/critterbattlecli/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
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
	mgr := battle.NewManager(reg, rng)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Pick your starter critter:")
	starters := []string{"embercub", "aquafin", "sproutle"}
	for i, id := range starters {
		sp, _ := reg.SpeciesByID(id)
		fmt.Printf("%d. %s %v\n", i+1, sp.Name, sp.Types)
	}
	choice := readInt(reader, 1, len(starters))

	starter, err := critter.New(reg, starters[choice-1], 10)
	if err != nil {
		logger.Error("starter creation failed", "err", err)
		os.Exit(1)
	}
	backup, err := critter.New(reg, "plainpup", 8)
	if err != nil {
		logger.Error("backup creation failed", "err", err)
		os.Exit(1)
	}
	player, err := battle.NewParticipant("You", []*critter.Critter{starter, backup})
	if err != nil {
		logger.Error("roster invalid", "err", err)
		os.Exit(1)
	}

	wildIDs := []string{"zapkit", "frostfang", "boulderon", "plainpup"}
	wildCritter, err := critter.New(reg, wildIDs[rng.IntN(len(wildIDs))], 5+rng.IntN(6))
	if err != nil {
		logger.Error("wild spawn failed", "err", err)
		os.Exit(1)
	}
	wild, err := battle.NewParticipant("Wild "+wildCritter.Name(), []*critter.Critter{wildCritter})
	if err != nil {
		logger.Error("wild roster invalid", "err", err)
		os.Exit(1)
	}

	b := mgr.NewBattle(player, wild, true)
	narrator := &logPrinter{battle: b}
	sess := session.New(logger, nil)
	wildAI := &ai.WildChooser{Reg: reg, RNG: rng}

	bag := map[string]int{"capture-orb": 5, "potion": 3, "full-heal": 1}

	sess.TransitionTo(session.EventBegin)
	fmt.Printf("\nA wild %s appeared (Lv %d)!\n", wildCritter.Name(), wildCritter.Level)
	sess.TransitionTo(session.EventAnnounce)
	fmt.Printf("Go, %s!\n", starter.Name())
	sess.TransitionTo(session.EventDeploy)
	narrator.next = len(b.Log)

	enc := &encounter{
		mgr:      mgr,
		reg:      reg,
		sess:     sess,
		battle:   b,
		wildAI:   wildAI,
		narrator: narrator,
	}

	for !sess.Finished() {
		printField(b)
		fmt.Println("\nWhat will you do? (f)ight, (c)atch, (p)otion, (h)eal, (s)witch, (r)un")
		switch readLine(reader) {
		case "f", "fight":
			if moveID := pickMove(reader, reg, player.Active()); moveID != "" {
				enc.runTurn(moveID)
			}
		case "c", "catch":
			enc.throwOrb(bag)
		case "p", "potion":
			enc.usePotion(bag)
		case "h", "heal":
			enc.useFullHeal(bag)
		case "s", "switch":
			if idx := pickSwitch(reader, player); idx >= 0 {
				if !mgr.SwitchCritter(b, player, idx) {
					fmt.Println("Can't switch to that critter.")
					continue
				}
				narrator.flush()
				enc.runTurn("")
			}
		case "r", "run":
			enc.tryFlee()
		default:
			fmt.Println("Unknown command.")
		}
	}

	fmt.Println("\nBattle over.")
}

// encounter bundles everything one wild battle needs so the command handlers
// stay short.
type encounter struct {
	mgr      *battle.Manager
	reg      *registry.Registry
	sess     *session.Session
	battle   *battle.Battle
	wildAI   ai.Chooser
	narrator *logPrinter
}

// runTurn plays one full turn and walks the session through its phases,
// handling faints, rewards and termination. An empty move id means the player
// spent the turn on something else and only the wild side acts.
func (e *encounter) runTurn(playerMoveID string) {
	e.sess.TransitionTo(session.EventPlayerReady)
	e.sess.TransitionTo(session.EventEnemyReady)

	e.mgr.PlayTurn(e.battle, playerMoveID, e.wildAI)
	e.narrator.flush()
	e.sess.TransitionTo(session.EventResolve)

	switch e.mgr.CheckBattleStatus(e.battle) {
	case battle.StatusPlayerWon:
		e.sess.TransitionTo(session.EventReward)
		defeated := e.battle.Opponent.Active()
		pending := e.mgr.DistributeExperience(e.battle, e.battle.Player, defeated.Species(), defeated.Level)
		e.narrator.flush()
		e.handleGrowth(e.battle.Player.Active(), pending)
		e.sess.TransitionTo(session.EventFinish)
	case battle.StatusOpponentWon, battle.StatusError:
		e.narrator.flush()
		e.sess.TransitionTo(session.EventFinish)
	default:
		if active := e.battle.Player.Active(); active != nil && active.Fainted {
			idx := firstHealthy(e.battle.Player)
			if idx < 0 {
				e.sess.TransitionTo(session.EventFinish)
				return
			}
			e.sess.TransitionTo(session.EventSwitch)
			e.mgr.SwitchCritter(e.battle, e.battle.Player, idx)
			e.narrator.flush()
			e.sess.TransitionTo(session.EventResume)
			return
		}
		e.sess.TransitionTo(session.EventContinue)
	}
}

func (e *encounter) throwOrb(bag map[string]int) {
	if bag["capture-orb"] <= 0 {
		fmt.Println("Out of capture orbs!")
		return
	}
	bag["capture-orb"]--
	orb, _ := e.reg.ItemByID("capture-orb")
	caught := e.mgr.AttemptCatch(e.battle, e.battle.Opponent.Active(), orb.OrbModifier)
	for i := 0; i < e.mgr.SimulateCatchAnimation(); i++ {
		fmt.Println("...the orb shakes...")
	}
	e.narrator.flush()
	if caught {
		e.endSession()
		return
	}
	// A failed throw gives the wild critter a free action.
	e.runTurn("")
}

func (e *encounter) usePotion(bag map[string]int) {
	if bag["potion"] <= 0 {
		fmt.Println("Out of potions!")
		return
	}
	active := e.battle.Player.Active()
	if active == nil || active.CurrentHP == active.Stats.MaxHP {
		fmt.Println("It would have no effect.")
		return
	}
	bag["potion"]--
	item, _ := e.reg.ItemByID("potion")
	active.Heal(item.HealAmount)
	fmt.Printf("%s recovered up to %d HP!\n", active.Name(), item.HealAmount)
	e.runTurn("")
}

func (e *encounter) useFullHeal(bag map[string]int) {
	if bag["full-heal"] <= 0 {
		fmt.Println("Out of full heals!")
		return
	}
	active := e.battle.Player.Active()
	if active == nil || active.Status == registry.AilmentNone {
		fmt.Println("It would have no effect.")
		return
	}
	bag["full-heal"]--
	active.CureStatus()
	fmt.Printf("%s was cured of its condition!\n", active.Name())
	e.runTurn("")
}

func (e *encounter) tryFlee() {
	playerSpeed := e.battle.Player.Active().Stats.Speed
	wildSpeed := e.battle.Opponent.Active().Stats.Speed
	fled := e.mgr.AttemptFlee(e.battle, playerSpeed, wildSpeed)
	e.narrator.flush()
	if fled {
		e.sess.TransitionTo(session.EventPlayerReady)
		e.sess.TransitionTo(session.EventEnemyReady)
		e.sess.TransitionTo(session.EventResolve)
		e.sess.TransitionTo(session.EventFlee)
		e.sess.TransitionTo(session.EventFinish)
		return
	}
	e.runTurn("")
}

func (e *encounter) endSession() {
	e.sess.TransitionTo(session.EventPlayerReady)
	e.sess.TransitionTo(session.EventEnemyReady)
	e.sess.TransitionTo(session.EventResolve)
	e.sess.TransitionTo(session.EventFinish)
}

func (e *encounter) handleGrowth(winner *critter.Critter, pending battle.PendingGrowth) {
	if winner == nil {
		return
	}
	for _, moveID := range pending.LearnableMoves {
		mv, ok := e.reg.MoveByID(moveID)
		if !ok {
			continue
		}
		if len(winner.Moves) < critter.MaxMoves {
			if e.mgr.ConfirmLearnMove(winner, moveID, "") {
				fmt.Printf("%s learned %s!\n", winner.Name(), mv.Name)
			}
			continue
		}
		fmt.Printf("%s wants to learn %s, but already knows %d moves. Skipping.\n",
			winner.Name(), mv.Name, critter.MaxMoves)
	}
	if pending.CanEvolve {
		oldName := winner.Name()
		fmt.Printf("What? %s is evolving!\n", oldName)
		if e.mgr.ConfirmEvolution(winner) {
			fmt.Printf("%s evolved into %s!\n", oldName, winner.Species().Name)
		}
	}
}

// logPrinter echoes battle log lines to stdout exactly once each.
type logPrinter struct {
	battle *battle.Battle
	next   int
}

func (lp *logPrinter) flush() {
	for ; lp.next < len(lp.battle.Log); lp.next++ {
		fmt.Println(lp.battle.Log[lp.next])
	}
}

func printField(b *battle.Battle) {
	fmt.Println()
	for _, side := range []struct {
		label string
		p     *battle.Participant
	}{{"Foe", b.Opponent}, {"You", b.Player}} {
		c := side.p.Active()
		if c == nil {
			continue
		}
		fmt.Printf("[%s] %s Lv%d  HP %d/%d", side.label, c.Name(), c.Level, c.CurrentHP, c.Stats.MaxHP)
		if c.Status != "" {
			fmt.Printf(" (%s)", c.Status)
		}
		fmt.Println()
	}
}

func pickMove(reader *bufio.Reader, reg *registry.Registry, c *critter.Critter) string {
	views := battle.MoveViews(reg, c)
	if len(views) == 0 {
		fmt.Println("No moves available!")
		return ""
	}
	for i, v := range views {
		fmt.Printf("%d. %s (%s, power %d, PP %d/%d)\n", i+1, v.Name, v.Type, v.Power, v.PP, v.MaxPP)
	}
	return views[readInt(reader, 1, len(views))-1].ID
}

func pickSwitch(reader *bufio.Reader, p *battle.Participant) int {
	summaries := battle.TeamSummary(p.Party)
	for i, s := range summaries {
		marker := ""
		if i == p.ActiveIndex {
			marker = " (active)"
		}
		if s.Fainted {
			marker += " (fainted)"
		}
		fmt.Printf("%d. %s Lv%d %.0f%% HP%s\n", i+1, s.Name, s.Level, s.HPPercent, marker)
	}
	idx := readInt(reader, 1, len(summaries)) - 1
	if idx == p.ActiveIndex {
		return -1
	}
	return idx
}

func firstHealthy(p *battle.Participant) int {
	for i, c := range p.Party {
		if c != nil && !c.Fainted && i != p.ActiveIndex {
			return i
		}
	}
	return -1
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.ToLower(strings.TrimSpace(line))
}

func readInt(reader *bufio.Reader, min, max int) int {
	for {
		fmt.Printf("Enter a number (%d-%d): ", min, max)
		n, err := strconv.Atoi(readLine(reader))
		if err == nil && n >= min && n <= max {
			return n
		}
		fmt.Println("Invalid choice.")
	}
}
