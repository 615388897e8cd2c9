package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/hextactics/internal/ai"
	"github.com/talgya/hextactics/internal/battle"
	"github.com/talgya/hextactics/internal/battlefield"
	"github.com/talgya/hextactics/internal/scenario"
	"github.com/talgya/hextactics/internal/store"
	"github.com/talgya/hextactics/internal/units"
)

func cmdRun() *cobra.Command {
	var (
		scenarioFile string
		dbPath       string
		seed         int64
		aggression   float64
		enemies      int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a battle to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := buildBattle(scenarioFile, seed, enemies)
			if err != nil {
				return err
			}

			var db *store.DB
			if dbPath != "" {
				db, err = store.Open(dbPath)
				if err != nil {
					return err
				}
				defer db.Close()
			}

			if err := b.Start(); err != nil {
				return err
			}
			if err := drive(b, db, aggression); err != nil {
				return err
			}
			return printOutcome(b)
		},
	}

	cmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario YAML file (default: generated skirmish)")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database for round snapshots")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&aggression, "aggression", 0.7, "tactical AI aggression in [0,1]")
	cmd.Flags().IntVar(&enemies, "enemies", 3, "enemy count for generated battles")
	return cmd
}

func cmdResume() *cobra.Command {
	var (
		dbPath     string
		battleID   string
		aggression float64
	)

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume a saved battle from its latest snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if battleID == "" {
				refs, err := db.ListBattles()
				if err != nil {
					return err
				}
				if len(refs) == 0 {
					return fmt.Errorf("no saved battles in %s", dbPath)
				}
				battleID = refs[0].BattleID
			}

			snap, err := db.LoadLatest(battleID)
			if err != nil {
				return err
			}
			b, err := battle.Restore(snap)
			if err != nil {
				return err
			}
			slog.Info("battle resumed", "battle", b.ID, "round", b.Round, "phase", b.Phase.Name())

			if err := drive(b, db, aggression); err != nil {
				return err
			}
			return printOutcome(b)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "battles.db", "sqlite database to resume from")
	cmd.Flags().StringVar(&battleID, "battle", "", "battle ID (default: most recently saved)")
	cmd.Flags().Float64Var(&aggression, "aggression", 0.7, "tactical AI aggression in [0,1]")
	return cmd
}

func cmdGenerate() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a battlefield and report its terrain",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid := battlefield.Generate(battlefield.DefaultGenConfig(seed))
			for terrain, count := range grid.TerrainCounts() {
				slog.Info("terrain", "type", terrain.Name(), "count", count)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "generation seed")
	return cmd
}

// buildBattle loads a scenario file, or generates a default skirmish when
// none is given.
func buildBattle(scenarioFile string, seed int64, enemies int) (*battle.Battle, error) {
	if scenarioFile != "" {
		s, err := scenario.Load(scenarioFile)
		if err != nil {
			return nil, err
		}
		return s.Build()
	}
	return battle.Generate(defaultRoster(), battle.GenOptions{
		EnemyCount:     enemies,
		TerrainVariety: true,
		Seed:           seed,
		Condition:      battle.VictoryCondition{Kind: battle.EliminateAll},
	})
}

// defaultRoster is the stock player side for generated skirmishes.
func defaultRoster() []*units.Unit {
	mk := func(id, name string, element units.Element, stats units.Stats) *units.Unit {
		return &units.Unit{
			ID: id, Name: name,
			Faction: units.FactionPlayer, Element: element,
			HP: 100, MaxHP: 100, MP: 50, MaxMP: 50,
			Stats: stats, MoveRange: 3, JumpHeight: 1,
		}
	}
	return []*units.Unit{
		mk("knight", "Knight", units.ElementEarth, units.Stats{Attack: 18, Defense: 14, MagicAttack: 6, MagicDefense: 10, Speed: 9}),
		mk("pyromancer", "Pyromancer", units.ElementFire, units.Stats{Attack: 10, Defense: 8, MagicAttack: 20, MagicDefense: 14, Speed: 11}),
		mk("cleric", "Cleric", units.ElementLife, units.Stats{Attack: 8, Defense: 10, MagicAttack: 16, MagicDefense: 16, Speed: 10}),
	}
}

// drive plays every turn with the decision policies until the battle ends,
// snapshotting at each round boundary when a store is attached.
func drive(b *battle.Battle, db *store.DB, aggression float64) error {
	basic := ai.Basic{}
	tactical := ai.NewTactical(aggression)
	lastRound := b.Round

	for !b.Over() {
		u := b.ActiveUnit()
		if u == nil {
			break
		}

		var policy ai.Policy = basic
		if u.AIControlled {
			policy = tactical
		}
		if err := ai.TakeTurn(b, policy); err != nil {
			return fmt.Errorf("turn for %s: %w", u.ID, err)
		}

		if db != nil && b.Round != lastRound {
			lastRound = b.Round
			snap, err := b.Snapshot()
			if err != nil {
				return err
			}
			if err := db.SaveSnapshot(snap); err != nil {
				return err
			}
		}
	}
	return nil
}

func printOutcome(b *battle.Battle) error {
	outcome, err := b.Outcome()
	if err != nil {
		return err
	}
	slog.Info("battle finished",
		"battle", b.ID, "winner", outcome.Winner, "rounds", outcome.Rounds,
		"survivors", len(outcome.Survivors), "defeated", len(outcome.Defeated))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(outcome)
}
