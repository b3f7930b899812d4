package commands

import (
	"space-missions-api/internal/repository"
	"space-missions-api/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Seed flags
	seedDir   string
	seedReset bool
)

// seedCmd loads YAML fixtures into the database
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load scientists, planets and missions from YAML files",
	Long: `Load every *.yaml file under the seed directory in one transaction.
Rows that already exist by name are reused.

Examples:
  missions-api seed                     # Load from SEED_DIR
  missions-api seed --dir fixtures      # Load from another directory
  missions-api seed --reset             # Delete everything first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedDir, "dir", "", "Directory with seed YAML files (default SEED_DIR)")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete all missions, planets and scientists before loading")
}

func runSeed(cmd *cobra.Command) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}

	dir := seedDir
	if dir == "" {
		dir = cfg.SeedDir
	}

	data, err := seed.Load(dir)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg, false)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	result, err := seed.Apply(cmd.Context(), repository.NewTransactor(db), data, seedReset)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"dir":        dir,
		"scientists": result.ScientistsCreated,
		"planets":    result.PlanetsCreated,
		"missions":   result.MissionsCreated,
	}).Info("Seed complete")
	return nil
}
