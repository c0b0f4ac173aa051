package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cocktail-manager/data"
	"cocktail-manager/services"
)

var seedAll bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample cocktail catalog",
	Long: `Insert the sample cocktail catalog into the database.

By default the catalog is only inserted into an empty table. With --all every
catalog entry is attempted; entries whose name already exists are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := openDB(cfg)
		if err != nil {
			return err
		}

		seeder := services.NewSeeder(db, logger, data.Cocktails)
		var added int
		if seedAll {
			added = seeder.SeedAll(cmd.Context())
		} else {
			added, err = seeder.SeedIfEmpty(cmd.Context())
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeding completed: %d of %d cocktails added\n", added, len(data.Cocktails))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedAll, "all", false, "insert every catalog entry even if the table is not empty")
	rootCmd.AddCommand(seedCmd)
}
