package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cocktail-manager/services"
	"cocktail-manager/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Upload a gzipped JSON snapshot of all cocktails to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if !cfg.ExportEnabled() {
			return errors.New("export requires EXPORT_S3_BUCKET, EXPORT_S3_KEY and EXPORT_S3_SECRET")
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		client, err := storage.NewS3Client(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		exporter := services.NewExporter(db, client, logger, cfg.ExportS3Bucket, cfg.ExportPrefix, cfg.ExportKeep)
		key, err := exporter.Export(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to s3://%s/%s\n", cfg.ExportS3Bucket, key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
