package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"crm.GO/config"
	customerService "crm.GO/service/customer"
)

var (
	importFile  string
	importBatch int
)

var importCmd = &cobra.Command{
	Use:   "customers:import",
	Short: "Import customers from CSV (columns: name,email,phone)",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := customerService.ImportCustomers(db, f, customerService.ImportOptions{
			BatchSize: importBatch,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, e := range res.Errors {
			fmt.Printf("  [skip] %s\n", e)
		}

		fmt.Printf(`
=== Import Report ===
CSV rows:       %d
Created:        %d
Skipped:        %d
Total time:     %s
  - Processing: %s
  - DB insert:  %s
=====================
`, res.TotalRows, res.Created, res.Skipped,
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond))
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB inserts")
	rootCmd.AddCommand(importCmd)
}
