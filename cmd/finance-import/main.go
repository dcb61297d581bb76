package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/tanaymit/Personal-Finance/internal/commands"
	"github.com/tanaymit/Personal-Finance/internal/ingest"
	"github.com/tanaymit/Personal-Finance/internal/store"
)

type CLI struct {
	commands.CommonConfig

	CSVFile    string `arg:"" help:"Path to the bank statement CSV" type:"existingfile"`
	DryRun     bool   `help:"Parse and categorize without writing the data file" default:"false"`
	NoProgress bool   `help:"Disable progress bar" default:"false"`
	Dedupe     bool   `help:"Also remove duplicate transactions already in the data file" default:"false"`
}

func (c *CLI) Run() error {
	logger := c.SetupLogger()

	file, err := os.Open(c.CSVFile)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	var progress ingest.Progress = ingest.NewNoopProgress()
	if !c.NoProgress && !c.DryRun {
		progress = ingest.NewBarProgress(-1)
	}
	defer progress.Close()

	incoming, err := ingest.ParseStatement(file, progress)
	if err != nil {
		return fmt.Errorf("failed to parse statement: %w", err)
	}
	logger.Info("Parsed statement", "file", c.CSVFile, "transactions", len(incoming))

	if c.DryRun {
		counts := map[string]int{}
		for _, t := range incoming {
			counts[t.Category]++
		}
		categories := make([]string, 0, len(counts))
		for cat := range counts {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		fmt.Printf("Parsed %d transactions:\n", len(incoming))
		for _, cat := range categories {
			fmt.Printf("  %-20s %d\n", cat, counts[cat])
		}
		return nil
	}

	st := store.New(c.DataFile, logger)
	doc, err := st.Load()
	if err != nil {
		return err
	}

	result := ingest.UpsertAll(doc.Transactions, incoming)
	doc.Transactions = result.Transactions

	removed := 0
	if c.Dedupe {
		doc.Transactions, removed = ingest.Dedupe(doc.Transactions)
	}

	if err := st.Save(doc); err != nil {
		return err
	}

	logger.Info("Import complete",
		"added", result.Added,
		"updated", result.Updated,
		"removed", removed,
		"total", len(doc.Transactions))
	fmt.Printf("Imported %d new, updated %d existing (%d total)\n",
		result.Added, result.Updated, len(doc.Transactions))
	return nil
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("finance-import"),
		kong.Description("Import a bank statement CSV into the finance data file"),
	)
	ctx.FatalIfErrorf(cli.Run())
}
