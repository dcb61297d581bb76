package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/tanaymit/Personal-Finance/internal/assistant"
	"github.com/tanaymit/Personal-Finance/internal/commands"
	"github.com/tanaymit/Personal-Finance/internal/llm"
	"github.com/tanaymit/Personal-Finance/internal/store"
)

type CLI struct {
	commands.CommonConfig
	commands.LLMConfig

	Question        []string `arg:"" help:"Question to ask about your finances"`
	Year            *int     `help:"Default year for tool calls that omit one"`
	Month           *int     `help:"Default month (1-12) for tool calls that omit one"`
	StartingBalance float64  `help:"Starting balance for cashflow projections" default:"0"`
	JSON            bool     `help:"Print the full response including tool calls as JSON" default:"false"`
}

func (c *CLI) Run() error {
	logger := c.SetupLogger()

	st := store.New(c.DataFile, logger)
	doc, err := st.Load()
	if err != nil {
		return err
	}

	client := llm.New(llm.Config{
		BaseURL:       c.BaseURL,
		APIKey:        c.APIKey,
		PlannerModel:  c.PlannerModel,
		ReasonerModel: c.ReasonerModel,
		Logger:        logger,
	})
	asst := assistant.New(client, client.PlannerModel(), client.ReasonerModel(), logger)

	resp, err := asst.Answer(context.Background(), assistant.Request{
		UserText:     strings.Join(c.Question, " "),
		Transactions: doc.Transactions,
		Settings:     doc.Settings(),
		Goals:        doc.Goals,
		Defaults: assistant.Defaults{
			Year:            c.Year,
			Month:           c.Month,
			StartingBalance: c.StartingBalance,
		},
	})
	if err != nil {
		return err
	}

	if c.JSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize response: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(resp.Answer)
	return nil
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("finance-assistant"),
		kong.Description("Ask questions about your spending, budget, and affordability"),
	)
	ctx.FatalIfErrorf(cli.Run())
}
