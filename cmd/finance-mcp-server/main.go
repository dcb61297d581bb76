package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/tanaymit/Personal-Finance/internal/commands"
	"github.com/tanaymit/Personal-Finance/internal/mcp"
	"github.com/tanaymit/Personal-Finance/internal/store"
)

type CLI struct {
	commands.CommonConfig
}

func (c *CLI) Run() error {
	logger := c.SetupLogger()
	st := store.New(c.DataFile, logger)
	return mcp.New(st, logger).Run()
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("finance-mcp-server"),
		kong.Description("MCP server exposing personal finance analytics tools"),
	)
	ctx.FatalIfErrorf(cli.Run())
}
