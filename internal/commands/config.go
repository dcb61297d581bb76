package commands

import (
	"os"

	"github.com/charmbracelet/log"
)

// CommonConfig contains configuration common to all commands
type CommonConfig struct {
	// DataFile is the path to the JSON data file
	DataFile string `help:"Path to the JSON data file" default:"./data.json" env:"FINANCE_DATA_FILE"`
	// LogLevel is the logging level to use
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"warn" enum:"debug,info,warn,error"`
}

// LLMConfig contains flag definitions for the OpenAI-compatible endpoint
// used by the assistant.
type LLMConfig struct {
	// APIKey authenticates against the chat completion endpoint
	APIKey string `help:"API key for the chat completion endpoint" env:"FINANCE_LLM_API_KEY" required:""`
	// BaseURL overrides the OpenAI default, e.g. for OpenRouter or a local server
	BaseURL string `help:"Base URL of an OpenAI-compatible endpoint" env:"FINANCE_LLM_BASE_URL"`
	// PlannerModel routes questions to tool calls
	PlannerModel string `help:"Model used for query planning" default:"anthropic/claude-haiku-4-5-20251001" env:"FINANCE_PLANNER_MODEL"`
	// ReasonerModel writes the final answer from collected facts
	ReasonerModel string `help:"Model used for answer composition" default:"deepseek/deepseek-chat" env:"FINANCE_REASONER_MODEL"`
}

// SetupLogger creates a logger honoring the configured level.
func (c CommonConfig) SetupLogger() *log.Logger {
	logger := log.New(os.Stderr)
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Fatal("Invalid log level", "error", err)
	}
	logger.SetLevel(level)
	return logger
}
