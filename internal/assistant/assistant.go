// Package assistant turns free-text finance questions into grounded answers.
// The flow per query is: tier-0 short-circuit for trivial inputs, an LLM
// planning step that picks a bounded set of analytics tool calls, local
// execution of those calls into a fact bundle, and an LLM narration step that
// may only use the collected facts. No state survives between queries.
package assistant

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/tanaymit/Personal-Finance/internal/llm"
	"github.com/tanaymit/Personal-Finance/internal/types"
)

// Assistant answers questions about a transaction collection.
type Assistant struct {
	completer     llm.Completer
	plannerModel  string
	reasonerModel string
	logger        *log.Logger
}

// New creates an assistant using the given completer for both the planning
// and narration models.
func New(completer llm.Completer, plannerModel, reasonerModel string, logger *log.Logger) *Assistant {
	return &Assistant{
		completer:     completer,
		plannerModel:  plannerModel,
		reasonerModel: reasonerModel,
		logger:        logger,
	}
}

// Request is one question plus the data it should be answered against.
type Request struct {
	UserText     string
	Transactions []types.Transaction
	Settings     types.Settings
	Goals        []types.Goal
	Defaults     Defaults
}

// Response carries the narrated answer and the calls that produced it, so
// callers can show which tools ran.
type Response struct {
	Answer    string         `json:"answer"`
	Tier      int            `json:"tier"`
	ToolCalls []ExecutedCall `json:"toolCalls,omitempty"`
}

// Answer runs the full query cycle. Planner parse failures degrade to a
// default plan; LLM transport failures are returned to the caller.
func (a *Assistant) Answer(ctx context.Context, req Request) (Response, error) {
	if canned := tier0Response(req.UserText); canned != "" {
		a.logger.Debug("Answered locally without LLM")
		return Response{Answer: canned, Tier: 0}, nil
	}

	plan, err := a.planToolCalls(ctx, req.UserText, req.Transactions)
	if err != nil {
		return Response{}, err
	}

	facts := executePlan(ctx, plan, executeEnv{
		transactions: req.Transactions,
		settings:     req.Settings,
		goals:        req.Goals,
		defaults:     req.Defaults,
	})

	answer, err := a.answerWithFacts(ctx, req.UserText, facts, plan.AnswerStyle)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Answer:    answer,
		Tier:      plan.Tier,
		ToolCalls: facts.Calls,
	}, nil
}
