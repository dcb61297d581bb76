package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	narratorShortPrompt = "You are a personal finance assistant. " +
		"Never invent numbers; use FACTS_JSON only. " +
		"If the user asks for something not available, say what data is missing. " +
		"Be actionable and concise."
	narratorDetailedPrompt = "You are a personal finance assistant. " +
		"Never invent numbers; use FACTS_JSON only. " +
		"Provide a clear explanation and actionable next steps."
)

// answerWithFacts asks the reasoner model to narrate the fact bundle. The
// facts are the model's only permitted source of numbers.
func (a *Assistant) answerWithFacts(ctx context.Context, userText string, facts FactBundle, style string) (string, error) {
	system := narratorShortPrompt
	if style == "detailed" {
		system = narratorDetailedPrompt
	}

	factsJSON, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize facts: %w", err)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleSystem, Content: "FACTS_JSON:\n" + string(factsJSON)},
		{Role: openai.ChatMessageRoleUser, Content: userText},
	}

	answer, err := a.completer.Complete(ctx, messages, a.reasonerModel, 0.2)
	if err != nil {
		return "", fmt.Errorf("narration failed: %w", err)
	}
	return answer, nil
}
