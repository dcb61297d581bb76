package assistant

import (
	"regexp"
	"strings"
)

var greetingRe = regexp.MustCompile(`^(hi|hello|hey|yo|sup)(\s+there)?[!. ]*$`)

// tier0Response handles trivial inputs locally so they never pay LLM latency.
// Returns "" when the input needs the full plan/execute/narrate cycle.
func tier0Response(userText string) string {
	t := strings.ToLower(strings.TrimSpace(userText))
	if t == "" {
		return "Ask me something like: 'How much did I spend on groceries this month?'"
	}

	if greetingRe.MatchString(t) {
		return "Hi — I can help you analyze your spending, budget, and affordability. " +
			"Try: 'budget status', 'groceries this month', or 'can I afford a $200 dinner?'"
	}

	if strings.Contains(t, "help") || strings.Contains(t, "what can you do") {
		return "I can answer questions like:\n" +
			"- How much did I spend on groceries this month?\n" +
			"- What are my top categories?\n" +
			"- Am I on track with my budget?\n" +
			"- Can I afford a purchase (simulation)?\n" +
			"- Show unusual/large transactions"
	}

	return ""
}
