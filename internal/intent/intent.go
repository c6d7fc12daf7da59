// Package intent classifies whether a question references a lecture number
// and a timestamp range, using a language model as a best-effort classifier.
package intent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lecture-qa/internal/models"

	"github.com/ollama/ollama/api"
)

// Chatter is the blocking chat-completion call the parser classifies with
type Chatter interface {
	Chat(ctx context.Context, messages []api.Message) (string, error)
}

// Parser asks a language model whether a question is timestamp-scoped
type Parser struct {
	LLM Chatter
}

func NewParser(llm Chatter) *Parser {
	return &Parser{LLM: llm}
}

const instructionTemplate = `Given the following question: "%s"

Identify if it references a lecture and a specific timestamp. If so, return the following format:
[lecture_number, (start_time_in_seconds, end_time_in_seconds)]

Example:
Input: "Summarize the first 5 minutes of lecture 4"
Output: [4, (0, 300)]

Input: "What is recursion?"
Output: None

Return only the specified format, without any extra text or explanation.`

// Parse returns the timestamp intent of question, or nil when the question
// carries none. Model errors and malformed model output both degrade to nil;
// a false negative just routes the question through semantic search. Makes
// one model call, no retries.
func (p *Parser) Parse(ctx context.Context, question string) *models.TimestampIntent {
	messages := []api.Message{
		{Role: "system", Content: "You are a parsing assistant."},
		{Role: "user", Content: fmt.Sprintf(instructionTemplate, question)},
	}

	reply, err := p.LLM.Chat(ctx, messages)
	if err != nil {
		return nil
	}

	return ParseReply(reply)
}

// replyPattern is the only accepted encoding: [int, (num, num)]. Fractional
// seconds are tolerated and truncated to whole seconds.
var replyPattern = regexp.MustCompile(`^\[\s*(\d+)\s*,\s*\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)\s*\)\s*\]$`)

// ParseReply validates a model reply against the strict intent grammar.
// Anything that is not exactly "None" or [lecture, (start, end)] yields nil;
// model output is never evaluated, only matched.
func ParseReply(reply string) *models.TimestampIntent {
	reply = stripFences(strings.TrimSpace(reply))

	if strings.EqualFold(reply, "none") {
		return nil
	}

	m := replyPattern.FindStringSubmatch(reply)
	if m == nil {
		return nil
	}

	lecture, err := strconv.Atoi(m[1])
	if err != nil || lecture <= 0 {
		return nil
	}
	start, err := parseSeconds(m[2])
	if err != nil {
		return nil
	}
	end, err := parseSeconds(m[3])
	if err != nil {
		return nil
	}

	return &models.TimestampIntent{Lecture: lecture, Start: start, End: end}
}

func parseSeconds(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// stripFences removes a markdown code fence some models wrap replies in
func stripFences(s string) string {
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
