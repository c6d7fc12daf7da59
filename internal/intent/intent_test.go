package intent

import (
	"context"
	"errors"
	"testing"

	"lecture-qa/internal/models"

	"github.com/ollama/ollama/api"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  *models.TimestampIntent
	}{
		{"canonical", "[4, (0, 300)]", &models.TimestampIntent{Lecture: 4, Start: 0, End: 300}},
		{"whitespace", "  [ 12 , ( 60 , 120 ) ]  ", &models.TimestampIntent{Lecture: 12, Start: 60, End: 120}},
		{"fractional seconds truncated", "[4, (0.5, 300.9)]", &models.TimestampIntent{Lecture: 4, Start: 0, End: 300}},
		{"fenced", "```json\n[4, (0, 300)]\n```", &models.TimestampIntent{Lecture: 4, Start: 0, End: 300}},
		{"none", "None", nil},
		{"none lowercase", "none", nil},
		{"free text", "The question references lecture 4.", nil},
		{"partial structure", "[4, (0,)]", nil},
		{"missing brackets", "4, (0, 300)", nil},
		{"trailing text", "[4, (0, 300)] as requested", nil},
		{"fractional lecture", "[4.5, (0, 300)]", nil},
		{"negative time", "[4, (-10, 300)]", nil},
		{"zero lecture", "[0, (0, 300)]", nil},
		{"nested list", "[[4], (0, 300)]", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply(tt.reply)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected no intent, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %+v, got no intent", tt.want)
			}
			if *got != *tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

type fakeChatter struct {
	reply string
	err   error
	msgs  []api.Message
}

func (f *fakeChatter) Chat(ctx context.Context, messages []api.Message) (string, error) {
	f.msgs = messages
	return f.reply, f.err
}

func TestParse_Match(t *testing.T) {
	llm := &fakeChatter{reply: "[4, (0, 300)]"}
	p := NewParser(llm)

	got := p.Parse(context.Background(), "Summarize the first 5 minutes of lecture 4")
	if got == nil {
		t.Fatal("expected an intent")
	}
	if got.Lecture != 4 || got.Start != 0 || got.End != 300 {
		t.Errorf("expected [4, (0, 300)], got %+v", got)
	}

	if len(llm.msgs) != 2 || llm.msgs[0].Role != "system" || llm.msgs[1].Role != "user" {
		t.Fatalf("unexpected message sequence: %+v", llm.msgs)
	}
}

func TestParse_ModelErrorDegradesToNoIntent(t *testing.T) {
	p := NewParser(&fakeChatter{err: errors.New("connection refused")})

	if got := p.Parse(context.Background(), "What is recursion?"); got != nil {
		t.Errorf("expected no intent on model error, got %+v", got)
	}
}

func TestParse_FreeTextDegradesToNoIntent(t *testing.T) {
	p := NewParser(&fakeChatter{reply: "I think this is about lecture 4, minutes 0 to 5."})

	if got := p.Parse(context.Background(), "What is recursion?"); got != nil {
		t.Errorf("expected no intent on free text, got %+v", got)
	}
}
