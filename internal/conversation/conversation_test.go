package conversation

import "testing"

func TestCompiledInput_NoHistory(t *testing.T) {
	h := New()
	if got := h.CompiledInput("What is recursion?"); got != "What is recursion?" {
		t.Errorf("expected just the question, got %q", got)
	}
}

func TestCompiledInput_JoinsPriorQuestions(t *testing.T) {
	h := New()
	h.Append("What is a stack?", "A LIFO structure.")
	h.Append("And a queue?", "A FIFO structure.")

	got := h.CompiledInput("What is recursion?")
	want := "What is a stack? And a queue? What is recursion?"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAppend_PreservesOrder(t *testing.T) {
	h := New()
	h.Append("first", "1")
	h.Append("second", "2")
	h.Append("third", "3")

	if len(h.Turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(h.Turns))
	}
	for i, want := range []string{"first", "second", "third"} {
		if h.Turns[i].Question != want {
			t.Errorf("turn %d: expected %q, got %q", i, want, h.Turns[i].Question)
		}
	}
}
