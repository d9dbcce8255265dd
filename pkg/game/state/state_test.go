package state

import "testing"

func TestAddMessageKeepsLastFive(t *testing.T) {
	g := NewGame(1)

	for _, msg := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		g.AddMessage(msg)
	}

	if got := len(g.Messages); got != 5 {
		t.Fatalf("message count: got %v, want 5", got)
	}

	if g.Messages[0].Text != "three" {
		t.Errorf("oldest kept message: got %q, want %q", g.Messages[0].Text, "three")
	}

	if g.Messages[4].Text != "seven" {
		t.Errorf("newest message: got %q, want %q", g.Messages[4].Text, "seven")
	}

	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("messages after clear: got %v, want 0", len(g.Messages))
	}
}

func TestFinishIsSticky(t *testing.T) {
	g := NewGame(1)

	if !g.Running() {
		t.Fatalf("new game should be running")
	}

	g.Finish(OutcomeWin, "You reach the Antechamber.")
	g.Finish(OutcomeLoss, "Out of steps.")

	if g.Outcome != OutcomeWin {
		t.Errorf("outcome: got %v, want win to stick", g.Outcome)
	}

	if g.Running() {
		t.Errorf("finished game should not be running")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeNone, "none"},
		{OutcomeWin, "win"},
		{OutcomeLoss, "loss"},
	}

	for _, tc := range tests {
		if got := tc.outcome.String(); got != tc.want {
			t.Errorf("outcome string: got %q, want %q", got, tc.want)
		}
	}
}

func TestSeededRngIsDeterministic(t *testing.T) {
	a := NewGame(1234)
	b := NewGame(1234)

	for i := 0; i < 10; i++ {
		if x, y := a.Rng.Int63(), b.Rng.Int63(); x != y {
			t.Fatalf("same seed diverged at draw %v: %v vs %v", i, x, y)
		}
	}
}
