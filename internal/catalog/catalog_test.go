package catalog

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestListOrder(t *testing.T) {
	want := []string{
		"brainstorming", "plotting", "characters", "conflict",
		"structure", "inciting-incidents", "black-moment",
	}
	got := List()
	if len(got) != len(want) {
		t.Fatalf("List returned %d modules, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestGetAuthoredModule(t *testing.T) {
	m, err := Get("brainstorming")
	if err != nil {
		t.Fatalf("Get(brainstorming): %v", err)
	}
	if len(m.Steps) != 7 {
		t.Fatalf("brainstorming has %d steps, want 7", len(m.Steps))
	}
	if m.Steps[0].ID != "intro" {
		t.Errorf("first step = %q, want intro", m.Steps[0].ID)
	}
	last := m.Steps[len(m.Steps)-1]
	if last.ID != "final-concept" || last.Kind != StepPrompt {
		t.Errorf("last step = %q (%s), want final-concept (prompt)", last.ID, last.Kind)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(nope) error = %v, want ErrNotFound", err)
	}
}

func TestGetUnauthoredModule(t *testing.T) {
	// conflict is on the dashboard but has no authored lesson
	if _, err := Get("conflict"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(conflict) error = %v, want ErrNotFound", err)
	}
	s, err := Describe("conflict")
	if err != nil {
		t.Fatalf("Describe(conflict): %v", err)
	}
	if s.StepCount != 0 {
		t.Errorf("conflict StepCount = %d, want 0", s.StepCount)
	}
}

func TestStepCountMatchesSteps(t *testing.T) {
	for _, s := range List() {
		m, err := Get(s.ID)
		if errors.Is(err, ErrNotFound) {
			if s.StepCount != 0 {
				t.Errorf("%s: StepCount %d but no authored module", s.ID, s.StepCount)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Get(%s): %v", s.ID, err)
		}
		if len(m.Steps) != s.StepCount {
			t.Errorf("%s: StepCount %d, module has %d steps", s.ID, s.StepCount, len(m.Steps))
		}
	}
}

func TestInteractive(t *testing.T) {
	cases := []struct {
		kind StepKind
		want bool
	}{
		{StepTutorial, false},
		{StepExercise, true},
		{StepPrompt, true},
	}
	for _, tc := range cases {
		if got := (Step{Kind: tc.kind}).Interactive(); got != tc.want {
			t.Errorf("Interactive(%s) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}
