// Package catalog holds the static lesson catalog: the modules shown on the
// dashboard and the authored step sequences behind them. The data is
// compile-time constant; all lookups are read-only.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a module id has no entry.
var ErrNotFound = errors.New("module not found")

// Level is the difficulty badge shown on the dashboard.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// IconKey names a dashboard icon symbolically; the presentation layer
// decides how to render it.
type IconKey string

const (
	IconLightbulb IconKey = "lightbulb"
	IconBook      IconKey = "book"
	IconUsers     IconKey = "users"
	IconZap       IconKey = "zap"
	IconBuilding  IconKey = "building"
	IconStar      IconKey = "star"
	IconHeart     IconKey = "heart"
)

// StepKind classifies a lesson step. Tutorial steps are read-only;
// exercise and prompt steps accept user input and carry a seed prompt
// for the writing coach.
type StepKind string

const (
	StepTutorial StepKind = "tutorial"
	StepExercise StepKind = "exercise"
	StepPrompt   StepKind = "prompt"
)

// Step is a single page of a lesson.
type Step struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Kind     StepKind `json:"kind"`
	AIPrompt string   `json:"aiPrompt,omitempty"`
}

// Interactive reports whether the step accepts user input.
func (s Step) Interactive() bool {
	return s.Kind == StepExercise || s.Kind == StepPrompt
}

// Module is a full lesson: dashboard metadata plus the ordered steps.
type Module struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Level       Level   `json:"level"`
	Duration    string  `json:"duration"`
	Icon        IconKey `json:"icon"`
	Steps       []Step  `json:"steps"`
}

// Summary is the dashboard view of a module. StepCount is zero for
// modules whose lessons have not been authored yet.
type Summary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Level       Level   `json:"level"`
	Duration    string  `json:"duration"`
	Icon        IconKey `json:"icon"`
	StepCount   int     `json:"stepCount"`
}

// Get returns the full module for id. Modules that appear on the
// dashboard but have no authored lesson yet return ErrNotFound.
func Get(id string) (Module, error) {
	m, ok := modules[id]
	if !ok {
		return Module{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return m, nil
}

// Describe returns the dashboard summary for id. Unlike Get, it
// succeeds for every listed module, authored or not.
func Describe(id string) (Summary, error) {
	for _, s := range dashboard {
		if s.ID == id {
			return s, nil
		}
	}
	return Summary{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns all dashboard summaries in display order.
func List() []Summary {
	out := make([]Summary, len(dashboard))
	copy(out, dashboard)
	return out
}

// Validate checks catalog consistency. It is exercised from tests so a
// bad content edit fails the build, not a user session.
func Validate() error {
	seen := make(map[string]bool)
	for _, s := range dashboard {
		if s.ID == "" || s.Title == "" {
			return fmt.Errorf("summary with empty id or title: %+v", s)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate module id %q", s.ID)
		}
		seen[s.ID] = true
		switch s.Level {
		case LevelBeginner, LevelIntermediate, LevelAdvanced:
		default:
			return fmt.Errorf("module %s: unknown level %q", s.ID, s.Level)
		}
	}

	for id, m := range modules {
		if !seen[id] {
			return fmt.Errorf("module %s has steps but no dashboard entry", id)
		}
		if m.ID != id {
			return fmt.Errorf("module keyed %s declares id %s", id, m.ID)
		}
		if len(m.Steps) == 0 {
			return fmt.Errorf("module %s has no steps", id)
		}
		stepIDs := make(map[string]bool)
		for _, st := range m.Steps {
			if st.ID == "" || st.Title == "" {
				return fmt.Errorf("module %s: step with empty id or title", id)
			}
			if stepIDs[st.ID] {
				return fmt.Errorf("module %s: duplicate step id %q", id, st.ID)
			}
			stepIDs[st.ID] = true
			switch st.Kind {
			case StepTutorial, StepExercise, StepPrompt:
			default:
				return fmt.Errorf("module %s: step %s has unknown kind %q", id, st.ID, st.Kind)
			}
			if st.Interactive() && st.AIPrompt == "" {
				return fmt.Errorf("module %s: interactive step %s has no seed prompt", id, st.ID)
			}
		}
	}
	return nil
}
