// Package pdf renders the printable course material: the full guide,
// the exercise workbook, the quick reference card and the completion
// certificate. Content lives in static tables; rendering goes through
// a small paginating layout engine over fpdf.
package pdf

import (
	"errors"
	"fmt"
)

// ErrContentNotFound is returned before any drawing when a module has
// no printable content.
var ErrContentNotFound = errors.New("no printable content for module")

// Guide is the long-form printable content for one module.
type Guide struct {
	Title    string
	Subtitle string
	ModuleID string
	AgeGroup string
	Sections []Section
}

// Section is one teaching unit of a guide.
type Section struct {
	Heading   string
	Body      string
	Examples  []Example
	Exercises []Exercise
	Tips      []string
}

// Example shows a flat "before" rewritten into an engaging "after".
// Before is optional; After and Explanation are required.
type Example struct {
	Title       string
	Scenario    string
	Before      string
	After       string
	Explanation string
}

// Difficulty of an exercise.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Exercise is a workbook activity. Workspace adds ruled writing lines
// under the instructions.
type Exercise struct {
	Title        string
	Instructions string
	Example      string
	Workspace    bool
	Difficulty   Difficulty
}

// ReferenceCard is the condensed one-page cheat sheet for a module.
type ReferenceCard struct {
	Title    string
	Tips     []string
	Examples []string
}

// Library holds all printable content keyed by module id.
type Library struct {
	Guides map[string]Guide
	Cards  map[string]ReferenceCard
}

// Validate checks the content tables for schema violations so a bad
// edit is caught by tests instead of producing a broken document.
func (l Library) Validate() error {
	for id, g := range l.Guides {
		if g.ModuleID != id {
			return fmt.Errorf("guide keyed %s declares module id %s", id, g.ModuleID)
		}
		if g.Title == "" || g.Subtitle == "" || g.AgeGroup == "" {
			return fmt.Errorf("guide %s: missing title, subtitle or age group", id)
		}
		if len(g.Sections) == 0 {
			return fmt.Errorf("guide %s: no sections", id)
		}
		for i, sec := range g.Sections {
			if sec.Heading == "" || sec.Body == "" {
				return fmt.Errorf("guide %s: section %d missing heading or body", id, i)
			}
			for j, ex := range sec.Examples {
				if ex.Title == "" || ex.After == "" || ex.Explanation == "" {
					return fmt.Errorf("guide %s: example %d.%d missing title, after or explanation", id, i, j)
				}
			}
			for j, ex := range sec.Exercises {
				if ex.Title == "" || ex.Instructions == "" {
					return fmt.Errorf("guide %s: exercise %d.%d missing title or instructions", id, i, j)
				}
				switch ex.Difficulty {
				case DifficultyEasy, DifficultyMedium, DifficultyHard:
				default:
					return fmt.Errorf("guide %s: exercise %d.%d has unknown difficulty %q", id, i, j, ex.Difficulty)
				}
			}
		}
	}
	for id, c := range l.Cards {
		if c.Title == "" {
			return fmt.Errorf("card %s: missing title", id)
		}
		if len(c.Tips) == 0 {
			return fmt.Errorf("card %s: no tips", id)
		}
	}
	return nil
}
