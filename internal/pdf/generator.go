package pdf

import (
	"fmt"
	"time"
)

// Clock supplies the date printed on certificates.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Variant names one of the four printable documents.
type Variant string

const (
	VariantGuide       Variant = "guide"
	VariantWorkbook    Variant = "workbook"
	VariantReference   Variant = "reference"
	VariantCertificate Variant = "certificate"
)

// ParseVariant validates a variant name from a URL or CLI argument.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantGuide, VariantWorkbook, VariantReference, VariantCertificate:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown document variant %q", s)
}

// Label is the human-readable document name used in filenames.
func (v Variant) Label() string {
	switch v {
	case VariantGuide:
		return "Complete Guide"
	case VariantWorkbook:
		return "Exercise Workbook"
	case VariantReference:
		return "Quick Reference"
	case VariantCertificate:
		return "Completion Certificate"
	}
	return string(v)
}

// Filename builds the download filename for a module document.
func Filename(moduleTitle string, v Variant) string {
	return fmt.Sprintf("%s - %s.pdf", moduleTitle, v.Label())
}

// Generator renders the four document variants from a content library.
// Rendering is pure: same content and clock, same bytes.
type Generator struct {
	lib   Library
	clock Clock
}

// NewGenerator renders from the built-in course library.
func NewGenerator() *Generator {
	return &Generator{lib: Builtin(), clock: realClock{}}
}

// NewGeneratorWithLibrary renders from a custom library, with an
// optional fixed clock (for testing).
func NewGeneratorWithLibrary(lib Library, clock Clock) *Generator {
	if clock == nil {
		clock = realClock{}
	}
	return &Generator{lib: lib, clock: clock}
}

func (g *Generator) guideContent(moduleID string) (Guide, error) {
	c, ok := g.lib.Guides[moduleID]
	if !ok {
		return Guide{}, fmt.Errorf("%w: %s", ErrContentNotFound, moduleID)
	}
	return c, nil
}

func (g *Generator) cardContent(moduleID string) (ReferenceCard, error) {
	c, ok := g.lib.Cards[moduleID]
	if !ok {
		return ReferenceCard{}, fmt.Errorf("%w: %s", ErrContentNotFound, moduleID)
	}
	return c, nil
}

// Render dispatches to the builder for v. The certificate needs the
// module title for its templated sentence; other variants ignore it.
func (g *Generator) Render(moduleID, moduleTitle string, v Variant) ([]byte, error) {
	switch v {
	case VariantGuide:
		return g.Guide(moduleID)
	case VariantWorkbook:
		return g.Workbook(moduleID)
	case VariantReference:
		return g.Reference(moduleID)
	case VariantCertificate:
		return g.Certificate(moduleID, moduleTitle)
	}
	return nil, fmt.Errorf("unknown document variant %q", v)
}
