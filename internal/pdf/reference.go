package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Reference renders the one-card cheat sheet: numbered tips and
// bulleted example ideas inside a decorative border. The border is
// drawn by the page header so it appears on every page if the card
// ever overflows.
func (g *Generator) Reference(moduleID string) ([]byte, error) {
	card, err := g.cardContent(moduleID)
	if err != nil {
		return nil, err
	}

	s := g.newSheet("P", func(f *fpdf.Fpdf) {
		f.SetDrawColor(blue.r, blue.g, blue.b)
		f.SetLineWidth(2)
		f.Rect(15, 15, 180, 267, "D")
	})

	s.setFont("B", 20, blue)
	s.y = 30
	s.text(marginLeft, card.Title)

	s.y = 50
	s.setFont("B", 14, amber)
	s.text(marginLeft, "Quick Tips:")
	s.advance(15)

	s.setFont("", 11, slate)
	for i, tip := range card.Tips {
		s.wrapped(25, contentWidth, 5, fmt.Sprintf("%d. %s", i+1, tip))
		s.advance(3)
	}
	s.advance(10)

	if len(card.Examples) > 0 {
		s.breakIf(250)
		s.setFont("B", 14, purple)
		s.text(marginLeft, "Example Ideas:")
		s.advance(15)

		s.setFont("", 10, slate)
		for _, example := range card.Examples {
			s.wrapped(25, contentWidth, 5, "- "+example)
			s.advance(3)
		}
	}

	return s.bytes()
}
