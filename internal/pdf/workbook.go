package pdf

import "fmt"

const workspaceRules = 8

// Workbook renders the practice workbook for a module: a name/date
// title page followed by every exercise, numbered by section. Guide
// prose, examples and tips are left out; only exercise entries print.
func (g *Generator) Workbook(moduleID string) ([]byte, error) {
	content, err := g.guideContent(moduleID)
	if err != nil {
		return nil, err
	}

	s := g.newSheet("P", nil)

	s.setFont("B", 24, green)
	s.y = 30
	s.text(marginLeft, content.Title+" Workbook")

	s.setFont("", 16, lightGray)
	s.y = 45
	s.text(marginLeft, "Practice Exercises & Activities")

	s.setFont("", 12, lightGray)
	s.y = 70
	s.text(marginLeft, "Name: ________________________")
	s.y = 85
	s.text(marginLeft, "Date: ________________________")

	s.y = 110
	for si, sec := range content.Sections {
		for ei, ex := range sec.Exercises {
			s.breakIf(240)

			s.setFont("B", 16, purple)
			s.text(marginLeft, fmt.Sprintf("Exercise %d.%d: %s", si+1, ei+1, ex.Title))
			s.advance(15)

			s.setFont("", 11, slate)
			s.wrapped(marginLeft, contentWidth, 5, ex.Instructions)
			s.advance(10)

			if ex.Example != "" {
				s.setFont("", 10, green)
				s.text(marginLeft, "Example:")
				s.advance(6)
				s.setFont("", 10, lightGray)
				s.wrapped(marginLeft, contentWidth, 4, ex.Example)
				s.advance(10)
			}

			if ex.Workspace {
				s.ensure(10 + workspaceRules*8)
				s.setFont("", 10, lightGray)
				s.text(marginLeft, "Your turn! Write your ideas here:")
				s.advance(10)

				s.setDraw(ruleGray, 0.2)
				for i := 0; i < workspaceRules; i++ {
					yy := s.y + float64(i)*8
					s.f.Line(marginLeft, yy, 190, yy)
				}
				s.advance(70)
			}
		}
	}

	return s.bytes()
}
