package pdf

import "fmt"

const guideIntro = "Welcome to your awesome storytelling adventure! This guide is packed with fun examples, cool tips, and everything you need to create amazing stories. Let's get started!"

// Guide renders the full long-form guide for a module: every section
// with its examples (before/after plus explanation) and tips.
func (g *Generator) Guide(moduleID string) ([]byte, error) {
	content, err := g.guideContent(moduleID)
	if err != nil {
		return nil, err
	}

	s := g.newSheet("P", nil)

	// Title block at fixed positions on the first page.
	s.setFont("B", 24, purple)
	s.y = 30
	s.text(marginLeft, content.Title)

	s.setFont("", 16, green)
	s.y = 45
	s.text(marginLeft, content.Subtitle)

	s.setFont("", 12, amber)
	s.y = 60
	s.text(marginLeft, content.AgeGroup)

	s.setFont("", 11, slate)
	s.y = 80
	s.wrapped(marginLeft, contentWidth, 5, guideIntro)

	s.y = 110
	for _, sec := range content.Sections {
		s.breakIf(250)

		s.setFont("B", 18, blue)
		s.text(marginLeft, sec.Heading)
		s.advance(15)

		s.setFont("", 11, slate)
		s.wrapped(marginLeft, contentWidth, 5, sec.Body)
		s.advance(10)

		for _, ex := range sec.Examples {
			s.breakIf(230)

			s.setFont("B", 14, purple)
			s.text(25, ex.Title)
			s.advance(12)

			if ex.Before != "" {
				s.setFont("", 10, red)
				s.text(30, "Boring version:")
				s.advance(6)
				s.setFont("", 10, slate)
				s.wrapped(30, narrowWidth, 4, fmt.Sprintf("%q", ex.Before))
				s.advance(5)
			}

			s.setFont("", 10, green)
			s.text(30, "Awesome version:")
			s.advance(6)
			s.setFont("", 10, slate)
			s.wrapped(30, narrowWidth, 4, fmt.Sprintf("%q", ex.After))
			s.advance(5)

			s.setFont("", 9, lightGray)
			s.wrapped(30, narrowWidth, 3, "Why this works: "+ex.Explanation)
			s.advance(10)
		}

		if len(sec.Tips) > 0 {
			s.breakIf(200)

			s.setFont("B", 12, amber)
			s.text(25, "Super Tips:")
			s.advance(10)

			s.setFont("", 10, slate)
			for i, tip := range sec.Tips {
				s.wrapped(30, narrowWidth, 4, fmt.Sprintf("%d. %s", i+1, tip))
				s.advance(3)
			}
			s.advance(15)
		}
	}

	return s.bytes()
}
