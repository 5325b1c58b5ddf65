package pdf

// Certificate renders the landscape completion certificate: a gold
// double border, a hand-written name line and the module title in the
// templated sentence. Whether the profile has actually earned it is
// the caller's concern; the builder always succeeds for known content.
func (g *Generator) Certificate(moduleID, moduleTitle string) ([]byte, error) {
	if _, err := g.cardContent(moduleID); err != nil {
		return nil, err
	}
	if moduleTitle == "" {
		moduleTitle = moduleID
	}

	s := g.newSheet("L", nil)

	s.setDraw(gold, 3)
	s.f.Rect(10, 10, 277, 190, "D")
	s.setDraw(gold, 1)
	s.f.Rect(15, 15, 267, 180, "D")

	s.setFont("B", 28, gold)
	s.centeredAt(40, "Certificate of Achievement")

	s.setFont("", 16, slate)
	s.centeredAt(60, "This certifies that")

	s.setFont("", 24, blue)
	s.centeredAt(85, "_________________________________")

	s.setFont("", 12, lightGray)
	s.centeredAt(95, "(Write your name here)")

	s.setFont("", 16, slate)
	s.centeredAt(115, "has successfully completed the")

	s.setFont("B", 20, purple)
	s.centeredAt(135, moduleTitle+" Module")

	s.setFont("", 14, slate)
	s.centeredAt(150, "in StoryLab's Creative Writing Course")

	s.setFont("", 12, lightGray)
	s.centeredAt(170, "Date: "+g.clock.Now().Format("1/2/2006"))

	return s.bytes()
}
