package pdf

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters (A4). Text is wrapped to contentWidth;
// nested blocks (examples, tips) use narrowWidth.
const (
	marginLeft   = 20.0
	topMargin    = 20.0
	bottomMargin = 20.0
	contentWidth = 170.0
	narrowWidth  = 160.0
)

type rgb struct{ r, g, b int }

var (
	purple    = rgb{168, 85, 247}
	green     = rgb{34, 197, 94}
	blue      = rgb{59, 130, 246}
	amber     = rgb{245, 158, 11}
	red       = rgb{239, 68, 68}
	slate     = rgb{75, 85, 99}
	lightGray = rgb{107, 114, 128}
	ruleGray  = rgb{200, 200, 200}
	gold      = rgb{212, 175, 55}
)

// sanitize restricts text to what the built-in fonts can draw. Emoji
// and other non-ASCII runes are dropped; newlines survive so wrapped
// text keeps its paragraph breaks.
func sanitize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if r == '\n' || (r >= 0x20 && r < 0x80) {
			return r
		}
		return -1
	}, s)
	lines := strings.Split(mapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}

// sheet is a paginating cursor over one document. The y position is a
// text baseline; every placement checks the safe bottom limit first,
// so a line is moved to a fresh page rather than drawn past it.
type sheet struct {
	f     *fpdf.Fpdf
	y     float64
	limit float64
}

// newSheet creates a document with one page open and the cursor at the
// top margin. If header is non-nil it is drawn on every page, so
// page-relative decorations survive page breaks. The creation date
// comes from the generator clock; the default embeds wall-clock time
// and makes identical content render different bytes.
func (g *Generator) newSheet(orientation string, header func(f *fpdf.Fpdf)) *sheet {
	f := fpdf.New(orientation, "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	// Sort catalog entries so identical content yields identical bytes.
	f.SetCatalogSort(true)
	f.SetCreationDate(g.clock.Now().UTC())
	f.SetModificationDate(g.clock.Now().UTC())
	if header != nil {
		f.SetHeaderFunc(func() { header(f) })
	}
	f.AddPage()
	_, h := f.GetPageSize()
	return &sheet{f: f, y: topMargin, limit: h - bottomMargin}
}

func (s *sheet) setFont(style string, size float64, c rgb) {
	s.f.SetFont("Helvetica", style, size)
	s.f.SetTextColor(c.r, c.g, c.b)
}

func (s *sheet) page() {
	s.f.AddPage()
	s.y = topMargin
}

// breakIf starts a new page when the cursor is already past a
// block-start threshold, keeping headings near their content.
func (s *sheet) breakIf(threshold float64) {
	if s.y > threshold {
		s.page()
	}
}

// ensure guarantees h millimeters of room below the cursor, breaking
// the page first if there is not enough.
func (s *sheet) ensure(h float64) {
	if s.y+h > s.limit {
		s.page()
	}
}

func (s *sheet) advance(dy float64) {
	s.y += dy
}

// text places a single line at x without advancing the cursor.
func (s *sheet) text(x float64, str string) {
	if s.y > s.limit {
		s.page()
	}
	s.f.Text(x, s.y, sanitize(str))
}

// wrapped wraps str to width and places it line by line, advancing the
// cursor by lineHeight per line. Lines that would cross the bottom
// limit are placed on a fresh page instead; content order is
// preserved across the break.
func (s *sheet) wrapped(x, width, lineHeight float64, str string) {
	for _, line := range s.f.SplitText(sanitize(str), width) {
		if s.y > s.limit {
			s.page()
		}
		s.f.Text(x, s.y, line)
		s.y += lineHeight
	}
}

// centeredAt places str horizontally centered at baseline y, ignoring
// the cursor. Used by the certificate's fixed layout.
func (s *sheet) centeredAt(y float64, str string) {
	str = sanitize(str)
	w, _ := s.f.GetPageSize()
	s.f.Text((w-s.f.GetStringWidth(str))/2, y, str)
}

func (s *sheet) setDraw(c rgb, width float64) {
	s.f.SetDrawColor(c.r, c.g, c.b)
	s.f.SetLineWidth(width)
}

func (s *sheet) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.f.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
