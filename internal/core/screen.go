package core

import "strings"

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the value every cell holds after Clear.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer that games draw into. The platform turns it
// into terminal output, so games never touch the terminal themselves.
// Drawing outside the buffer is clipped silently.
type Screen struct {
	width  int
	height int
	cells  []Cell // Row-major, width*height
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Resize changes the screen size. The overlapping top-left area keeps its
// content; new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	for y := range min(height, s.height) {
		n := min(width, s.width)
		copy(cells[y*width:y*width+n], s.cells[y*s.width:y*s.width+n])
	}

	s.width, s.height, s.cells = width, height, cells
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set places an uncoloured rune.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a foreground color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// Fill sets every cell of r to the rune and color.
func (s *Screen) Fill(r Rect, ch rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, ch, c)
		}
	}
}

// DrawText writes uncoloured text starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text in one color starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// DrawBox outlines r with uncoloured box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColored(r, ColorDefault)
}

// DrawBoxColored outlines r with box-drawing characters in color c.
func (s *Screen) DrawBoxColored(r Rect, c Color) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(right, r.Y, '┐', c)
	s.SetColored(r.X, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// Row returns row y as plain text, or spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y*s.width : (y+1)*s.width] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
