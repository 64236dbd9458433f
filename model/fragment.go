package model

// TextFragment is a positioned run of text on a PDF page. X and Y locate the
// start of the text baseline, Width is the advance of the run, and FontSize
// approximates the line height (PDF text objects do not carry an explicit
// glyph height).
type TextFragment struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	FontSize float64
}

// Left returns the X coordinate of the fragment's left edge.
func (f TextFragment) Left() float64 {
	return f.X
}

// Right returns the X coordinate of the fragment's right edge.
func (f TextFragment) Right() float64 {
	return f.X + f.Width
}

// BBox returns an approximate bounding box for the fragment, using the font
// size as the height above the baseline.
func (f TextFragment) BBox() BBox {
	return BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.FontSize}
}
