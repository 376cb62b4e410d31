package text

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// Unlike FontMetrics.Descent it is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Height returns the distance from the top of the font to its bottom.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
