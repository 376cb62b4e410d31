// Package text measures and rasterizes short runs of text for mathbox.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific pixel size
//   - Shaper: converts a string into positioned glyphs
//   - ShapedRun: the shaped glyphs of one string plus its vertical metrics
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(48)
//	run, err := text.ShapeRun("x+1", face, text.NewGoTextShaper())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	run.Draw(dst, 10, 10+run.Ascent, color.Black)
//
// Font parsing is pluggable through the FontParser interface. By default,
// golang.org/x/image/font/opentype is used.
package text
