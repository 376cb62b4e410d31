// Package mathbox lays out mathematical notation and paints it into raster
// surfaces.
//
// # Overview
//
// A formula is a tree of nodes: leaves (identifiers, numbers, operators and
// text) and composites (rows, subscripts, superscripts, fractions, radicals
// and phantoms). A Planner turns a tree into a Plan: the box of the formula,
// its baseline and a deferred paint operation. Render allocates a surface of
// exactly the plan's size and paints the plan into it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/mathbox"
//	    "github.com/gogpu/mathbox/text"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	src, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	p := mathbox.NewPlanner(mathbox.NewFontMeasurer(src))
//
//	// β_α²
//	expr := mathbox.NewSup(mathbox.NewSub(mathbox.Ident("β"), mathbox.Ident("α")), mathbox.Num("2"))
//	s, err := p.Render(expr, 100, mathbox.WithBackground(mathbox.White))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s.SavePNG("beta.png")
//
// # Coordinate System
//
// Boxes are measured in whole pixels:
//   - Origin (0,0) at the top-left of a box
//   - X increases right
//   - Y increases down
//   - Baseline is the distance from the top of the box to the alignment line
//
// # Text
//
// The planner never looks at glyphs. Leaves are measured by a TextMeasurer;
// FontMeasurer is the default implementation built on package text.
package mathbox

// Version is the current version of the module.
const Version = "0.1.0"
