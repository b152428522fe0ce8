// Package transform implements the transformations applied to text units
// before they are printed.
package transform

import (
	"strings"
	"unicode"

	"github.com/arnodel/vcat/options"
)

const (
	tabMarker = "^I"
	endMarker = "$"
)

// Visualizer is a Transformer that makes tabs and line ends visible,
// according to the options it was built with.
//
// E.g. with both ShowTabs and ShowEnds
//
//	"x\ty\n" -> "x^Iy$"
//
// The result is always trimmed of trailing white space, as the printer
// terminates each unit with its own line feed.  With no transformation
// enabled the Visualizer is a passthrough (apart from that trimming), so
// applying it again does not change its output.
type Visualizer struct {
	options  options.OutputOptions
	replacer *strings.Replacer
}

// NewVisualizer returns a Visualizer applying opts.  If colorizer is not nil,
// it colors the markers.
func NewVisualizer(opts options.OutputOptions, colorizer *Colorizer) *Visualizer {
	return &Visualizer{options: opts, replacer: newReplacer(opts, colorizer)}
}

// Transform applies the enabled transformations to s.
func (v *Visualizer) Transform(s string) string {
	if !v.options.Passthrough() {
		s = v.replacer.Replace(s)
	}
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Tabs and line feeds are distinct characters, so a single replacer applies
// both substitutions without them interfering.
func newReplacer(opts options.OutputOptions, colorizer *Colorizer) *strings.Replacer {
	var pairs []string
	if opts.ShowTabs {
		pairs = append(pairs, "\t", colorizer.tabMarker())
	}
	if opts.ShowEnds {
		pairs = append(pairs, "\n", colorizer.endMarker()+"\n")
	}
	return strings.NewReplacer(pairs...)
}
