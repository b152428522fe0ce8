// Package options turns the raw visualization flags of the command line into
// the set of transformations to apply.
package options

// A FlagSet holds the visualization flags as they were given on the command
// line, before any interpretation.  Every combination is valid.
type FlagSet struct {
	All             bool // -A: show tabs and line ends
	ShowEnd         bool // -e: show line ends
	ShowTab         bool // -t: show tabs
	ShowEndPartial  bool // -E: show line ends, only together with -v
	ShowTabPartial  bool // -T: show tabs, only together with -v
	ShowNonPrinting bool // -v: gate for -E and -T
}

// OutputOptions is the resolved set of transformations.  Obtain it with
// Resolve.
type OutputOptions struct {
	ShowTabs bool
	ShowEnds bool
}

// Resolve computes the transformations enabled by the flags.
//
// -A enables everything.  -t and -e enable their transformation on their
// own.  -T and -E only take effect when -v is also set, and -v alone does
// nothing.
func Resolve(flags FlagSet) OutputOptions {
	return OutputOptions{
		ShowTabs: flags.All || flags.ShowTab || (flags.ShowNonPrinting && flags.ShowTabPartial),
		ShowEnds: flags.All || flags.ShowEnd || (flags.ShowNonPrinting && flags.ShowEndPartial),
	}
}

// Passthrough is true when no transformation is enabled.
func (o OutputOptions) Passthrough() bool {
	return !o.ShowTabs && !o.ShowEnds
}
