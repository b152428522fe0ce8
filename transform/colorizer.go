package transform

// Some color ANSI codes
const (
	Reset = "\033[0m"

	DimWhite   = "\033[37;2m"
	BrightBlue = "\033[34;1m"
)

// A Colorizer surrounds the visible markers inserted by a Visualizer with
// color codes.  A nil *Colorizer leaves markers as they are.
type Colorizer struct {
	TabColorCode string
	EndColorCode string
	ResetCode    string
}

// DefaultColorizer is used when colors are requested on the command line.
var DefaultColorizer = Colorizer{
	TabColorCode: DimWhite,
	EndColorCode: BrightBlue,
	ResetCode:    Reset,
}

func (c *Colorizer) tabMarker() string {
	if c == nil {
		return tabMarker
	}
	return c.TabColorCode + tabMarker + c.ResetCode
}

func (c *Colorizer) endMarker() string {
	if c == nil {
		return endMarker
	}
	return c.EndColorCode + endMarker + c.ResetCode
}
