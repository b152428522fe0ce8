package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/arnodel/vcat"
	"github.com/arnodel/vcat/options"
	"github.com/arnodel/vcat/transform"
	flags "github.com/jessevdk/go-flags"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Options defines the command line flags.
type Options struct {
	ShowAll         bool   `short:"A" long:"show-all" description:"show tabs as ^I and line ends as $"`
	ShowEnds        bool   `short:"e" description:"show line ends as $"`
	ShowTabs        bool   `short:"t" description:"show tabs as ^I"`
	ShowEndsPartial bool   `short:"E" long:"show-ends" description:"show line ends as $ (only with -v)"`
	ShowTabsPartial bool   `short:"T" long:"show-tabs" description:"show tabs as ^I (only with -v)"`
	ShowNonPrinting bool   `short:"v" long:"show-nonprinting" description:"enable -E and -T"`
	Color           string `long:"color" default:"auto" choice:"auto" choice:"always" choice:"never" description:"color the ^I and $ markers"`
	Version         bool   `long:"version" description:"print version and exit"`
}

// FlagSet returns the visualization flags, ready to be resolved.
func (o *Options) FlagSet() options.FlagSet {
	return options.FlagSet{
		All:             o.ShowAll,
		ShowEnd:         o.ShowEnds,
		ShowTab:         o.ShowTabs,
		ShowEndPartial:  o.ShowEndsPartial,
		ShowTabPartial:  o.ShowTabsPartial,
		ShowNonPrinting: o.ShowNonPrinting,
	}
}

const longDescription = `Concatenate FILE(s) to standard output.  With no FILE, copy standard input
line by line until the end of the stream.

Examples:
  vcat -A notes.txt       show tabs and line ends in notes.txt
  vcat -vT < data.tsv     show tabs in standard input
  tail -f app.log | vcat -e`

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling in run).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
			os.Exit(exitError)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "vcat"
	parser.Usage = "[OPTIONS] [FILE...]"
	parser.LongDescription = longDescription

	paths, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return exitOK
		}
		fmt.Fprintf(stderr, "vcat: %s\nTry 'vcat --help' for more information.\n", err)
		return exitUsage
	}

	if opts.Version {
		fmt.Fprintf(stdout, "vcat %s\n", version())
		return exitOK
	}

	var colorizer *transform.Colorizer
	switch opts.Color {
	case "always":
		colorizer = &transform.DefaultColorizer
	case "auto":
		if isTerminal(stdout) {
			colorizer = &transform.DefaultColorizer
		}
	}

	// Set up stdout for handling colors
	if colorizer != nil {
		stdout = colorableWriter(stdout)
	}

	// Each unit is flushed as soon as it is printed, so that lines read from
	// stdin are echoed straight away.
	out := bufio.NewWriter(stdout)
	sink := &vcat.Sink{
		Transformer: transform.NewVisualizer(options.Resolve(opts.FlagSet()), colorizer),
		Printer:     &vcat.Printer{Writer: out, Flusher: out},
	}

	err = vcat.Concatenate(vcat.Sources(paths, stdin), sink)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return exitOK
		}
		fmt.Fprintf(stderr, "vcat: %s\n", err)
		return exitError
	}
	return exitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// colorableWriter makes ANSI color codes work on Windows consoles.  Writers
// which are not files are returned unchanged.
func colorableWriter(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
