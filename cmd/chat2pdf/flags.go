package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// chatFlags holds all CLI flags.
type chatFlags struct {
	output    string
	fontDir   string
	style     string
	assetPath string
	wrapWidth int
	markdown  bool
	timeout   string
	config    string
	quiet     bool
	verbose   bool
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*chatFlags, []string, error) {
	fs := flag.NewFlagSet("chat2pdf", flag.ContinueOnError)
	f := &chatFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF file (default: transcript name with .pdf)")
	fs.StringVar(&f.fontDir, "font-dir", "", "directory containing the Noto font files")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.IntVar(&f.wrapWidth, "wrap-width", 0, "RTL wrap width in columns (20-200, default: 75)")
	fs.BoolVar(&f.markdown, "markdown", false, "render message content as markdown")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")

	fs.Usage = func() { printUsage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes CLI usage to w.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: chat2pdf [flags] <transcript.(json|yaml|yml)>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts a chat transcript (title + role-tagged messages) to a styled PDF.")
}
