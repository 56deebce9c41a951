package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"pkt.systems/neatjson"
)

type cliOptions struct {
	format      *neatjson.Options
	compact     bool
	inPlace     bool
	color       bool
	paletteName string
}

func main() {
	width := flag.Int("width", neatjson.DefaultOptions.Width, "max column width for single-line containers")
	indent := flag.String("indent", neatjson.DefaultOptions.Indent, "indentation inserted per nesting level")
	maxItems := flag.Int("max-items", neatjson.DefaultOptions.MaxItems, "max items in a container that may stay on one line")
	maxDepth := flag.Int("max-depth", neatjson.DefaultOptions.MaxDepth, "max container nesting depth")
	noSort := flag.Bool("no-sort", false, "keep object keys in input order instead of sorting")
	allowNaN := flag.Bool("allow-nan", false, "permit NaN and Infinity numbers in the output")
	ascii := flag.Bool("ascii", false, "escape non-ASCII characters as \\uXXXX")
	compact := flag.BoolP("compact", "c", false, "minify instead of formatting")
	inPlace := flag.BoolP("write", "w", false, "rewrite each file in place instead of printing")
	noColor := flag.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	paletteName := flag.String("palette", "default", "color palette ("+joinNames()+")")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file [file...]\n\nUse - to read from stdin.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := cliOptions{
		format: &neatjson.Options{
			Indent:    *indent,
			Width:     *width,
			MaxItems:  *maxItems,
			MaxDepth:  *maxDepth,
			SortKeys:  !*noSort,
			AllowNaN:  *allowNaN,
			ASCIIOnly: *ascii,
		},
		compact:     *compact,
		inPlace:     *inPlace,
		paletteName: *paletteName,
		color:       !*noColor && !*inPlace && stdoutIsTerminal(),
	}

	for _, path := range flag.Args() {
		if err := processFile(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "neatjson: %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func processFile(path string, opts cliOptions) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	if opts.compact {
		out, err := neatjson.Compact(data)
		if err != nil {
			return err
		}
		return emit(path, append(out, '\n'), opts)
	}

	v, err := neatjson.Parse(data)
	if err != nil {
		return err
	}
	out, err := neatjson.Format(v, opts.format)
	if err != nil {
		return err
	}
	return emit(path, append(out, '\n'), opts)
}

func emit(path string, out []byte, opts cliOptions) error {
	if opts.inPlace {
		if path == "-" {
			return fmt.Errorf("cannot write stdin in place")
		}
		return os.WriteFile(path, out, 0o644)
	}
	if opts.color {
		renderer := lipgloss.NewRenderer(os.Stdout)
		pal, err := neatjson.ResolvePalette(opts.paletteName, renderer)
		if err != nil {
			return err
		}
		_, err = io.WriteString(os.Stdout, neatjson.Colorize(out, pal))
		return err
	}
	_, err := os.Stdout.Write(out)
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func joinNames() string {
	return strings.Join(neatjson.PaletteNames(), ", ")
}
