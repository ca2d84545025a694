package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/msgfmt"
	"pkt.systems/version"
)

const defaultDialect = "markdownv2"

func init() {
	version.SetDefaultModule("pkt.systems/msgfmt")
}

func main() {
	var (
		dialectName    string
		outPath        string
		listFormatters bool
		showVersion    bool
	)

	flags := pflag.NewFlagSet("msgfmt", pflag.ExitOnError)
	flags.StringVarP(&dialectName, "dialect", "d", defaultDialect, "Output dialect: markdownv2|html")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&listFormatters, "list-formatters", false, "List built-in custom formatters")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: msgfmt [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}

	if listFormatters {
		for _, name := range msgfmt.FormatterNames() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	dialect, err := resolveDialect(dialectName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --dialect %q: %v\n", dialectName, err)
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "reading markup from stdin; press Ctrl-D to finish")
	}

	input, err := readInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if err := msgfmt.ValidateInput(input); err != nil {
		fmt.Fprintf(os.Stderr, "validate input: %v\n", err)
		os.Exit(1)
	}

	elements, err := msgfmt.Parse(string(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	gen := msgfmt.NewGenerator(dialect, msgfmt.WithFormatters(msgfmt.BuiltinFormatters()...))
	if err := gen.RenderTo(writer, elements); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(writer)
}

func resolveDialect(name string) (msgfmt.Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "markdownv2", "markdown", "md":
		return msgfmt.MarkdownV2, nil
	case "html":
		return msgfmt.HTML, nil
	default:
		return 0, fmt.Errorf("expected markdownv2|html")
	}
}

func readInputs(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, arg := range args {
		data, err := os.ReadFile(normalizePath(arg))
		if err != nil {
			return nil, err
		}
		buf = append(buf, data...)
	}
	return buf, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
