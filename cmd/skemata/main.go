package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/reoring/skemata"
	"github.com/reoring/skemata/codec"
	g "github.com/reoring/skemata/dsl"
	"github.com/reoring/skemata/i18n"
	"github.com/reoring/skemata/report"
	"github.com/reoring/skemata/source"
)

var builtins = map[string]skemata.Mixed{
	"string":             g.Field(g.String()),
	"number":             g.Field(g.Number()),
	"int":                g.Field(g.Int()),
	"bool":               g.Field(g.Bool()),
	"unknown":            g.Unknown(),
	"null":               g.Nil(),
	"uuid":               g.Field(codec.UUID()),
	"rfc3339":            g.Field(codec.TimeRFC3339()),
	"unix-time":          g.Field(codec.TimeUnix()),
	"number-from-string": g.Field(codec.NumberFromString()),
	"int-from-string":    g.Field(codec.IntFromString()),
	"bool-from-string":   g.Field(codec.BoolFromString()),
	"non-empty-string":   g.Field(codec.NonEmptyString()),
	"json-from-string":   g.Field(codec.JSONFromString()),
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintf(w, "skemata CLI\n\nUsage:\n  skemata check -type T [-array] [-format json|yaml|msgpack] [-message MSG] [-issues] [-lang en|ja] [file]\n\nTypes:\n  %s\n", strings.Join(names, ", "))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "check":
		return checkCmd(args[1:], stdin, stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

// checkCmd decodes one document against a built-in codec and prints the
// report. It exits 1 when validation fails.
func checkCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var typeName, formatName, message, lang string
	var array, issues bool
	fs.StringVar(&typeName, "type", "", "built-in codec name")
	fs.BoolVar(&array, "array", false, "expect an array of -type")
	fs.StringVar(&formatName, "format", "json", "input format: json, yaml or msgpack")
	fs.StringVar(&message, "message", "", "replace every failure with this message")
	fs.BoolVar(&issues, "issues", false, "print failures as a JSON issues payload")
	fs.StringVar(&lang, "lang", "en", "language for default messages (en/ja)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	c, ok := builtins[typeName]
	if !ok {
		fmt.Fprintf(stderr, "unknown -type %q\n", typeName)
		usage(stderr)
		return 2
	}
	format, err := source.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	i18n.SetLanguage(lang)

	if array {
		c = g.Field(g.Array(c))
	}
	if message != "" {
		c = g.WithMessage(c, func(any) string { return message })
	}

	in := stdin
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "opening input: %v\n", err)
			return 2
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(stderr, "reading input: %v\n", err)
		return 2
	}

	v := source.Decode(context.Background(), c, format, data)
	if issues && !v.IsOk() {
		b, err := report.JSON(v.Err())
		if err != nil {
			fmt.Fprintf(stderr, "rendering issues: %v\n", err)
			return 2
		}
		fmt.Fprintln(stdout, string(b))
		return 1
	}
	for _, line := range report.Paths(v) {
		fmt.Fprintln(stdout, line)
	}
	if !v.IsOk() {
		return 1
	}
	return 0
}
