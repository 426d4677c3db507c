// Command bgrep prints the lines of its input that contain a query. Input
// is treated as bytes: lines need not be valid UTF-8, and gzip, zstd and lz4
// files are decompressed transparently.
//
// Usage:
//
//	bgrep [flags] QUERY [FILE...]
//
// With no FILE, or when FILE is -, standard input is read. Setting the
// CASE_INSENSITIVE environment variable has the same effect as -i.
//
// The exit status is 0 if a line was selected, 1 if none was, and 2 if an
// error occurred.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/kivattt/getopt"

	"github.com/scalecode-solutions/bstr"
	"github.com/scalecode-solutions/bstr/internal/input"
)

const maxLineSize = 64 << 20

type options struct {
	ignoreCase bool
	wordRegexp bool
	invert     bool
	lineNumber bool
	count      bool
	unique     bool
	escape     bool
	quiet      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fs := getopt.NewFlagSet("bgrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.BoolVar(&opts.ignoreCase, "i", false, "ignore case distinctions")
	fs.BoolVar(&opts.wordRegexp, "w", false, "match only whole words")
	fs.BoolVar(&opts.invert, "v", false, "select non-matching lines")
	fs.BoolVar(&opts.lineNumber, "n", false, "prefix each line with its line number")
	fs.BoolVar(&opts.count, "c", false, "print only a count of selected lines per file")
	fs.BoolVar(&opts.unique, "u", false, "suppress repeated output lines")
	fs.BoolVar(&opts.escape, "b", false, "print lines with non-printable bytes escaped")
	fs.BoolVar(&opts.quiet, "q", false, "print nothing, exit on the first match")
	fs.Aliases(
		"i", "ignore-case",
		"w", "word-regexp",
		"v", "invert-match",
		"n", "line-number",
		"c", "count",
		"u", "unique",
		"b", "escape",
		"q", "quiet",
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bgrep [flags] QUERY [FILE...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}
	if _, ok := os.LookupEnv("CASE_INSENSITIVE"); ok {
		opts.ignoreCase = true
	}

	g := &grep{
		opts:  opts,
		match: newMatcher([]byte(fs.Arg(0)), opts),
		out:   bufio.NewWriter(stdout),
		stdin: stdin,
	}
	if opts.unique {
		g.seen = make(map[uint64]struct{})
	}
	files := fs.Args()[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	g.multi = len(files) > 1

	failed := false
	for _, name := range files {
		if err := g.file(name); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			logger.Error("search failed", "file", name, "err", err)
			failed = true
		}
	}
	if err := g.out.Flush(); err != nil {
		logger.Error("write output", "err", err)
		return 2
	}

	switch {
	case g.matched && (opts.quiet || !failed):
		return 0
	case failed:
		return 2
	}
	return 1
}

// errQuit stops the search after the first match in quiet mode.
var errQuit = errors.New("quit")

type grep struct {
	opts    options
	match   *matcher
	out     *bufio.Writer
	stdin   io.Reader
	multi   bool
	matched bool
	seen    map[uint64]struct{}
}

func (g *grep) file(name string) error {
	var (
		rc  io.ReadCloser
		err error
	)
	if name == "-" {
		rc, _, err = input.NewReader(g.stdin)
		name = "(standard input)"
	} else {
		rc, _, err = input.Open(name)
	}
	if err != nil {
		return err
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	scanner.Split(bstr.ScanLines)
	var lineNo, count int
	for scanner.Scan() {
		lineNo++
		line := bstr.Lines(scanner.Bytes())
		text, _ := line.Next()
		if g.match.match(text) == g.opts.invert {
			continue
		}
		g.matched = true
		count++
		switch {
		case g.opts.quiet:
			return errQuit
		case g.opts.count:
			continue
		}
		g.print(name, lineNo, text)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if g.opts.count && !g.opts.quiet {
		if g.multi {
			g.out.WriteString(name)
			g.out.WriteByte(':')
		}
		g.out.WriteString(strconv.Itoa(count))
		g.out.WriteByte('\n')
	}
	return nil
}

func (g *grep) print(name string, lineNo int, text []byte) {
	if g.opts.escape {
		text = []byte(bstr.EscapeBytes(text))
	}
	if g.seen != nil {
		h := xxhash.Sum64(text)
		if _, dup := g.seen[h]; dup {
			return
		}
		g.seen[h] = struct{}{}
	}
	if g.multi {
		g.out.WriteString(name)
		g.out.WriteByte(':')
	}
	if g.opts.lineNumber {
		g.out.WriteString(strconv.Itoa(lineNo))
		g.out.WriteByte(':')
	}
	g.out.Write(text)
	g.out.WriteByte('\n')
}
