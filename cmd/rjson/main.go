// rjson - permissive JSON CLI tool
//
// Usage:
//
//	rjson fmt   [file]   Parse a permissive document, print its canonical form
//	rjson check [file]   Parse only; report the first error and its position
//	rjson json  [file]   Convert a permissive document to strict JSON
//
// If no file is given, reads from stdin. Gzip-compressed input is
// detected and decompressed transparently.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/whiskeyjack/rjson/rjson"
)

const version = "0.1.0"

var cli struct {
	Debug   bool             `help:"Dump the parsed tree to stderr." short:"d"`
	Version kong.VersionFlag `help:"Print version information." short:"v"`

	Fmt   fmtCmd   `cmd:"" help:"Parse a permissive document and print its canonical form."`
	Check checkCmd `cmd:"" help:"Parse a permissive document and report the first error."`
	JSON  jsonCmd  `cmd:"" name:"json" help:"Convert a permissive document to strict JSON."`
}

type fmtCmd struct {
	File string `arg:"" optional:"" type:"path" help:"Input file; stdin when omitted."`
}

type checkCmd struct {
	File string `arg:"" optional:"" type:"path" help:"Input file; stdin when omitted."`
}

type jsonCmd struct {
	File string `arg:"" optional:"" type:"path" help:"Input file; stdin when omitted."`
}

func (c *fmtCmd) Run() error {
	v, err := parseInput(c.File)
	if err != nil {
		return err
	}
	fmt.Println(rjson.Render(v))
	return nil
}

func (c *checkCmd) Run() error {
	if _, err := parseInput(c.File); err != nil {
		return err
	}
	return nil
}

func (c *jsonCmd) Run() error {
	v, err := parseInput(c.File)
	if err != nil {
		return err
	}
	out, err := rjson.EncodeJSON(v)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseInput reads the named file (or stdin), decompressing gzip input
// when the magic bytes match, and parses it.
func parseInput(path string) (*rjson.Value, error) {
	var in io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}

	br := bufio.NewReader(in)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "gzip input")
		}
		defer gz.Close()
		return parseAndDump(gz)
	}
	return parseAndDump(br)
}

func parseAndDump(r io.Reader) (*rjson.Value, error) {
	v, err := rjson.ParseReader(r)
	if err != nil {
		return nil, err
	}
	if cli.Debug {
		spew.Fdump(os.Stderr, v)
	}
	return v, nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("rjson"),
		kong.Description("A parser and formatter for permissive, comment-friendly JSON."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(ctx.Run())
}
