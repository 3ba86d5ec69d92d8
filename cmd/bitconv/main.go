// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command bitconv reads one value per line from stdin and prints it as
// "decimal:binary", optionally setting, clearing or flipping bits first.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bpowers/bitarray"
)

const (
	fromNumber = "number"
	fromBinary = "binary"
)

var errUnknownFormat = errors.New("unknown input format")

type options struct {
	from   string
	strict bool
	set    []uint64
	clear  []uint64
	flip   []uint64
}

func parseIndices(s string) ([]uint64, error) {
	if s == "" {
		return nil, nil
	}
	var indices []uint64
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bit index %q: %w", field, err)
		}
		indices = append(indices, n)
	}
	return indices, nil
}

func (o *options) load(a *bitarray.BitArray, line string) error {
	switch o.from {
	case fromNumber:
		n, err := strconv.ParseUint(line, 0, 64)
		if err != nil {
			return err
		}
		a.FromNumber(n)
	case fromBinary:
		if !o.strict {
			a.FromBinary(line)
			return nil
		}
		parsed, err := bitarray.ParseBinary(line)
		if err != nil {
			return err
		}
		*a = *parsed
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, o.from)
	}
	return nil
}

func (o *options) apply(a *bitarray.BitArray) {
	for _, n := range o.set {
		a.Set(n, true)
	}
	for _, n := range o.clear {
		a.Set(n, false)
	}
	for _, n := range o.flip {
		a.Flip(n)
	}
}

// convert processes every line of r, writing results to w. Bad lines are
// reported to errw and counted; convert keeps going past them.
func convert(o *options, r io.Reader, w, errw io.Writer) (failed int, err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		var a bitarray.BitArray
		if err := o.load(&a, line); err != nil {
			if errors.Is(err, errUnknownFormat) {
				return failed, err
			}
			fmt.Fprintf(errw, "line %d: %s\n", lineNo, err)
			failed++
			continue
		}
		o.apply(&a)
		if _, err := fmt.Fprintf(bw, "%d:%s\n", a.AsNumber(), a.AsString()); err != nil {
			return failed, err
		}
	}
	return failed, s.Err()
}

func main() {
	o := &options{}
	flag.StringVar(&o.from, "from", fromNumber, "input format: number or binary")
	flag.BoolVar(&o.strict, "strict", false, "reject binary input with characters other than 0 and 1")
	setFlag := flag.String("set", "", "comma-separated bit indices to set")
	clearFlag := flag.String("clear", "", "comma-separated bit indices to clear")
	flipFlag := flag.String("flip", "", "comma-separated bit indices to flip")
	flag.Parse()

	var err error
	for _, f := range []struct {
		dst *[]uint64
		src string
	}{
		{&o.set, *setFlag},
		{&o.clear, *clearFlag},
		{&o.flip, *flipFlag},
	} {
		if *f.dst, err = parseIndices(f.src); err != nil {
			fmt.Fprintf(os.Stderr, "bitconv: %s\n", err)
			os.Exit(2)
		}
	}

	failed, err := convert(o, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bitconv: %s\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
