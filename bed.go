package intersecter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' '
// is treated as a delimiter.  These simple loops beat the standard library
// string-split functions when only a handful of leading columns matter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// NewFromBED builds an Intersecter from BED text.  The first three columns
// (chrom, start, end) are required; when present, column 4 is taken as the
// feature name and column 6 as the strand ('+', '-', or '.').  Column 5
// (score) is ignored.  Blank lines are skipped.  Unlike interval-union
// loaders, input need not be sorted and overlapping features are kept
// distinct.
func NewFromBED(r io.Reader, opts Opts) (*Intersecter, error) {
	// Scanner does not handle very long lines unless given a bigger buffer
	// in advance; that doesn't matter for BED columns.
	scanner := bufio.NewScanner(r)

	var startSubtract int
	if opts.OneBasedInput {
		startSubtract++
	}

	var tokens [6][]byte
	var features []Feature
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 {
			continue
		}
		if nToken < 3 {
			return nil, fmt.Errorf("intersecter.NewFromBED: line %d has fewer tokens than expected", lineIdx)
		}
		parsedStart, err := strconv.Atoi(gunsafe.BytesToString(tokens[1]))
		if err != nil {
			return nil, fmt.Errorf("intersecter.NewFromBED: invalid start coordinate %s on line %d", tokens[1], lineIdx)
		}
		parsedStart -= startSubtract
		if parsedStart < 0 {
			return nil, fmt.Errorf("intersecter.NewFromBED: negative start coordinate %s on line %d", tokens[1], lineIdx)
		}
		parsedEnd, err := strconv.Atoi(gunsafe.BytesToString(tokens[2]))
		if err != nil || parsedEnd < parsedStart || parsedEnd >= maxPos {
			return nil, fmt.Errorf("intersecter.NewFromBED: invalid coordinate pair on line %d", lineIdx)
		}
		// tokens refer to bytes of curLine which the scanner will soon
		// overwrite, so chrom/name need full copies.
		f := Feature{
			Start: PosType(parsedStart),
			End:   PosType(parsedEnd),
			Chrom: string(tokens[0]),
		}
		if nToken > 3 {
			f.Name = string(tokens[3])
		}
		if nToken > 5 {
			switch tokens[5][0] {
			case '+':
				f.Strand = ForwardStrand
			case '-':
				f.Strand = ReverseStrand
			case '.':
			default:
				return nil, fmt.Errorf("intersecter.NewFromBED: invalid strand %s on line %d", tokens[5], lineIdx)
			}
		}
		features = append(features, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	x, err := New(features, opts)
	if err != nil {
		return nil, err
	}
	log.Printf("BED loaded, %d feature(s) across %d chromosome(s).\n", len(features), len(x.chroms))
	return x, nil
}

// NewFromBEDPath is a wrapper for NewFromBED that takes a path instead of
// an io.Reader.  Gzipped input is detected from the path suffix.
func NewFromBEDPath(path string, opts Opts) (x *Intersecter, err error) {
	ctx := vcontext.Background()
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		err = errors.E(err, path)
		return
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return NewFromBED(reader, opts)
}
