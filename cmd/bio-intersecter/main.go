// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

/*
bio-intersecter loads a BED of features and reports the features
overlapping, flanking, or nearest to a query region as TSV.
*/

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/intersecter"
)

var (
	op         = flag.String("op", "find", "Query to run; one of 'find', 'left', 'right', 'upstream', 'downstream', or 'knearest'")
	region     = flag.String("region", "", "Query region, formatted as <chrom>:<1-based first pos>-<last pos>, <chrom>:<1-based pos>, or just <chrom>; required")
	count      = flag.Int("n", 1, "Number of neighbors to request for the neighbor ops; features tied with the last neighbor are always reported")
	strandFlag = flag.String("strand", ".", "Strand of the query region, used by 'upstream' and 'downstream'; '+', '-', or '.'")
	exclusive  = flag.Bool("exclusive", false, "For 'knearest', skip features wholly contained in the query region")
	oneBased   = flag.Bool("one-based", false, "Interpret BED start coordinates as 1-based")
	outPath    = flag.String("out", "", "Output TSV path; empty = stdout")
)

func bioIntersecterUsage() {
	fmt.Printf("Usage: %s [OPTIONS] bedpath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func parseStrand(s string) (intersecter.Strand, error) {
	switch s {
	case "+":
		return intersecter.ForwardStrand, nil
	case "-":
		return intersecter.ReverseStrand, nil
	case ".":
		return intersecter.NoStrand, nil
	}
	return intersecter.NoStrand, fmt.Errorf("invalid strand %q", s)
}

func strandChar(s intersecter.Strand) byte {
	switch s {
	case intersecter.ForwardStrand:
		return '+'
	case intersecter.ReverseStrand:
		return '-'
	}
	return '.'
}

func writeResults(w io.Writer, query intersecter.Feature, results []intersecter.Feature) error {
	tsvOut := tsv.NewWriter(w)
	tsvOut.WriteString("#CHROM\tSTART\tEND\tSTRAND\tNAME\tDISTANCE")
	if err := tsvOut.EndLine(); err != nil {
		return err
	}
	for _, f := range results {
		tsvOut.WriteString(f.Chrom)
		tsvOut.WriteInt64(int64(f.Start))
		tsvOut.WriteInt64(int64(f.End))
		tsvOut.WriteByte(strandChar(f.Strand))
		if len(f.Name) > 0 {
			tsvOut.WriteString(f.Name)
		} else {
			tsvOut.WriteString(".")
		}
		tsvOut.WriteInt64(int64(intersecter.Distance(query, f)))
		if err := tsvOut.EndLine(); err != nil {
			return err
		}
	}
	return tsvOut.Flush()
}

func main() {
	flag.Usage = bioIntersecterUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Exactly one positional argument (bedpath) expected; please check flag syntax")
	}
	if len(*region) == 0 {
		log.Fatalf("-region is required")
	}
	reg, err := intersecter.ParseRegion(*region)
	if err != nil {
		log.Fatalf("%v", err)
	}
	strand, err := parseStrand(*strandFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	index, err := intersecter.NewFromBEDPath(flag.Arg(0), intersecter.Opts{OneBasedInput: *oneBased})
	if err != nil {
		log.Fatalf("%v", err)
	}

	query := intersecter.Feature{
		Start:  reg.Start,
		End:    reg.End,
		Strand: strand,
		Chrom:  reg.Chrom,
	}
	var results []intersecter.Feature
	switch *op {
	case "find":
		results = index.Find(reg.Start, reg.End, reg.Chrom)
	case "left":
		results = index.Left(query, *count)
	case "right":
		results = index.Right(query, *count)
	case "upstream":
		results = index.Upstream(query, *count)
	case "downstream":
		results = index.Downstream(query, *count)
	case "knearest":
		results = index.KNearest(query, *count, !*exclusive)
	default:
		log.Fatalf("Unrecognized -op %q", *op)
	}

	ctx := vcontext.Background()
	out := io.Writer(os.Stdout)
	if len(*outPath) > 0 {
		dst, err := file.Create(ctx, *outPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer func() {
			if err := dst.Close(ctx); err != nil {
				log.Fatalf("%v", err)
			}
		}()
		out = dst.Writer(ctx)
	}
	if err := writeResults(out, query, results); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("%s: %d result(s)", *op, len(results))
}
