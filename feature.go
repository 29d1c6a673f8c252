package intersecter

import (
	"fmt"
	"strings"
)

// PosType is the type used to represent feature coordinates.  int32 is wide
// enough for genomic positions since that's what BAM files are limited to.
type PosType int32

// Strand is the orientation of a stranded feature.
type Strand int8

const (
	// ReverseStrand marks a feature on the minus strand.
	ReverseStrand Strand = -1
	// NoStrand marks a feature with no (or unknown) orientation.
	NoStrand Strand = 0
	// ForwardStrand marks a feature on the plus strand.
	ForwardStrand Strand = 1
)

// Feature is an integer interval [Start, End] with optional strand, name,
// chromosome, and caller-supplied payload.  Start and End are the only
// fields the index itself interprets; everything else is carried through
// queries unmodified.  Features must not be mutated once handed to New.
type Feature struct {
	Start PosType
	End   PosType
	// Strand only affects Upstream/Downstream dispatch.
	Strand Strand
	Name   string
	// Info is an opaque payload; the index never inspects it.
	Info interface{}
	// Chrom selects the partition the feature is indexed under.  The empty
	// string is itself a valid partition, used when features are not grouped
	// by chromosome.
	Chrom string
}

// NewFeature returns an unstranded, unnamed feature spanning [start, end].
// It fails when start > end; that is the only construction-time contract.
func NewFeature(start, end PosType) (Feature, error) {
	if start > end {
		return Feature{}, fmt.Errorf("intersecter.NewFeature: start %d > end %d", start, end)
	}
	return Feature{Start: start, End: end}, nil
}

// String renders the feature for debugging and log messages, showing only
// non-default fields beyond the coordinates.  It is not a parseable format.
func (f Feature) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Feature(%d, %d", f.Start, f.End)
	if f.Strand != NoStrand {
		fmt.Fprintf(&b, ", strand=%d", f.Strand)
	}
	if len(f.Name) > 0 {
		fmt.Fprintf(&b, ", name=%q", f.Name)
	}
	if f.Info != nil {
		fmt.Fprintf(&b, ", %v", f.Info)
	}
	b.WriteByte(')')
	return b.String()
}

// Distance returns the gap between a and b: zero whenever the two ranges
// overlap or touch, otherwise the distance between the closer edges.  The
// result is never negative, and Distance(a, b) == Distance(b, a).
func Distance(a, b Feature) PosType {
	if a.End < b.Start {
		return b.Start - a.End
	}
	if b.End < a.Start {
		return a.Start - b.End
	}
	return 0
}
