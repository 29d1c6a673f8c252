package intersecter

import (
	"fmt"
	"sort"

	"github.com/biogo/hts/sam"
)

// Opts defines behavior of this package's index-construction functions.
type Opts struct {
	// SAMHeader enables reference-ID-based partition lookup (FindByID).
	// This is more convenient than string-based lookup when coordinates
	// arrive from BAM records.  Optional.
	SAMHeader *sam.Header
	// OneBasedInput interprets BED start coordinates as one-based [start,
	// end] instead of the usual zero-based [start, end).  Only consulted by
	// NewFromBED and NewFromBEDPath.
	OneBasedInput bool
}

// Intersecter answers intersection and neighbor queries over a fixed set of
// features.  Each chromosome's features are kept sorted by start position;
// together with maxLen, the length of the longest feature anywhere in the
// set, binary search bounds every candidate window.  An Intersecter is
// read-only after New returns and may be shared freely between goroutines.
type Intersecter struct {
	// chroms maps a chromosome name to its features, sorted by ascending
	// Start.  Ties keep the order features were passed to New.
	chroms map[string][]Feature
	// idMap is an optional slice of per-chromosome feature sequences,
	// indexed by SAM reference ID.  Only initialized when Opts.SAMHeader
	// was provided.
	idMap [][]Feature
	// maxLen is the maximum End-Start over every feature in the set,
	// regardless of chromosome, clamped to >= 1.  Keeping one global value
	// rather than one per chromosome is deliberate: queries synthesize
	// features on arbitrary chromosomes, and a per-chromosome bound would
	// silently shrink their candidate windows.
	maxLen PosType
}

// New builds an Intersecter from a finite, possibly empty, collection of
// features.  It fails if any feature has Start > End; queries never
// re-validate coordinates.  The input slice itself is not retained, but the
// Feature values (including Info payloads) are.
func New(features []Feature, opts Opts) (*Intersecter, error) {
	x := &Intersecter{
		chroms: make(map[string][]Feature),
		maxLen: 1,
	}
	for _, f := range features {
		if f.Start > f.End {
			return nil, fmt.Errorf("intersecter.New: start > end in %v", f)
		}
		x.chroms[f.Chrom] = append(x.chroms[f.Chrom], f)
		if l := f.End - f.Start; l > x.maxLen {
			x.maxLen = l
		}
	}
	for _, seq := range x.chroms {
		sort.SliceStable(seq, func(i, j int) bool { return seq[i].Start < seq[j].Start })
	}
	if opts.SAMHeader != nil {
		refs := opts.SAMHeader.Refs()
		x.idMap = make([][]Feature, len(refs))
		for refID, ref := range refs {
			x.idMap[refID] = x.chroms[ref.Name()]
		}
	}
	return x, nil
}

// Find returns every stored feature overlapping the closed range
// [start, end] on chrom, in the partition's sorted order.  An unknown
// chromosome yields an empty result, never an error.
func (x *Intersecter) Find(start, end PosType, chrom string) []Feature {
	return x.findIn(x.chroms[chrom], start, end)
}

// FindByID is Find with the partition addressed by SAM reference ID.  It
// yields an empty result when the index was built without Opts.SAMHeader or
// the ID is out of range.
func (x *Intersecter) FindByID(start, end PosType, refID int) []Feature {
	if refID < 0 || refID >= len(x.idMap) {
		return nil
	}
	return x.findIn(x.idMap[refID], start, end)
}

func (x *Intersecter) findIn(seq []Feature, start, end PosType) []Feature {
	ilen := len(seq)
	// Any feature starting within maxLen of the query can reach it, so the
	// candidate window opens at start-maxLen.  The distance filter below
	// discards the shorter false positives this coarse bound admits.
	ileft := searchLeftStart(seq, start-x.maxLen, 0, ilen)
	iright := searchRightEnd(seq, end, ileft, ilen)
	query := Feature{Start: start, End: end}
	var results []Feature
	for _, f := range seq[ileft:iright] {
		if Distance(f, query) == 0 {
			results = append(results, f)
		}
	}
	return results
}

// Right returns up to n features strictly to the right of f: no overlap,
// no touching.  Results are ordered by increasing distance from f, and
// every feature tied with the n-th distance is included, so the result may
// hold more than n entries.  n <= 0 yields an empty result.
func (x *Intersecter) Right(f Feature, n int) []Feature {
	if n <= 0 {
		return nil
	}
	seq := x.chroms[f.Chrom]
	var results []Feature
	// Features are sorted by start and every candidate here starts past
	// f.End, so distances are nondecreasing along the scan.
	for i := searchRightEnd(seq, f.End, 0, len(seq)); i < len(seq); i++ {
		other := seq[i]
		if Distance(f, other) == 0 {
			continue
		}
		if len(results) >= n && Distance(f, other) != Distance(f, results[len(results)-1]) {
			break
		}
		results = append(results, other)
	}
	return results
}

// Left returns up to n features strictly to the left of f, ordered by
// increasing distance from f, with the same tie-inclusion rule as Right.
// n <= 0 yields an empty result.
//
// Features are sorted by start but a left neighbor's proximity is set by
// its end, so the search proceeds in windows: the first window spans
// maxLen+1 positions back from f.Start, which covers every feature able to
// overlap or touch f.  If that window does not prove the first n distance
// groups complete, the window is rebased just past the next unexamined
// feature and the scan repeats.  Each round takes in at least one new
// feature, so the loop runs at most partition-size rounds.
func (x *Intersecter) Left(f Feature, n int) []Feature {
	if n <= 0 {
		return nil
	}
	seq := x.chroms[f.Chrom]
	hi := searchLeftStart(seq, f.Start, 0, len(seq))
	limit := f.Start
	var results []Feature
	for {
		lo := searchLeftStart(seq, limit-x.maxLen-1, 0, hi)
		for _, other := range seq[lo:hi] {
			if other.End < f.Start {
				results = append(results, other)
			}
		}
		sortByDistance(f, results)
		if clipped, ok := clipTies(f, results, n); ok {
			return clipped
		}
		if lo == 0 {
			return results
		}
		// Everything below lo starts before limit-maxLen-1.  Rebase the
		// window so the next round picks up seq[lo-1].
		limit = seq[lo-1].Start + 1
		hi = lo
	}
}

// Upstream returns the n nearest non-overlapping features upstream of f:
// to the left for forward-strand and unstranded features, to the right for
// reverse-strand features.
func (x *Intersecter) Upstream(f Feature, n int) []Feature {
	if f.Strand == ReverseStrand {
		return x.Right(f, n)
	}
	return x.Left(f, n)
}

// Downstream is the complement of Upstream.
func (x *Intersecter) Downstream(f Feature, n int) []Feature {
	if f.Strand == ReverseStrand {
		return x.Left(f, n)
	}
	return x.Right(f, n)
}

// sortByDistance stably sorts results by distance from f, so that
// equal-distance candidates keep their scan order.
func sortByDistance(f Feature, results []Feature) {
	sort.SliceStable(results, func(i, j int) bool {
		return Distance(f, results[i]) < Distance(f, results[j])
	})
}

// clipTies trims distance-sorted results at the first distance increase at
// or beyond index n.  ok is false when no such increase exists: the tail
// of results is then still tied, and candidates outside results could tie
// with it as well, so the caller must either widen its search or accept
// the whole slice because there is nothing left to examine.
func clipTies(f Feature, results []Feature, n int) (clipped []Feature, ok bool) {
	for i := n; i < len(results); i++ {
		if Distance(f, results[i]) != Distance(f, results[i-1]) {
			return results[:i], true
		}
	}
	return results, false
}
