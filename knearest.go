package intersecter

import (
	"container/heap"
)

// distHeap is a max-heap over candidate distances.  KNearest keeps it
// bounded to the k smallest distances admitted so far, which makes the
// root the running k-th-nearest distance.
type distHeap []PosType

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(PosType)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// KNearest returns the k stored features nearest to query by Distance,
// looking to both sides at once.  Overlapping features count as distance
// zero.  Results are ordered by increasing distance, and every feature
// tied with the k-th distance is included, so the result may hold more
// than k entries.  k <= 0 yields an empty result.
//
// When inclusive is false, features wholly contained within the query
// range are skipped; that is usually what callers scanning around a large
// region want, while neighborhood searches leave it true.
//
// The candidate window is seeded the same way as Find and then grown one
// feature per side per round.  Expansion stops once both ends of the
// partition are reached, or once k candidates are held and both boundary
// features are provably farther than the current k-th-nearest distance:
// on the right every unseen feature starts at or past seq[iright].Start,
// and on the left every unseen feature ends at or before
// seq[ileft-1].Start+maxLen.  Requiring strictly greater bounds keeps
// boundary ties in play.  Each round consumes at least one index, so the
// loop is bounded by the partition size.
func (x *Intersecter) KNearest(query Feature, k int, inclusive bool) []Feature {
	if k <= 0 {
		return nil
	}
	seq := x.chroms[query.Chrom]
	ilen := len(seq)
	ileft := searchLeftStart(seq, query.Start-x.maxLen, 0, ilen)
	iright := searchRightEnd(seq, query.End, ileft, ilen)

	var results []Feature
	nearest := make(distHeap, 0, k+1)
	admit := func(f Feature) {
		if !inclusive && f.Start >= query.Start && f.End <= query.End {
			return
		}
		results = append(results, f)
		heap.Push(&nearest, Distance(query, f))
		if len(nearest) > k {
			heap.Pop(&nearest)
		}
	}
	for _, f := range seq[ileft:iright] {
		admit(f)
	}
	for {
		if len(nearest) == k {
			kth := nearest[0]
			safe := true
			if ileft > 0 && query.Start-seq[ileft-1].Start-x.maxLen <= kth {
				safe = false
			}
			if iright < ilen && seq[iright].Start-query.End <= kth {
				safe = false
			}
			if safe {
				break
			}
		}
		if ileft == 0 && iright == ilen {
			break
		}
		if ileft > 0 {
			ileft--
			admit(seq[ileft])
		}
		if iright < ilen {
			admit(seq[iright])
			iright++
		}
	}
	sortByDistance(query, results)
	clipped, _ := clipTies(query, results, k)
	return clipped
}
