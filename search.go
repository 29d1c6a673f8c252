package intersecter

// searchLeftStart returns the leftmost index i in [lo, hi] such that
// seq[i].Start >= x, i.e. the lower-bound insertion point for a feature
// starting at x.  This is really an inlined sort.Search call; we spell it
// out since the compiler does not inline functions with loops, and these
// two primitives sit under every query.
func searchLeftStart(seq []Feature, x PosType, lo, hi int) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if seq[mid].Start < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// searchRightEnd returns the leftmost index i in [lo, hi] such that
// seq[i].Start > x (upper bound).  With x set to a query end position this
// is the right edge of the window of features able to overlap the query.
func searchRightEnd(seq []Feature, x PosType, lo, hi int) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if x < seq[mid].Start {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
