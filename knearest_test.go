package intersecter

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestKNearest(t *testing.T) {
	features := testFeatures()
	x := newTestIntersecter(t, features)

	expect.EQ(t, x.KNearest(Feature{Start: 1, End: 2}, 1, true), []Feature{features[0]})
	// (3, 7) and (3, 40) are both at distance 1, so k=2 returns all three.
	expect.EQ(t, x.KNearest(Feature{Start: 1, End: 2}, 2, true),
		[]Feature{features[0], features[1], features[2]})

	// Overlapping features count as distance zero and come first.
	expect.EQ(t, x.KNearest(Feature{Start: 8, End: 9}, 1, true),
		[]Feature{features[0], features[2]})

	expect.EQ(t, len(x.KNearest(Feature{Start: 1, End: 2}, 0, true)), 0)
	expect.EQ(t, len(x.KNearest(Feature{Start: 1, End: 2}, -1, true)), 0)
	expect.EQ(t, len(x.KNearest(Feature{Start: 1, End: 2, Chrom: "chrUn"}, 1, true)), 0)
}

func TestKNearestSmallPartition(t *testing.T) {
	// k larger than the partition: expansion saturates at both ends and
	// returns everything, sorted by distance, without looping.
	features := testFeatures()
	x := newTestIntersecter(t, features)
	got := x.KNearest(Feature{Start: 11, End: 12}, 10, true)
	expect.EQ(t, len(got), 4)
	for i := 1; i < len(got); i++ {
		q := Feature{Start: 11, End: 12}
		expect.LE(t, int(Distance(q, got[i-1])), int(Distance(q, got[i])))
	}

	single := newTestIntersecter(t, []Feature{{Start: 5, End: 6}})
	expect.EQ(t, single.KNearest(Feature{Start: 100, End: 101}, 3, true),
		[]Feature{{Start: 5, End: 6}})
	empty := newTestIntersecter(t, nil)
	expect.EQ(t, len(empty.KNearest(Feature{Start: 1, End: 2}, 1, true)), 0)
}

func TestKNearestBothSides(t *testing.T) {
	// The nearer left neighbor must win even though the window is seeded
	// around the query and the right neighbor is met first during
	// expansion.
	x := newTestIntersecter(t, []Feature{
		{Start: 0, End: 98, Name: "left"},
		{Start: 110, End: 120, Name: "right"},
	})
	q := Feature{Start: 100, End: 101}
	expect.EQ(t, x.KNearest(q, 1, true), []Feature{{Start: 0, End: 98, Name: "left"}})
	expect.EQ(t, x.KNearest(q, 2, true), []Feature{
		{Start: 0, End: 98, Name: "left"},
		{Start: 110, End: 120, Name: "right"},
	})
}

func TestKNearestBoundaryTies(t *testing.T) {
	// One neighbor at distance 4 on each side: k=1 must keep both.
	x := newTestIntersecter(t, []Feature{
		{Start: 0, End: 6, Name: "a"},
		{Start: 14, End: 20, Name: "b"},
		{Start: 30, End: 31, Name: "c"},
	})
	q := Feature{Start: 10, End: 10}
	got := x.KNearest(q, 1, true)
	expect.EQ(t, len(got), 2)
	expect.EQ(t, Distance(q, got[0]), PosType(4))
	expect.EQ(t, Distance(q, got[1]), PosType(4))
}

func TestKNearestExclusive(t *testing.T) {
	features := testFeatures()
	x := newTestIntersecter(t, features)
	q := Feature{Start: 0, End: 45}

	// Inclusive search finds the contained features.
	expect.EQ(t, len(x.KNearest(q, 4, true)), 4)
	// Exclusive search skips features wholly inside [0, 45]; (13, 50)
	// sticks out past the query end and survives.
	expect.EQ(t, x.KNearest(q, 1, false), []Feature{features[3]})
}
