package timegrid

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	id      string
	summary string
}

var stubAcc = Accessors[stub]{
	ID:      func(s stub) string { return s.id },
	Summary: func(s stub) string { return s.summary },
}

// at builds an instant on a fixed reference day.
func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func makeCell(id string, start, end time.Time) *TimeCell[stub] {
	return NewCell(stub{id: id, summary: id}, start, end, stubAcc)
}

func TestLayout_Empty(t *testing.T) {
	assert.Empty(t, Layout[stub](nil))
	assert.Empty(t, Layout([]*TimeCell[stub]{}))
}

func TestLayout_SingleCell(t *testing.T) {
	c := makeCell("a", at(10, 0), at(11, 0))

	out := Layout([]*TimeCell[stub]{c})

	require.Len(t, out, 1)
	assert.Equal(t, 0, c.OverlapIndex)
	assert.Equal(t, 1, c.OverlapCount)
}

func TestLayout_BoundaryTouchIsNotOverlap(t *testing.T) {
	a := makeCell("a", at(10, 0), at(10, 30))
	b := makeCell("b", at(10, 30), at(11, 0))

	Layout([]*TimeCell[stub]{a, b})

	assert.Equal(t, 1, a.OverlapCount, "touching intervals stay unsplit")
	assert.Equal(t, 1, b.OverlapCount)
	assert.Equal(t, 0, a.OverlapIndex)
	assert.Equal(t, 0, b.OverlapIndex)
}

func TestLayout_SimplePairwiseOverlap(t *testing.T) {
	a := makeCell("a", at(10, 0), at(11, 0))
	b := makeCell("b", at(10, 30), at(11, 30))

	Layout([]*TimeCell[stub]{a, b})

	assert.Equal(t, 0, a.OverlapIndex, "first-placed cell takes index 0")
	assert.Equal(t, 1, b.OverlapIndex)
	assert.Equal(t, 2, a.OverlapCount)
	assert.Equal(t, 2, b.OverlapCount)
}

func TestLayout_TransitiveChainGrouping(t *testing.T) {
	// A overlaps B, B overlaps C, A and C are disjoint. The greedy
	// shares-a-lane grouping still puts all three in one group of 3.
	a := makeCell("a", at(10, 0), at(10, 30))
	b := makeCell("b", at(10, 15), at(11, 15))
	c := makeCell("c", at(11, 0), at(11, 30))

	Layout([]*TimeCell[stub]{a, b, c})

	assert.Equal(t, 3, a.OverlapCount)
	assert.Equal(t, 3, b.OverlapCount)
	assert.Equal(t, 3, c.OverlapCount)
	assert.Equal(t, 0, a.OverlapIndex)
	assert.Equal(t, 1, b.OverlapIndex)
	assert.Equal(t, 2, c.OverlapIndex)
}

func TestLayout_OutputSortedByStart(t *testing.T) {
	a := makeCell("a", at(12, 0), at(13, 0))
	b := makeCell("b", at(9, 0), at(10, 0))
	c := makeCell("c", at(10, 30), at(11, 0))

	out := Layout([]*TimeCell[stub]{a, b, c})

	require.Len(t, out, 3)
	assert.Equal(t, "b", out[0].ID())
	assert.Equal(t, "c", out[1].ID())
	assert.Equal(t, "a", out[2].ID())
}

func TestLayout_EqualStartsKeepInputOrder(t *testing.T) {
	a := makeCell("a", at(10, 0), at(11, 0))
	b := makeCell("b", at(10, 0), at(10, 45))

	out := Layout([]*TimeCell[stub]{a, b})

	assert.Equal(t, "a", out[0].ID(), "stable sort preserves input order on ties")
	assert.Equal(t, 0, a.OverlapIndex)
	assert.Equal(t, 1, b.OverlapIndex)
}

func TestLayout_DisjointGroupsAreIndependent(t *testing.T) {
	a := makeCell("a", at(9, 0), at(10, 0))
	b := makeCell("b", at(9, 30), at(10, 30))
	c := makeCell("c", at(14, 0), at(15, 0))

	Layout([]*TimeCell[stub]{a, b, c})

	assert.Equal(t, 2, a.OverlapCount)
	assert.Equal(t, 2, b.OverlapCount)
	assert.Equal(t, 1, c.OverlapCount)
	assert.Equal(t, 0, c.OverlapIndex, "a fresh group restarts at index 0")
}

func TestLayout_Idempotent(t *testing.T) {
	build := func() []*TimeCell[stub] {
		return []*TimeCell[stub]{
			makeCell("a", at(10, 0), at(11, 0)),
			makeCell("b", at(10, 30), at(11, 30)),
			makeCell("c", at(11, 15), at(12, 0)),
			makeCell("d", at(13, 0), at(13, 30)),
		}
	}

	first := Layout(build())
	second := Layout(first)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].OverlapIndex, second[i].OverlapIndex, "index of %s", first[i].ID())
		assert.Equal(t, first[i].OverlapCount, second[i].OverlapCount, "count of %s", first[i].ID())
	}
}

func TestLayout_SameIndexNeverOverlaps(t *testing.T) {
	// Build a dense, irregular day and check directly that two distinct
	// cells ending up with the same OverlapIndex never strictly overlap.
	var cells []*TimeCell[stub]
	spans := [][4]int{
		{9, 0, 10, 0}, {9, 15, 11, 0}, {9, 45, 10, 15}, {10, 0, 12, 0},
		{11, 30, 12, 30}, {12, 0, 12, 45}, {12, 30, 13, 0}, {13, 0, 14, 0},
		{13, 0, 13, 30}, {13, 15, 15, 0},
	}
	for i, s := range spans {
		cells = append(cells, makeCell(fmt.Sprintf("c%d", i), at(s[0], s[1]), at(s[2], s[3])))
	}

	out := Layout(cells)

	for i, a := range out {
		for _, b := range out[i+1:] {
			if a.OverlapIndex == b.OverlapIndex {
				assert.False(t, a.Overlaps(b),
					"%s and %s share index %d but overlap", a.ID(), b.ID(), a.OverlapIndex)
			}
		}
	}
}

func TestLayout_SkipsZeroStartCells(t *testing.T) {
	good := makeCell("a", at(10, 0), at(11, 0))
	bad := makeCell("b", time.Time{}, at(11, 0))

	out := Layout([]*TimeCell[stub]{bad, good})

	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID())
}

func TestCell_RenderEndFloor(t *testing.T) {
	short := makeCell("a", at(10, 0), at(10, 5))
	long := makeCell("b", at(10, 0), at(11, 0))

	assert.Equal(t, at(10, 15), short.RenderEnd(), "short cells floor to 15 minutes")
	assert.Equal(t, at(11, 0), long.RenderEnd())
	assert.Equal(t, at(10, 5), short.End(), "actual bounds stay untouched")
}

func TestCell_FlooredBoundsDoNotAffectOverlap(t *testing.T) {
	// a renders until 10:15 but actually ends at 10:05; b starts at 10:10.
	// Overlap uses actual bounds, so they must not group.
	a := makeCell("a", at(10, 0), at(10, 5))
	b := makeCell("b", at(10, 10), at(10, 40))

	Layout([]*TimeCell[stub]{a, b})

	assert.Equal(t, 1, a.OverlapCount)
	assert.Equal(t, 1, b.OverlapCount)
}

func TestCell_EndClampedToStart(t *testing.T) {
	c := makeCell("a", at(10, 0), at(9, 0))

	assert.Equal(t, at(10, 0), c.Start())
	assert.Equal(t, at(10, 0), c.End())
}
