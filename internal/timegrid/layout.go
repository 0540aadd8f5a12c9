package timegrid

import "sort"

// Layout assigns lane positions to cells so that overlapping entries can be
// rendered side by side. It returns the same cells, sorted by start time,
// with OverlapIndex and OverlapCount filled in. Pure and deterministic.
//
// Placement is greedy: cells are taken in start order and appended to the
// first existing lane containing at least one member they strictly overlap;
// a cell overlapping no lane opens a new one. OverlapCount is the size of
// the lane a cell landed in. The grouping is therefore chain-transitive:
// A~B, B~C group all three with count 3 even when A and C are disjoint.
// Everything sharing a lane divides the rendered width equally.
func Layout[T any](cells []*TimeCell[T]) []*TimeCell[T] {
	placed := make([]*TimeCell[T], 0, len(cells))
	for _, c := range cells {
		if c == nil || c.start.IsZero() {
			continue
		}
		placed = append(placed, c)
	}

	sort.SliceStable(placed, func(i, j int) bool {
		return placed[i].start.Before(placed[j].start)
	})

	var lanes [][]*TimeCell[T]
	for _, c := range placed {
		lane := -1
		for i, members := range lanes {
			for _, m := range members {
				if c.Overlaps(m) {
					lane = i
					break
				}
			}
			if lane >= 0 {
				break
			}
		}
		if lane >= 0 {
			// Positions grow monotonically; freed slots are not reused.
			c.OverlapIndex = len(lanes[lane])
			lanes[lane] = append(lanes[lane], c)
			continue
		}
		c.OverlapIndex = 0
		lanes = append(lanes, []*TimeCell[T]{c})
	}

	for _, members := range lanes {
		for _, m := range members {
			m.OverlapCount = len(members)
		}
	}

	return placed
}
