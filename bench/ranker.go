// SPDX-License-Identifier: MIT

package bench

import "sort"

// Rank is one algorithm's position in the combined ranking.
type Rank struct {
	Name         string
	DistanceRank int // 0-based position by ascending Length
	TimeRank     int // 0-based position by ascending Elapsed
	Combined     int // DistanceRank + TimeRank
}

// Ranker answers ranking queries over a snapshot of Results.
type Ranker struct {
	items []Result
}

// NewRanker snapshots rs; later changes to rs are not observed.
func NewRanker(rs *Results) *Ranker {
	return &Ranker{items: rs.All()}
}

// BestByDistance returns the result with the smallest Length.
// The first inserted result wins ties; ok is false when there are no results.
func (k *Ranker) BestByDistance() (Result, bool) {
	if len(k.items) == 0 {
		return Result{}, false
	}
	best := 0

	var i int
	for i = 1; i < len(k.items); i++ {
		if k.items[i].Length < k.items[best].Length {
			best = i
		}
	}

	return k.items[best], true
}

// BestByTime returns the result with the smallest Elapsed.
// The first inserted result wins ties; ok is false when there are no results.
func (k *Ranker) BestByTime() (Result, bool) {
	if len(k.items) == 0 {
		return Result{}, false
	}
	best := 0

	var i int
	for i = 1; i < len(k.items); i++ {
		if k.items[i].Elapsed < k.items[best].Elapsed {
			best = i
		}
	}

	return k.items[best], true
}

// Ranking returns every algorithm with its distance, time and combined rank,
// in ascending Combined order (insertion order among equals).
//
// Complexity: O(k log k).
func (k *Ranker) Ranking() []Rank {
	n := len(k.items)
	ranks := make([]Rank, n)

	var i int
	for i = range k.items {
		ranks[i].Name = k.items[i].Name
	}

	order := identity(n)
	sort.SliceStable(order, func(a, b int) bool {
		return k.items[order[a]].Length < k.items[order[b]].Length
	})
	for i = range order {
		ranks[order[i]].DistanceRank = i
	}

	order = identity(n)
	sort.SliceStable(order, func(a, b int) bool {
		return k.items[order[a]].Elapsed < k.items[order[b]].Elapsed
	})
	for i = range order {
		ranks[order[i]].TimeRank = i
	}

	for i = range ranks {
		ranks[i].Combined = ranks[i].DistanceRank + ranks[i].TimeRank
	}
	sort.SliceStable(ranks, func(a, b int) bool {
		return ranks[a].Combined < ranks[b].Combined
	})

	return ranks
}

// CombinedRank returns the algorithm with the lowest combined rank and that
// rank. The first inserted algorithm wins ties; ok is false when there are
// no results.
func (k *Ranker) CombinedRank() (name string, rank int, ok bool) {
	ranks := k.Ranking()
	if len(ranks) == 0 {
		return "", 0, false
	}

	return ranks[0].Name, ranks[0].Combined, true
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
