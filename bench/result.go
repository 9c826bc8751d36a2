// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/katalvlaran/tourbench/tsp"
)

// Result is the outcome of one algorithm in a comparison session.
type Result struct {
	Name    string
	Tour    []int
	Length  float64
	Elapsed time.Duration
}

// newResult copies res so the session owns its tour.
func newResult(name string, res tsp.Result) Result {
	return Result{
		Name:    name,
		Tour:    tsp.CopyTour(res.Tour),
		Length:  res.Length,
		Elapsed: res.Elapsed,
	}
}

// Results is an insertion-ordered collection of Result keyed by Name.
// The zero value is ready to use.
type Results struct {
	index map[string]int
	items []Result
}

// Add stores res under res.Name. Replacing an existing name keeps the
// position of its first insertion.
func (r *Results) Add(res Result) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[res.Name]; ok {
		r.items[i] = res
		return
	}
	r.index[res.Name] = len(r.items)
	r.items = append(r.items, res)
}

// Get returns the Result stored under name.
func (r *Results) Get(name string) (Result, bool) {
	if r == nil {
		return Result{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return Result{}, false
	}

	return r.items[i], true
}

// Len reports the number of stored results.
func (r *Results) Len() int {
	if r == nil {
		return 0
	}

	return len(r.items)
}

// Names returns the stored names in insertion order.
func (r *Results) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.items))
	for i := range r.items {
		out[i] = r.items[i].Name
	}

	return out
}

// All returns a copy of the stored results in insertion order.
func (r *Results) All() []Result {
	if r == nil {
		return nil
	}
	out := make([]Result, len(r.items))
	copy(out, r.items)

	return out
}
