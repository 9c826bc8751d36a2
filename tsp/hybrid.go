// SPDX-License-Identifier: MIT

// Package tsp - hybrid pipeline: nearest neighbour → 2-opt.
package tsp

// Hybrid builds a NearestNeighbor tour and refines it with TwoOpt.
// The reported Elapsed is the sum of both stages; the reported length never
// exceeds the nearest-neighbour length.
//
// Errors: ErrNilMatrix, ErrInvalidOptions.
func Hybrid(d *DistanceMatrix, opts TwoOptOptions) (Result, error) {
	nn, err := NearestNeighbor(d)
	if err != nil {
		return Result{}, err
	}
	res, err := TwoOpt(d, nn.Tour, opts)
	if err != nil {
		return Result{}, err
	}
	res.Elapsed += nn.Elapsed

	return res, nil
}
