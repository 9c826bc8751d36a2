// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the spread of repeated runs of one algorithm.
type Summary struct {
	Name string
	Runs int

	BestLength float64
	MeanLength float64
	StdLength  float64

	BestElapsed time.Duration
	MeanElapsed time.Duration
	StdElapsed  time.Duration
}

// Summarize computes best, mean and sample standard deviation of the lengths
// and elapsed times in runs. The deviation of a single run is 0.
func Summarize(name string, runs []Result) Summary {
	s := Summary{Name: name, Runs: len(runs)}
	if len(runs) == 0 {
		return s
	}

	lengths := make([]float64, len(runs))
	secs := make([]float64, len(runs))
	s.BestLength = runs[0].Length
	s.BestElapsed = runs[0].Elapsed
	for i, r := range runs {
		lengths[i] = r.Length
		secs[i] = r.Elapsed.Seconds()
		if r.Length < s.BestLength {
			s.BestLength = r.Length
		}
		if r.Elapsed < s.BestElapsed {
			s.BestElapsed = r.Elapsed
		}
	}

	var meanT, stdT float64
	if len(runs) == 1 {
		s.MeanLength = lengths[0]
		meanT = secs[0]
	} else {
		s.MeanLength, s.StdLength = stat.MeanStdDev(lengths, nil)
		meanT, stdT = stat.MeanStdDev(secs, nil)
	}
	s.MeanElapsed = seconds(meanT)
	s.StdElapsed = seconds(stdT)

	return s
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
