// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package estimate provides statistical aggregation for plots: named
// point estimators, error-bar intervals, and the Agg table statistic
// that reduces grouped observations to one row per x position.
package estimate

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	mstats "github.com/montanaflynn/stats"
)

// An Estimator names a function that reduces a sample to a single
// value.
type Estimator string

const (
	Mean   Estimator = "mean"
	Median Estimator = "median"
	Sum    Estimator = "sum"
	Min    Estimator = "min"
	Max    Estimator = "max"
	Count  Estimator = "count"
	Std    Estimator = "std"
)

// Apply reduces xs to a single value. It returns an error if e is not
// a known estimator or xs is empty.
func (e Estimator) Apply(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("estimator %q of empty sample", e)
	}
	switch e {
	case Mean, "":
		return stats.Sample{Xs: xs}.Mean(), nil
	case Median:
		return mstats.Median(xs)
	case Sum:
		return vec.Sum(xs), nil
	case Min:
		min, _ := stats.Bounds(xs)
		return min, nil
	case Max:
		_, max := stats.Bounds(xs)
		return max, nil
	case Count:
		return float64(len(xs)), nil
	case Std:
		return stats.Sample{Xs: xs}.StdDev(), nil
	}
	return 0, fmt.Errorf("unknown estimator %q", e)
}
