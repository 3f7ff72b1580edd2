// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estimate

import (
	"math"
	"math/rand"

	"github.com/aclements/go-moremath/stats"
)

// An ErrorMethod names a way of turning a sample into an interval
// around its point estimate.
type ErrorMethod string

const (
	// CI is a bootstrap percentile confidence interval of the
	// estimator. Level is the confidence level in percent.
	CI ErrorMethod = "ci"

	// PI is a percentile interval of the raw observations. Level
	// is the coverage in percent.
	PI ErrorMethod = "pi"

	// SE is the estimate plus or minus Level standard errors of
	// the mean.
	SE ErrorMethod = "se"

	// SD is the estimate plus or minus Level standard deviations.
	SD ErrorMethod = "sd"

	// None disables the interval. Both bounds are NaN.
	None ErrorMethod = "none"
)

// An ErrorBar specifies the error interval drawn around an aggregate.
//
// For CI and PI, Level is a percentage and defaults to 95. For SE and
// SD, Level is a width multiplier and defaults to 1.
type ErrorBar struct {
	Method ErrorMethod
	Level  float64
}

func (eb ErrorBar) level() float64 {
	if eb.Level != 0 {
		return eb.Level
	}
	switch eb.Method {
	case SE, SD:
		return 1
	}
	return 95
}

// interval computes the interval around est for the sample xs. boot
// and rng are used only by the CI method.
func (eb ErrorBar) interval(xs []float64, est float64, e Estimator, boot int, rng *rand.Rand) (lo, hi float64) {
	nan := math.NaN()
	switch eb.Method {
	case None:
		return nan, nan
	case SD, SE:
		w := eb.level() * stats.Sample{Xs: xs}.StdDev()
		if eb.Method == SE {
			w /= math.Sqrt(float64(len(xs)))
		}
		return est - w, est + w
	case PI:
		return percentileInterval(xs, eb.level())
	case CI, "":
		dist := bootstrap(xs, boot, rng, func(b []float64) float64 {
			v, err := e.Apply(b)
			if err != nil {
				return nan
			}
			return v
		})
		return percentileInterval(dist, eb.level())
	}
	return nan, nan
}

// percentileInterval returns the central level% of xs. Sample.Quantile
// interpolates, so small samples still get finite bounds, and level
// 100 degenerates to the sample extremes.
func percentileInterval(xs []float64, level float64) (lo, hi float64) {
	tail := (100 - level) / 2 / 100
	s := stats.Sample{Xs: xs}
	return s.Quantile(tail), s.Quantile(1 - tail)
}

// Bootstrap resamples xs with replacement n times, applies f to each
// resample, and returns the resulting sampling distribution. The
// result is deterministic for a given seed.
func Bootstrap(xs []float64, n int, seed int64, f func([]float64) float64) []float64 {
	return bootstrap(xs, n, rand.New(rand.NewSource(seed)), f)
}

func bootstrap(xs []float64, n int, rng *rand.Rand, f func([]float64) float64) []float64 {
	dist := make([]float64, n)
	buf := make([]float64, len(xs))
	for i := range dist {
		for j := range buf {
			buf[j] = xs[rng.Intn(len(xs))]
		}
		dist[i] = f(buf)
	}
	return dist
}
