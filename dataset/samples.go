// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	_ "embed"
	"math"
	"math/rand"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Months lists the month abbreviations used by the flights dataset, in
// calendar order.
var Months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Seasonal load factors with a northern-summer travel peak.
var flightSeason = [12]float64{
	0.92, 0.89, 1.02, 0.98, 0.99, 1.10,
	1.22, 1.21, 1.06, 0.95, 0.84, 0.92,
}

// Flights returns a monthly airline passenger series: one row per
// month for the years 1949-1960 with columns "year" ([]int), "month"
// ([]string, see Months), and "passengers" ([]int). The series has a
// linear upward trend with multiplicative seasonality.
func Flights() *table.Table {
	n := 12 * 12
	years := make([]int, 0, n)
	months := make([]string, 0, n)
	passengers := make([]int, 0, n)
	for year := 1949; year <= 1960; year++ {
		base := 120.0 + 28.5*float64(year-1949)
		for m := 0; m < 12; m++ {
			years = append(years, year)
			months = append(months, Months[m])
			passengers = append(passengers, int(base*flightSeason[m]))
		}
	}
	return new(table.Builder).
		Add("year", years).
		Add("month", months).
		Add("passengers", passengers).
		Done()
}

// FMRI returns an event-related signal timecourse panel with columns
// "subject" ([]string), "timepoint" ([]int), "event" ([]string, "stim"
// or "cue"), "region" ([]string, "parietal" or "frontal"), and
// "signal" ([]float64). Each subject's signal is a smooth response
// curve plus seeded noise, so the data is deterministic across calls.
func FMRI() *table.Table {
	const (
		nSubjects   = 8
		nTimepoints = 19
	)
	events := []string{"stim", "cue"}
	regions := []string{"parietal", "frontal"}

	rng := rand.New(rand.NewSource(293))
	n := nSubjects * nTimepoints * len(events) * len(regions)
	subjects := make([]string, 0, n)
	timepoints := make([]int, 0, n)
	eventCol := make([]string, 0, n)
	regionCol := make([]string, 0, n)
	signal := make([]float64, 0, n)

	subjectNames := make([]string, nSubjects)
	for i := range subjectNames {
		subjectNames[i] = "s" + string(rune('0'+i))
	}

	for _, subj := range subjectNames {
		// Per-subject response gain.
		gain := 0.8 + 0.4*rng.Float64()
		for _, event := range events {
			amp := 0.14
			if event == "cue" {
				amp = 0.05
			}
			for _, region := range regions {
				ramp := amp
				if region == "frontal" {
					ramp *= 0.7
				}
				for tp := 0; tp < nTimepoints; tp++ {
					subjects = append(subjects, subj)
					timepoints = append(timepoints, tp)
					eventCol = append(eventCol, event)
					regionCol = append(regionCol, region)
					signal = append(signal, gain*ramp*response(float64(tp))+0.015*rng.NormFloat64())
				}
			}
		}
	}
	return new(table.Builder).
		Add("subject", subjects).
		Add("timepoint", timepoints).
		Add("event", eventCol).
		Add("region", regionCol).
		Add("signal", signal).
		Done()
}

// response is a gamma-shaped response curve peaking a few timepoints
// after onset and decaying back below baseline.
func response(t float64) float64 {
	if t <= 0 {
		return 0
	}
	peak := math.Pow(t/4, 2) * math.Exp(-t/2) * math.E * math.E
	undershoot := 0.2 * math.Pow(t/8, 2) * math.Exp(-t/4)
	return peak - undershoot
}

//go:embed penguins.csv
var penguinsCSV string

// Penguins returns the penguin morphology dataset with columns
// "species", "island", "bill_length_mm", "bill_depth_mm",
// "flipper_length_mm", "body_mass_g", and "sex". Rows with missing
// measurements are omitted from the bundled copy.
func Penguins() *table.Table {
	t, err := FromCSV(strings.NewReader(penguinsCSV))
	if err != nil {
		panic("dataset: corrupt embedded penguins.csv: " + err.Error())
	}
	return t
}
