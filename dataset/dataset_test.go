// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"reflect"
	"strings"
	"testing"
)

func TestFromCSV(t *testing.T) {
	tab, err := FromCSV(strings.NewReader("name,count,frac\nalpha,1,0.5\nbeta,2,1.5\n"))
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if want := []string{"name", "count", "frac"}; !reflect.DeepEqual(want, tab.Columns()) {
		t.Fatalf("columns: want %v, have %v", want, tab.Columns())
	}
	if want := []int{1, 2}; !reflect.DeepEqual(want, tab.MustColumn("count")) {
		t.Errorf("count: want %v, have %v", want, tab.MustColumn("count"))
	}
	if want := []float64{0.5, 1.5}; !reflect.DeepEqual(want, tab.MustColumn("frac")) {
		t.Errorf("frac: want %v, have %v", want, tab.MustColumn("frac"))
	}
	if want := []string{"alpha", "beta"}; !reflect.DeepEqual(want, tab.MustColumn("name")) {
		t.Errorf("name: want %v, have %v", want, tab.MustColumn("name"))
	}
}

func TestFromCSVErrors(t *testing.T) {
	if _, err := FromCSV(strings.NewReader("")); err == nil {
		t.Errorf("empty input: want error, have nil")
	}
	if _, err := FromCSV(strings.NewReader("a,b\n1\n")); err == nil {
		t.Errorf("ragged rows: want error, have nil")
	}
}

func TestNames(t *testing.T) {
	want := []string{"flights", "fmri", "penguins"}
	if have := Names(); !reflect.DeepEqual(want, have) {
		t.Errorf("want %v, have %v", want, have)
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("titanic")
	if err == nil {
		t.Fatalf("want error, have nil")
	}
	if !strings.Contains(err.Error(), "titanic") {
		t.Errorf("error %q does not name the dataset", err)
	}
}

func TestFlights(t *testing.T) {
	tab := Flights()
	if want := 12 * 12; tab.Len() != want {
		t.Fatalf("want %d rows, have %d", want, tab.Len())
	}
	years := tab.MustColumn("year").([]int)
	passengers := tab.MustColumn("passengers").([]int)
	if years[0] != 1949 || years[len(years)-1] != 1960 {
		t.Errorf("year range: have %d..%d", years[0], years[len(years)-1])
	}
	// The series trends upward: each January beats the last.
	for i := 12; i < len(passengers); i += 12 {
		if passengers[i] <= passengers[i-12] {
			t.Errorf("Jan %d: %d not above Jan %d: %d",
				years[i], passengers[i], years[i-12], passengers[i-12])
		}
	}
}

func TestFMRI(t *testing.T) {
	tab := FMRI()
	if tab.Len() == 0 {
		t.Fatal("empty table")
	}
	for _, col := range []string{"subject", "timepoint", "event", "region", "signal"} {
		if tab.Column(col) == nil {
			t.Errorf("missing column %q", col)
		}
	}
	// Deterministic across calls.
	a := tab.MustColumn("signal").([]float64)
	b := FMRI().MustColumn("signal").([]float64)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("signal differs between calls")
	}
}

func TestPenguins(t *testing.T) {
	tab := Penguins()
	if tab.Len() == 0 {
		t.Fatal("empty table")
	}
	if _, ok := tab.MustColumn("bill_length_mm").([]float64); !ok {
		t.Errorf("bill_length_mm not coerced to []float64")
	}
	if _, ok := tab.MustColumn("body_mass_g").([]int); !ok {
		t.Errorf("body_mass_g not coerced to []int")
	}
	species := tab.MustColumn("species").([]string)
	seen := make(map[string]bool)
	for _, s := range species {
		seen[s] = true
	}
	for _, s := range []string{"Adelie", "Chinstrap", "Gentoo"} {
		if !seen[s] {
			t.Errorf("species %q missing", s)
		}
	}
}
