// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides the bundled sample datasets used throughout
// the statplot documentation, plus helpers for loading CSV data into
// go-gg tables.
//
// The bundled datasets mirror the shape of the classic teaching
// datasets: a monthly airline passenger series ("flights"), an
// event-related signal timecourse panel ("fmri"), and penguin
// morphological measurements ("penguins"). They are small, fully
// deterministic, and intended for examples and tests rather than
// analysis.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"
)

// FromCSV reads CSV data with a header row into a table. Columns whose
// values all parse as integers or floats are coerced to []int or
// []float64; all other columns are left as []string.
func FromCSV(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty CSV input")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// Open reads the CSV file at path into a table.
func Open(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := FromCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

var samples = map[string]func() *table.Table{
	"flights":  Flights,
	"fmri":     FMRI,
	"penguins": Penguins,
}

// Names returns the names of the bundled sample datasets in sorted
// order.
func Names() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the bundled sample dataset with the given name.
func Load(name string) (*table.Table, error) {
	f, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return f(), nil
}
