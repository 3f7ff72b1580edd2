// Copyright 2024 The statplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisgrid

import (
	"io"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

func pairData() *table.Table {
	return new(table.Builder).
		Add("a", []float64{1, 2, 3, 4}).
		Add("b", []float64{4, 3, 2, 1}).
		Add("c", []int{1, 1, 2, 2}).
		Add("kind", []string{"u", "u", "v", "v"}).
		Done()
}

func TestNumericColumns(t *testing.T) {
	want := []string{"a", "b", "c"}
	if have := numericColumns(pairData(), ""); !reflect.DeepEqual(want, have) {
		t.Errorf("want %v, have %v", want, have)
	}
	want = []string{"a", "c"}
	if have := numericColumns(pairData(), "b"); !reflect.DeepEqual(want, have) {
		t.Errorf("skipping b: want %v, have %v", want, have)
	}
}

func TestPairLongShape(t *testing.T) {
	long := PairData(pairData(), []string{"a", "b"}, []string{"a", "b", "c"})
	tab := long.Table(long.Tables()[0])

	// 4 rows times a 2x3 pair matrix.
	if want := 4 * 2 * 3; tab.Len() != want {
		t.Fatalf("want %d rows, have %d", want, tab.Len())
	}
	for _, col := range []string{XVar, XVal, YVar, YVal, "kind"} {
		if tab.Column(col) == nil {
			t.Errorf("missing column %q", col)
		}
	}
	// Paired columns are consumed by the melt.
	if tab.Column("a") != nil {
		t.Errorf("column \"a\" not melted")
	}

	// The first block pairs the first variables; its values are the
	// original columns.
	xv := tab.MustColumn(XVal).([]float64)[:4]
	if want := []float64{1, 2, 3, 4}; !reflect.DeepEqual(want, xv) {
		t.Errorf("first block x values: want %v, have %v", want, xv)
	}
	// Carried columns repeat per block.
	kind := tab.MustColumn("kind").([]string)
	if kind[0] != "u" || kind[4] != "u" || kind[3] != "v" {
		t.Errorf("carried column misaligned: %v", kind[:8])
	}
}

func TestVarEncoding(t *testing.T) {
	v := varValue(3, "body mass")
	if want := "03 body mass"; v != want {
		t.Errorf("varValue: want %q, have %q", want, v)
	}
	if have := varIndex(v); have != 3 {
		t.Errorf("varIndex: want 3, have %d", have)
	}
	if have := varName(v); have != "body mass" {
		t.Errorf("varName: want %q, have %q", "body mass", have)
	}
	if have := VarLabel(interface{}(v)); have != "body mass" {
		t.Errorf("VarLabel: want %q, have %q", "body mass", have)
	}
}

func TestPairGridShape(t *testing.T) {
	g, err := NewPairGrid(pairData(), PairOptions{Hue: "kind"})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Errorf("want 3x3 grid, have %dx%d", g.Rows(), g.Cols())
	}
}

func TestPairGridVarsChecked(t *testing.T) {
	if _, err := NewPairGrid(pairData(), PairOptions{Vars: []string{"a", "nope"}}); err == nil {
		t.Errorf("unknown variable: want error, have nil")
	}
	if _, err := NewPairGrid(new(table.Builder).Add("s", []string{"x"}).Done(), PairOptions{}); err == nil {
		t.Errorf("no numeric columns: want error, have nil")
	}
}

func TestPairGridRender(t *testing.T) {
	g, err := NewPairGrid(pairData(), PairOptions{
		Vars: []string{"a", "b"},
		Hue:  "kind",
	})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	g.Scatter().DiagDensity().SetTitle("pairs")
	if err := g.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering: %s", err)
	}
}

func TestPairGridCornerRender(t *testing.T) {
	g, err := NewPairGrid(pairData(), PairOptions{
		Vars:   []string{"a", "b", "c"},
		Hue:    "kind",
		Corner: true,
	})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	g.Scatter().DiagDensity().SetAxisLabels("measure", "measure")
	if err := g.WriteSVG(io.Discard); err != nil {
		t.Fatalf("rendering: %s", err)
	}
}

func TestKeepConstCols(t *testing.T) {
	tab := new(table.Builder).
		Add("v", []float64{1, 2, 3, 4}).
		Add("g", []string{"p", "p", "q", "q"}).
		Done()
	grouped := table.GroupBy(tab, "g")
	// Emptying one group mimics the panel region filters.
	filtered := table.Filter(grouped, func(g string) bool { return g == "p" }, "g")

	out := keepConstCols{
		ggstat.Density{X: "v", Domain: ggstat.DomainData{SplitGroups: true}},
		[]string{"g"},
	}.F(filtered)

	if len(out.Tables()) != 2 {
		t.Fatalf("want 2 groups, have %d", len(out.Tables()))
	}
	var first []string
	for i, gid := range out.Tables() {
		ot := out.Table(gid)
		if ot.Column("g") == nil {
			t.Errorf("group %v: column \"g\" dropped", gid)
		}
		if i == 0 {
			first = ot.Columns()
		} else if !reflect.DeepEqual(first, ot.Columns()) {
			t.Errorf("group columns differ: %v, %v", first, ot.Columns())
		}
	}
}

func TestRescaleInto(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{10, 20, 30}).
		Add("d", []float64{0, 2, 1}).
		Done()
	g := rescaleInto{"x", "d", "out"}.F(tab)
	out := g.Table(g.Tables()[0]).MustColumn("out").([]float64)
	// The maximum density lands at the top of x's span and zero at
	// the bottom.
	if want := []float64{10, 30, 20}; !reflect.DeepEqual(want, out) {
		t.Errorf("want %v, have %v", want, out)
	}
}
