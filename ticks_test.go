package wbplot

import (
	"math"
	"testing"
)

func TestTidyTicker(t *testing.T) {
	ranges := [][2]float64{
		{0, 1}, {0, 10}, {0, 72.85}, {0, 50.4}, {-3.35, 4.35},
		{1995, 2025}, {-1e6, 3e6}, {12, 13}, {0, 99999},
	}
	for _, r := range ranges {
		ticks := TidyTicker{Max: 5}.Ticks(r[0], r[1])
		if len(ticks) < 1 || len(ticks) > 5 {
			t.Errorf("[%g,%g]: got %d ticks", r[0], r[1], len(ticks))
			continue
		}
		for i, tk := range ticks {
			if tk.Value < r[0]-1e-9 || tk.Value > r[1]+1e-9 {
				t.Errorf("[%g,%g]: tick %g outside range", r[0], r[1], tk.Value)
			}
			if i > 0 && tk.Value <= ticks[i-1].Value {
				t.Errorf("[%g,%g]: ticks not increasing: %v", r[0], r[1], ticks)
			}
			if tk.IsMinor() {
				t.Errorf("[%g,%g]: unlabelled tick %g", r[0], r[1], tk.Value)
			}
		}
	}
}

func TestTidyTickerSteps(t *testing.T) {
	ticks := TidyTicker{Max: 5}.Ticks(0, 72.85)
	want := []float64{0, 20, 40, 60}
	if len(ticks) != len(want) {
		t.Fatalf("Got %v, want %v", ticks, want)
	}
	for i, w := range want {
		if ticks[i].Value != w {
			t.Errorf("Tick %d: got %g, want %g", i, ticks[i].Value, w)
		}
	}

	if got := (TidyTicker{}).Ticks(3, 3); len(got) != 1 || got[0].Label != "3" {
		t.Errorf("Degenerate range: got %v", got)
	}
	if got := (TidyTicker{}).Ticks(4, 3); got != nil {
		t.Errorf("Inverted range: got %v", got)
	}
}

func TestTidyTickerSmallRanges(t *testing.T) {
	ranges := [][2]float64{
		{0, 1}, {0, 1.5}, {-0.05, 0.945}, {0, 3}, {0, 10}, {0.4, 2.7},
	}
	for _, r := range ranges {
		ticks := TidyTicker{Max: 5}.Ticks(r[0], r[1])
		if len(ticks) == 0 {
			t.Errorf("[%g,%g]: no ticks", r[0], r[1])
			continue
		}
		seen := make(map[string]bool)
		for _, tk := range ticks {
			if tk.Value != math.Trunc(tk.Value) {
				t.Errorf("[%g,%g]: tick at %g", r[0], r[1], tk.Value)
			}
			if want := roundedLabel(tk.Value); tk.Label != want {
				t.Errorf("[%g,%g]: got label %q at %g, want %q", r[0], r[1], tk.Label, tk.Value, want)
			}
			if seen[tk.Label] {
				t.Errorf("[%g,%g]: repeated label %q in %v", r[0], r[1], tk.Label, ticks)
			}
			seen[tk.Label] = true
		}
	}

	for _, r := range [][2]float64{{0.001, 0.0072}, {0.2, 0.8}, {0.5, 0.5}} {
		if got := (TidyTicker{Max: 5}).Ticks(r[0], r[1]); got != nil {
			t.Errorf("[%g,%g]: got %v, want no ticks", r[0], r[1], got)
		}
	}
}

func TestTidyLabel(t *testing.T) {
	for v, want := range map[float64]string{
		1234: "1234", 0: "0", 2.6: "3", -2.5: "-2.5", -10: "-10", 1e7: "10000000",
	} {
		if got := TidyLabel(v); got != want {
			t.Errorf("TidyLabel(%g) = %q, want %q", v, got, want)
		}
	}
}

func TestTidyTicks(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.Plot([]float64{-10, -2}, []float64{0, 1234}, nil)
	TidyTicks(p)
	if p.X.Ticker != nil {
		t.Errorf("All negative axis got a tidy ticker")
	}
	if _, ok := p.Y.Ticker.(TidyTicker); !ok {
		t.Fatalf("Y axis has ticker %T", p.Y.Ticker)
	}
	first := p.Y.Ticks()
	if len(first) > 5 {
		t.Errorf("Got %d ticks", len(first))
	}
	TidyTicks(p)
	second := p.Y.Ticks()
	if len(first) != len(second) {
		t.Fatalf("Ticks changed: %v, %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Tick %d changed: %v, %v", i, first[i], second[i])
		}
	}

	p = NewPanel(DefaultTheme())
	p.Plot([]float64{1, 2}, []float64{0.3, 0.6}, nil)
	p.Y.SetRange(0.2, 0.8)
	TidyTicks(p)
	if p.Y.Ticker != nil {
		t.Errorf("Range without integers got a tidy ticker")
	}

	p = NewPanel(DefaultTheme())
	p.Bar([]string{"a", "b"}, []float64{1, 2}, nil)
	TidyTicks(p)
	if p.X.Ticker != nil {
		t.Errorf("Categorical axis got a tidy ticker")
	}
}
