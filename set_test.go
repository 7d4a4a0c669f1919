package wbplot

import (
	"testing"
)

func TestStringSet(t *testing.T) {
	a := NewStringSet()
	a.Add("cat")
	a.Add("dog")
	a.Add("dog")
	if len(a) != 2 || !a.Contains("cat") || !a.Contains("dog") || a.Contains("emu") {
		t.Errorf("Got a = %v", a)
	}

	b := NewStringSetFrom([]string{"emu", "emu", "fish"})
	if len(b) != 2 || !b.Contains("fish") {
		t.Errorf("Got b = %v", b)
	}
}

func TestStringPool(t *testing.T) {
	sp := NewStringPool()
	for i, s := range []string{"b", "a", "b", "c", "a"} {
		got := sp.Add(s)
		want := []int{0, 1, 0, 2, 1}[i]
		if got != want {
			t.Errorf("Add(%q) = %d, want %d", s, got, want)
		}
	}
	if sp.Len() != 3 {
		t.Errorf("Got len %d, want 3", sp.Len())
	}
	if e := sp.Elements(); e[0] != "b" || e[1] != "a" || e[2] != "c" {
		t.Errorf("Got elements %v", e)
	}
	if sp.Get(7) != "--NA--" || sp.Find("zz") != -1 {
		t.Errorf("Unknown level not reported")
	}
	var nilPool *StringPool
	if nilPool.Len() != 0 || nilPool.Elements() != nil {
		t.Errorf("nil pool not empty")
	}
}
