package names

import "testing"

func TestNextIsMonotonicAndUnique(t *testing.T) {
	m := New()
	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		n := m.Next()
		if seen[n] {
			t.Fatalf("Next() returned a repeated value %d", n)
		}
		seen[n] = true
	}
}

func TestIterNamesAreUniqueAcrossCalls(t *testing.T) {
	m := New()
	a := m.Iter()
	b := m.Iter()
	if a == b {
		t.Fatalf("Iter() returned %q twice", a)
	}
	if a[:len(IterPrefix)] != IterPrefix {
		t.Errorf("Iter() = %q, want prefix %q", a, IterPrefix)
	}
}

func TestKeyIsDeterministicPerVarName(t *testing.T) {
	m := New()
	if got, want := m.Key("item"), KeyPrefix+"item"; got != want {
		t.Errorf("Key(item) = %q, want %q", got, want)
	}
	if m.Key("item") != m.Key("item") {
		t.Error("Key should be deterministic for the same variable name")
	}
}

func TestSpreadArgsAndCompPropAreUniqueAndPrefixed(t *testing.T) {
	m := New()
	s1, s2 := m.SpreadArgs(), m.SpreadArgs()
	if s1 == s2 {
		t.Fatal("SpreadArgs() returned the same name twice")
	}
	if len(s1) <= len(SpreadArgsPrefix) || s1[:len(SpreadArgsPrefix)] != SpreadArgsPrefix {
		t.Errorf("SpreadArgs() = %q, want prefix %q", s1, SpreadArgsPrefix)
	}

	c1, c2 := m.CompProp(), m.CompProp()
	if c1 == c2 {
		t.Fatal("CompProp() returned the same name twice")
	}
	if c1[:len(CompPropPrefix)] != CompPropPrefix {
		t.Errorf("CompProp() = %q, want prefix %q", c1, CompPropPrefix)
	}
}

func TestFreshMintersStartAtTheSameCounter(t *testing.T) {
	// Within a single pass run all rewriters share one Minter (spec.md
	// §8's uniqueness invariant); this just pins that two fresh counters
	// both start at the same point rather than carrying hidden state.
	a := New().Iter()
	b := New().Iter()
	if a != b {
		t.Errorf("two fresh Minters produced different first names: %q vs %q", a, b)
	}
}
