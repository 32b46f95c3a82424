package interleave

import (
	"math/rand/v2"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestMixConservesItems(t *testing.T) {
	input := map[string][]string{
		"portuguese": {"p1", "p2", "p3"},
		"math":       {"m1", "m2"},
		"law":        {"l1", "l2", "l3", "l4"},
	}

	out := Mix(input, 0.7, testRNG())

	if len(out) != 9 {
		t.Fatalf("len = %d, want 9", len(out))
	}
	seen := make(map[string]int)
	for _, id := range out {
		seen[id]++
	}
	for _, items := range input {
		for _, id := range items {
			if seen[id] != 1 {
				t.Errorf("item %q appears %d times, want 1", id, seen[id])
			}
		}
	}
}

func TestMixSingleTopicPreservesOrder(t *testing.T) {
	input := map[string][]int{"math": {1, 2, 3, 4, 5}}

	out := Mix(input, 0.9, testRNG())

	want := []int{1, 2, 3, 4, 5}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestMixPreservesPerTopicOrder(t *testing.T) {
	input := map[string][]string{
		"a": {"a1", "a2", "a3"},
		"b": {"b1", "b2", "b3"},
	}

	out := Mix(input, 0.5, testRNG())

	pos := make(map[string]int)
	for i, id := range out {
		pos[id] = i
	}
	for _, items := range input {
		for i := 1; i < len(items); i++ {
			if pos[items[i-1]] > pos[items[i]] {
				t.Errorf("%q emitted after %q", items[i-1], items[i])
			}
		}
	}
}

func TestMixSwitchRateOneAlwaysAlternates(t *testing.T) {
	input := map[string][]string{
		"a": {"a1", "a2", "a3"},
		"b": {"b1", "b2", "b3"},
	}

	out := Mix(input, 1.0, testRNG())

	// With two equal pools and forced switching, no two adjacent items
	// share a topic until one pool runs dry (which here never happens
	// before the end).
	for i := 1; i < len(out); i++ {
		if out[i][0] == out[i-1][0] {
			t.Errorf("adjacent items %q, %q share a topic", out[i-1], out[i])
		}
	}
}

func TestMixSwitchRateZeroBlocksTopics(t *testing.T) {
	input := map[string][]string{
		"a": {"a1", "a2", "a3"},
		"b": {"b1", "b2"},
	}

	out := Mix(input, 0.0, testRNG())

	// Topics are exhausted one at a time: exactly one boundary where the
	// topic changes.
	switches := 0
	for i := 1; i < len(out); i++ {
		if out[i][0] != out[i-1][0] {
			switches++
		}
	}
	if switches != 1 {
		t.Errorf("topic switches = %d, want 1 (order: %v)", switches, out)
	}
}

func TestMixEmptyInput(t *testing.T) {
	out := Mix(map[string][]string{}, 0.7, testRNG())
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}

	out = Mix(map[string][]string{"a": {}}, 0.7, testRNG())
	if len(out) != 0 {
		t.Errorf("len with empty pool = %d, want 0", len(out))
	}
}
