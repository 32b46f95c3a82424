// Package interleave reorders a batch of practice items so that topics
// alternate at a configurable switch rate. Interleaved practice forces
// strategy selection on every item instead of letting the learner settle
// into one topic's groove, which measurably improves long-term retention.
package interleave

import (
	"math/rand/v2"
	"slices"
)

// Mix flattens itemsByTopic into one ordered sequence. At each step the
// mixer switches to a different topic with probability switchRate (and
// always on the first step); otherwise it stays on the current topic
// while it has items. Every input item appears in the output exactly
// once, and a single topic's items keep their original relative order.
//
// The random source is injected so callers can make the ordering
// reproducible.
func Mix[T any](itemsByTopic map[string][]T, switchRate float64, rng *rand.Rand) []T {
	total := 0
	pools := make(map[string][]T, len(itemsByTopic))
	for topic, items := range itemsByTopic {
		if len(items) == 0 {
			continue
		}
		pools[topic] = slices.Clone(items)
		total += len(items)
	}

	out := make([]T, 0, total)
	last := ""

	for len(pools) > 0 {
		available := make([]string, 0, len(pools))
		for topic := range pools {
			available = append(available, topic)
		}
		// Map iteration order is randomized by the runtime; sort so the
		// choice depends only on the injected rng.
		slices.Sort(available)

		var chosen string
		switchNow := last == "" || rng.Float64() < switchRate

		if switchNow && len(available) > 1 {
			candidates := available
			if i := slices.Index(candidates, last); i >= 0 {
				candidates = slices.Delete(slices.Clone(candidates), i, i+1)
			}
			chosen = candidates[rng.IntN(len(candidates))]
		} else if _, ok := pools[last]; ok {
			chosen = last
		} else {
			chosen = available[rng.IntN(len(available))]
		}

		pool := pools[chosen]
		out = append(out, pool[0])
		if len(pool) == 1 {
			delete(pools, chosen)
		} else {
			pools[chosen] = pool[1:]
		}
		last = chosen
	}

	return out
}
