// Package queue orders practice items for a session: due-first review
// queues and hypercorrection-ordered post-diagnostic review.
package queue

import (
	"sort"
	"time"

	"github.com/rmaia/aprovado/internal/srs"
)

// Partition splits candidates into the due and not-due groups produced
// by Build. Both slices hold item IDs.
type Partition struct {
	Due    []string
	NotDue []string
}

// Build partitions candidate items against their review cards at `now`
// and returns due items first. An item with no card yet is immediately
// due the first time it is offered. Within the due group items are
// ordered by descending overdue amount; ties and the not-due group keep
// the original candidate order.
func Build(candidates []string, cards map[string]srs.Card, now time.Time) []string {
	p := Split(candidates, cards, now)
	return append(p.Due, p.NotDue...)
}

// Split is Build without the final concatenation, for callers that want
// the two groups separately.
func Split(candidates []string, cards map[string]srs.Card, now time.Time) Partition {
	type dueItem struct {
		id      string
		overdue time.Duration
	}

	var due []dueItem
	var notDue []string

	for _, id := range candidates {
		card, ok := cards[id]
		if !ok {
			// Never answered: due right away, with zero overdue.
			due = append(due, dueItem{id: id})
			continue
		}
		if card.IsDue(now) {
			due = append(due, dueItem{id: id, overdue: card.Overdue(now)})
		} else {
			notDue = append(notDue, id)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].overdue > due[j].overdue
	})

	p := Partition{NotDue: notDue}
	for _, d := range due {
		p.Due = append(p.Due, d.id)
	}
	return p
}
