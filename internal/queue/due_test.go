package queue

import (
	"testing"
	"time"

	"github.com/rmaia/aprovado/internal/srs"
)

func queueNow() time.Time {
	return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
}

func cardDueAt(t time.Time) srs.Card {
	return srs.Card{EaseFactor: 2.5, NextReview: t}
}

func TestBuildDueBeforeNotDue(t *testing.T) {
	now := queueNow()
	cards := map[string]srs.Card{
		"overdue":  cardDueAt(now.AddDate(0, 0, -3)),
		"due":      cardDueAt(now),
		"tomorrow": cardDueAt(now.AddDate(0, 0, 1)),
		"nextweek": cardDueAt(now.AddDate(0, 0, 7)),
	}
	candidates := []string{"tomorrow", "due", "nextweek", "overdue", "fresh"}

	out := Build(candidates, cards, now)

	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
	duePos := map[string]bool{"overdue": true, "due": true, "fresh": true}
	for i, id := range out[:3] {
		if !duePos[id] {
			t.Errorf("position %d holds %q, expected a due item", i, id)
		}
	}
	// Most overdue first; "due" and "fresh" both have zero overdue so
	// they keep input order.
	if out[0] != "overdue" {
		t.Errorf("out[0] = %q, want overdue", out[0])
	}
	if out[1] != "due" || out[2] != "fresh" {
		t.Errorf("zero-overdue order = %v, want [due fresh]", out[1:3])
	}
	// Not-due partition preserves input order.
	if out[3] != "tomorrow" || out[4] != "nextweek" {
		t.Errorf("not-due order = %v, want [tomorrow nextweek]", out[3:])
	}
}

func TestBuildNoCardIsImmediatelyDue(t *testing.T) {
	out := Build([]string{"a", "b"}, map[string]srs.Card{}, queueNow())
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("out = %v, want [a b]", out)
	}
}

func TestSplitPartitions(t *testing.T) {
	now := queueNow()
	cards := map[string]srs.Card{
		"x": cardDueAt(now.AddDate(0, 0, 2)),
		"y": cardDueAt(now.AddDate(0, 0, -1)),
	}

	p := Split([]string{"x", "y"}, cards, now)
	if len(p.Due) != 1 || p.Due[0] != "y" {
		t.Errorf("Due = %v, want [y]", p.Due)
	}
	if len(p.NotDue) != 1 || p.NotDue[0] != "x" {
		t.Errorf("NotDue = %v, want [x]", p.NotDue)
	}
}
