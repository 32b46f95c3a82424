package syllabus

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlan = `{
  "exam": {
    "name": "TRF 3a Regiao - Analista",
    "date": "2026-06-10",
    "cutoff_score": 60,
    "total_questions": 120
  },
  "subjects": [
    {"id": "portugues", "name": "Portugues", "weight": 3, "topics": ["crase", "concordancia"]},
    {"id": "dir-admin", "name": "Direito Administrativo", "weight": 5}
  ],
  "scheduler": {
    "daily_available_hours": 3.5,
    "rest_days": [0, 6],
    "preferred_start_time": "07:00",
    "block_duration_minutes": 45,
    "break_duration_minutes": 15
  }
}`

func TestParseValidPlan(t *testing.T) {
	plan, err := Parse([]byte(validPlan))
	require.NoError(t, err)

	assert.Equal(t, "TRF 3a Regiao - Analista", plan.Exam.Name)
	assert.Equal(t, 60, plan.Exam.CutoffScore)
	assert.Equal(t, 120, plan.Exam.TotalQuestions)
	require.Len(t, plan.Subjects, 2)
	assert.Equal(t, []string{"crase", "concordancia"}, plan.Subjects[0].Topics)
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing exam", `{"subjects": [{"id": "a", "name": "A", "weight": 1}]}`},
		{"empty subjects", `{"exam": {"name": "X", "date": "2026-06-10"}, "subjects": []}`},
		{"bad date format", `{"exam": {"name": "X", "date": "10/06/2026"}, "subjects": [{"id": "a", "name": "A", "weight": 1}]}`},
		{"impossible date", `{"exam": {"name": "X", "date": "2026-13-40"}, "subjects": [{"id": "a", "name": "A", "weight": 1}]}`},
		{"zero weight", `{"exam": {"name": "X", "date": "2026-06-10"}, "subjects": [{"id": "a", "name": "A", "weight": 0}]}`},
		{"duplicate subject", `{"exam": {"name": "X", "date": "2026-06-10"}, "subjects": [{"id": "a", "name": "A", "weight": 1}, {"id": "a", "name": "B", "weight": 2}]}`},
		{"bad rest day", `{"exam": {"name": "X", "date": "2026-06-10"}, "subjects": [{"id": "a", "name": "A", "weight": 1}], "scheduler": {"rest_days": [7]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.ErrorIs(t, err, ErrInvalidPlan)
		})
	}
}

func TestToSubjects(t *testing.T) {
	plan, err := Parse([]byte(validPlan))
	require.NoError(t, err)

	subjects := plan.ToSubjects()
	require.Len(t, subjects, 2)
	assert.Equal(t, "dir-admin", subjects[1].ID)
	assert.Equal(t, 5, subjects[1].Weight)
	assert.Zero(t, subjects[0].TotalMinutes)
}

func TestToConfigMergesOverrides(t *testing.T) {
	plan, err := Parse([]byte(validPlan))
	require.NoError(t, err)

	cfg := plan.ToConfig()
	assert.Equal(t, 3.5, cfg.DailyAvailableHours)
	assert.Equal(t, "2026-06-10", cfg.ExamDate)
	assert.Equal(t, "07:00", cfg.PreferredStartTime)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, cfg.RestDays)
	assert.Equal(t, 45, cfg.BlockDurationMinutes)
	assert.Equal(t, 15, cfg.BreakDurationMinutes)
}

func TestToConfigDefaultsWithoutScheduler(t *testing.T) {
	raw := `{"exam": {"name": "X", "date": "2026-06-10"}, "subjects": [{"id": "a", "name": "A", "weight": 1}]}`
	plan, err := Parse([]byte(raw))
	require.NoError(t, err)

	cfg := plan.ToConfig()
	assert.Equal(t, 50, cfg.BlockDurationMinutes)
	assert.Equal(t, 10, cfg.BreakDurationMinutes)
	assert.Equal(t, "2026-06-10", cfg.ExamDate)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(validPlan), 0o644))

	plan, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-06-10", plan.Exam.Date)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
