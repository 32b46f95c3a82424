package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/aprovado/internal/elo"
	"github.com/rmaia/aprovado/internal/planner"
	"github.com/rmaia/aprovado/internal/predict"
	"github.com/rmaia/aprovado/internal/session"
	"github.com/rmaia/aprovado/internal/srs"
)

func (s *Server) health(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok"})
}

type queueItem struct {
	ID      string  `json:"id" binding:"required"`
	Subject string  `json:"subject"`
	Topic   string  `json:"topic"`
	Rating  float64 `json:"rating"`
}

type queueRequest struct {
	Items      []queueItem `json:"items" binding:"required"`
	Limit      int         `json:"limit"`
	SwitchRate *float64    `json:"switch_rate"`
}

func (s *Server) buildQueue(c *gin.Context) {
	var req queueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	switchRate := session.DefaultSwitchRate
	if req.SwitchRate != nil {
		switchRate = *req.SwitchRate
	}

	candidates := make([]session.ReviewItem, 0, len(req.Items))
	for _, it := range req.Items {
		candidates = append(candidates, session.ReviewItem{
			ID:      it.ID,
			Subject: it.Subject,
			Topic:   it.Topic,
			Rating:  it.Rating,
		})
	}

	batch := s.svc.BuildBatch(candidates, req.Limit, switchRate)
	respondOK(c, gin.H{"batch": batch, "count": len(batch)})
}

type answerRequest struct {
	ItemID     string  `json:"item_id" binding:"required"`
	Subject    string  `json:"subject"`
	Topic      string  `json:"topic"`
	Correct    bool    `json:"correct"`
	Effort     string  `json:"effort"`
	Grade      *int    `json:"grade"`
	Difficulty string  `json:"difficulty"`
	ItemRating float64 `json:"item_rating"`
}

func (s *Server) recordAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	rating := req.ItemRating
	if rating == 0 {
		rating = elo.SeedRating(elo.Difficulty(req.Difficulty))
	}

	ans := session.Answer{
		ItemID:     req.ItemID,
		Subject:    req.Subject,
		Topic:      req.Topic,
		Correct:    req.Correct,
		Effort:     srs.Effort(req.Effort),
		ItemRating: rating,
	}
	if req.Grade != nil {
		grade := srs.Quality(*req.Grade)
		ans.Grade = &grade
	}

	res, err := s.svc.RecordAnswer(c.Request.Context(), ans)
	if err != nil {
		if errors.Is(err, srs.ErrInvalidQuality) || errors.Is(err, session.ErrMissingItem) {
			respondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "storage", err)
		return
	}

	if err := s.persist(c.Request.Context()); err != nil {
		respondError(c, http.StatusInternalServerError, "storage", err)
		return
	}

	respondOK(c, gin.H{
		"card":    res.Card,
		"quality": int(res.Quality),
		"overall": gin.H{
			"value":   res.Overall.Value,
			"matches": res.Overall.Matches,
			"band":    res.Overall.Band(),
		},
		"subject_rating": res.Subject,
	})
}

func (s *Server) schedule(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		date = parsed
	}

	state := s.svc.State()
	sched, err := planner.Generate(state.PlanSubjects(), state.Config, date, state.SubjectRatings())
	if err != nil {
		if errors.Is(err, planner.ErrNoSubjects) {
			respondError(c, http.StatusBadRequest, "no_subjects", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "planner", err)
		return
	}
	respondOK(c, sched)
}

func (s *Server) suggest(c *gin.Context) {
	sub, err := s.svc.SuggestNext(c.Request.Context())
	if err != nil {
		if errors.Is(err, planner.ErrNoSubjects) {
			respondError(c, http.StatusBadRequest, "no_subjects", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "planner", err)
		return
	}
	respondOK(c, sub)
}

func (s *Server) predict(c *gin.Context) {
	snap, err := s.svc.Predict(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "predict", err)
		return
	}
	respondOK(c, gin.H{
		"prediction": snap,
		"summary":    predict.Summary(snap),
		"insights":   predict.Insights(snap),
	})
}

func (s *Server) stats(c *gin.Context) {
	days := 7
	if d := c.Query("days"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "invalid_request", errors.New("days must be a positive integer"))
			return
		}
		days = n
	}

	state := s.svc.State()
	split := s.svc.DueSplit()
	payload := gin.H{
		"deck":     s.svc.Stats(),
		"forecast": s.svc.Forecast(days),
		"queue": gin.H{
			"due":     split.Due,
			"not_due": split.NotDue,
		},
		"overall": gin.H{
			"value":   state.Overall.Value,
			"matches": state.Overall.Matches,
			"band":    state.Overall.Band(),
		},
	}
	if state.Exam.Date != "" {
		if cd, err := planner.ExamCountdown(state.Exam.Date, time.Now()); err == nil {
			payload["countdown"] = cd
		}
	}
	respondOK(c, payload)
}

func (s *Server) progress(c *gin.Context) {
	minutes := 0
	if m := c.Query("studied_minutes"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "invalid_request", errors.New("studied_minutes must be a non-negative integer"))
			return
		}
		minutes = n
	}
	respondOK(c, planner.Progress(s.svc.State().Config, minutes))
}
