package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPrediction(ctx context.Context, data PredictionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PredictionEvent.Create().
		SetSequence(seqNum).
		SetPredictedScore(data.PredictedScore).
		SetApprovalProbability(data.ApprovalProbability).
		SetPredictionConfidence(data.PredictionConfidence)

	if len(data.Data) > 0 {
		builder = builder.SetData(data.Data)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save prediction event: %w", err)
	}
	return nil
}
