package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rmaia/aprovado/ent"
	"github.com/rmaia/aprovado/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo on the ent client. Snapshots are
// ordered by the event sequence they cover, not wall-clock time.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	state, err := encodeState(snap.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot state: %w", err)
	}
	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(state).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest returns the snapshot covering the most events, or nil when the
// store has never been snapshotted.
func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return decodeSnapshot(row)
}

// Prune deletes all but the keep most recent snapshots.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	cutoff, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query prune cutoff: %w", err)
	}
	if len(cutoff) == 0 {
		return nil
	}
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(cutoff[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// encodeState round-trips SnapshotData through JSON into the map form the
// ent JSON column stores.
func encodeState(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSnapshot(row *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("read snapshot state: %w", err)
	}
	var data SnapshotData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode snapshot state: %w", err)
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}
