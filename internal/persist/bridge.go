// Package persist serializes the full topic collection to a single
// key-value blob and re-hydrates it at startup.
package persist

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/studykeep/studykeep/internal/kv"
	"github.com/studykeep/studykeep/internal/model"
)

// SnapshotKey is the fixed key the whole topic collection is stored
// under. There is no schema versioning; fields absent on read take
// their zero defaults.
const SnapshotKey = "study_topics"

// Bridge persists whole snapshots through a kv.Store.
type Bridge struct {
	store kv.Store
	log   zerolog.Logger
}

func NewBridge(store kv.Store, log zerolog.Logger) *Bridge {
	return &Bridge{store: store, log: log}
}

// Load returns the stored topic collection. An absent key or a blob
// that fails to parse yields an empty collection; a parse failure must
// never take the application down.
func (b *Bridge) Load(ctx context.Context) []model.Topic {
	raw, ok, err := b.store.Get(ctx, SnapshotKey)
	if err != nil {
		b.log.Error().Err(err).Msg("snapshot read failed, starting empty")
		return nil
	}
	if !ok {
		return nil
	}
	var topics []model.Topic
	if err := json.Unmarshal([]byte(raw), &topics); err != nil {
		b.log.Warn().Err(err).Msg("snapshot unparseable, starting empty")
		return nil
	}
	return topics
}

// Save overwrites the stored snapshot with the full collection.
func (b *Bridge) Save(ctx context.Context, topics []model.Topic) error {
	if topics == nil {
		topics = []model.Topic{}
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		return err
	}
	return b.store.Set(ctx, SnapshotKey, string(raw))
}
