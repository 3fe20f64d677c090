package scenes

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const recordsKey = "records"

// SavedRecords is the data stored on disk between runs.
type SavedRecords struct {
	BestKills int `json:"bestKills"`
}

// Records keeps the best kill count. Without storage it still tracks the
// best of the current session.
type Records struct {
	manager *gdata.Manager
	saved   SavedRecords
	log     *zap.Logger
}

// OpenRecords opens the per-user data directory for appName and loads any
// saved records. Storage problems are logged and leave an in-memory store.
func OpenRecords(appName string, log *zap.Logger) *Records {
	r := &Records{log: log.Named("records")}

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		r.log.Warn("could not initialize persistence", zap.Error(err))
		return r
	}
	r.manager = m

	if err := r.load(); err != nil {
		r.log.Warn("could not load records", zap.Error(err))
	}
	return r
}

func (r *Records) load() error {
	data, err := r.manager.LoadItem(recordsKey)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, &r.saved); err != nil {
		return fmt.Errorf("parse records: %w", err)
	}
	return nil
}

func (r *Records) BestKills() int {
	if r == nil {
		return 0
	}
	return r.saved.BestKills
}

// Submit records a finished run and reports whether it set a new best.
func (r *Records) Submit(kills int) bool {
	if r == nil || kills <= r.saved.BestKills {
		return false
	}
	r.saved.BestKills = kills
	if r.manager == nil {
		return true
	}

	data, err := json.Marshal(r.saved)
	if err != nil {
		r.log.Warn("could not serialize records", zap.Error(err))
		return true
	}
	if err := r.manager.SaveItem(recordsKey, data); err != nil {
		r.log.Warn("could not save records", zap.Error(err))
	}
	return true
}
