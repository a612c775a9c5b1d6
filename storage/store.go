package storage

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/RIDSdiseno/beck-crm/models"
)

// Store wraps a KV with the per-collection load/save contract. Loaders never
// fail: any storage or shape problem resolves to the demo dataset, logged
// for diagnosis.
type Store struct {
	kv  KV
	log *zap.Logger
}

// NewStore wires a Store. A nil logger is replaced with a no-op one.
func NewStore(kv KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{kv: kv, log: log}
}

// KV exposes the underlying store for collaborators that share it (the
// session manager).
func (s *Store) KV() KV { return s.kv }

// loadCollection decodes the JSON array under key, drops elements that fail
// element-level decode or the shape check, and falls back to the demo
// dataset when nothing usable survives.
func loadCollection[T any](s *Store, key string, valid func(T) bool, fallback func() []T) []T {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("storage read failed, using demo dataset",
			zap.String("key", key), zap.Error(err))
		return fallback()
	}
	if !ok {
		return fallback()
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		s.log.Warn("stored collection is not a JSON array, using demo dataset",
			zap.String("key", key), zap.Error(err))
		return fallback()
	}

	out := make([]T, 0, len(elements))
	dropped := 0
	for _, el := range elements {
		var v T
		if err := json.Unmarshal(el, &v); err != nil || !valid(v) {
			dropped++
			continue
		}
		out = append(out, v)
	}
	if dropped > 0 {
		s.log.Warn("dropped invalid elements from stored collection",
			zap.String("key", key), zap.Int("dropped", dropped))
	}
	if len(out) == 0 {
		s.log.Warn("stored collection empty after validation, using demo dataset",
			zap.String("key", key))
		return fallback()
	}
	return out
}

// saveCollection marshals and overwrites. Fire-and-forget semantics: the
// error is returned for logging but there is no retry or recovery.
func saveCollection[T any](s *Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(key, raw)
}

// LoadSealRecords returns the stored registry or the demo dataset.
func (s *Store) LoadSealRecords(now time.Time) []models.SealRecord {
	return loadCollection(s, KeySealRecords, models.ValidSealRecord,
		func() []models.SealRecord { return DemoSealRecords(now) })
}

// SaveSealRecords overwrites the stored registry.
func (s *Store) SaveSealRecords(records []models.SealRecord) error {
	return saveCollection(s, KeySealRecords, records)
}

// ResetSealRecords removes the stored registry so the next load seeds demo
// data.
func (s *Store) ResetSealRecords() error { return s.kv.Delete(KeySealRecords) }

// LoadQuotations returns the stored proposal book or the demo dataset.
func (s *Store) LoadQuotations(now time.Time) []models.Quotation {
	return loadCollection(s, KeyQuotations, models.ValidQuotation,
		func() []models.Quotation { return DemoQuotations(now) })
}

// SaveQuotations overwrites the stored proposal book.
func (s *Store) SaveQuotations(quotes []models.Quotation) error {
	return saveCollection(s, KeyQuotations, quotes)
}

// ResetQuotations removes the stored proposal book.
func (s *Store) ResetQuotations() error { return s.kv.Delete(KeyQuotations) }

// LoadUsers returns the stored user list or the demo accounts.
func (s *Store) LoadUsers() []models.User {
	return loadCollection(s, KeyUsers, models.ValidUser, DemoUsers)
}

// SaveUsers overwrites the stored user list.
func (s *Store) SaveUsers(users []models.User) error {
	return saveCollection(s, KeyUsers, users)
}

// ResetUsers restores the demo accounts on next load.
func (s *Store) ResetUsers() error { return s.kv.Delete(KeyUsers) }

// LoadFoamJoints returns the stored foam joint log or the demo dataset.
func (s *Store) LoadFoamJoints(now time.Time) []models.FoamJointRecord {
	return loadCollection(s, KeyFoamJoints, models.ValidFoamJoint,
		func() []models.FoamJointRecord { return DemoFoamJoints(now) })
}

// SaveFoamJoints overwrites the stored foam joint log.
func (s *Store) SaveFoamJoints(records []models.FoamJointRecord) error {
	return saveCollection(s, KeyFoamJoints, records)
}

// ResetFoamJoints removes the stored foam joint log.
func (s *Store) ResetFoamJoints() error { return s.kv.Delete(KeyFoamJoints) }

// LoadProjects returns the stored site list or the demo dataset.
func (s *Store) LoadProjects() []models.Project {
	return loadCollection(s, KeyProjects, models.ValidProject, DemoProjects)
}

// SaveProjects overwrites the stored site list.
func (s *Store) SaveProjects(projects []models.Project) error {
	return saveCollection(s, KeyProjects, projects)
}

// ResetProjects removes the stored site list.
func (s *Store) ResetProjects() error { return s.kv.Delete(KeyProjects) }
