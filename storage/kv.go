// Package storage persists each entity collection as a JSON array under its
// own namespaced key in a simple key-value store. Loading validates every
// element and silently falls back to the demo dataset when a collection is
// absent, corrupt or empty after validation; the store is a demo data store
// and recovery is always fail-open.
package storage

import "sync"

// Namespaced collection keys. The _v1 suffix versions the stored shape.
const (
	KeySealRecords = "beck_crm_registros_v1"
	KeyQuotations  = "beck_crm_cotizaciones_v1"
	KeyUsers       = "beck_crm_usuarios_v1"
	KeyProjects    = "beck_crm_obras_v1"
	KeyFoamJoints  = "beck_crm_espuma_v1"
	KeySession     = "beck_crm_session_v1"
)

// KV is the narrow storage interface the loaders and savers are written
// against. Get reports presence explicitly so absent keys are not errors.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Memory is an in-process KV used by tests and as a no-persistence mode.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
