// control/store.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe dynamic configuration store with reload propagation.

package control

import (
	"maps"
	"sync"

	"go.uber.org/zap"

	"github.com/momentics/hioload-mem/internal/logutil"
)

// ConfigStore is a dynamic key/value map with snapshot reads and reload hooks.
type ConfigStore struct {
	mu     sync.RWMutex
	config map[string]any
	hooks  ReloadHooks
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: make(map[string]any),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return maps.Clone(cs.config)
}

// Get returns one value.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.config[key]
	return v, ok
}

// SetConfig merges new values, then runs reload hooks outside the lock so
// hooks may read the store.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	cs.mu.Unlock()

	logutil.Named("control").Debug("config updated", zap.Int("keys", len(newCfg)))
	cs.hooks.Trigger()
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.hooks.Register(fn)
}
