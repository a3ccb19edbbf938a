package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Roster caches loaded character specs by name.
type Roster struct {
	mu     sync.RWMutex
	logger *zap.Logger
	specs  map[string]*CharacterSpec
}

func NewRoster(logger *zap.Logger) *Roster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roster{
		logger: logger,
		specs:  make(map[string]*CharacterSpec),
	}
}

// Get returns the cached spec, loading it on first use.
func (r *Roster) Get(name string) (*CharacterSpec, error) {
	key := characterKey(name)

	r.mu.RLock()
	spec, ok := r.specs[key]
	r.mu.RUnlock()
	if ok {
		return spec, nil
	}

	spec, err := LoadCharacterSpec(key)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.specs[key] = spec
	r.mu.Unlock()

	r.logger.Info("character loaded", zap.String("name", spec.Name))
	return spec, nil
}

// ReloadFile re-reads a changed spec file from disk and replaces the
// cached copy.
func (r *Roster) ReloadFile(path string) (*CharacterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: reload %s: %w", path, err)
	}

	key := characterKey(filepath.Base(path))
	spec, err := parseCharacterSpec(key, data)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.specs[key] = spec
	r.mu.Unlock()

	r.logger.Info("character reloaded", zap.String("name", spec.Name), zap.String("path", path))
	return spec, nil
}

func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.specs)
}

func characterKey(name string) string {
	clean := cleanPrefabPath(name)
	return strings.TrimSuffix(clean, filepath.Ext(clean))
}
