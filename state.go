package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"rangeseek/seekbar"
)

const (
	StateFile    = "rangeseek_state.json"
	stateVersion = 1
)

type persistState struct {
	Version   int                      `json:"version"`
	SavedAt   time.Time                `json:"saved_at"`
	TrimSteps bool                     `json:"trim_steps,omitempty"`
	Thumb     string                   `json:"thumb,omitempty"`
	Bars      map[string]seekbar.State `json:"bars"`
}

// stateStore keeps bar selections between runs in a JSON file.
type stateStore struct {
	path string
}

func newStateStore(path string) *stateStore {
	if path == "" {
		path = StateFile
	}
	return &stateStore{path: path}
}

// load returns the saved state. A missing file yields an empty state and no
// error.
func (s *stateStore) load() (persistState, error) {
	st := persistState{Version: stateVersion, Bars: map[string]seekbar.State{}}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("read state: %w", err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return persistState{Version: stateVersion, Bars: map[string]seekbar.State{}}, fmt.Errorf("parse state %s: %w", s.path, err)
	}
	if st.Version != stateVersion {
		return persistState{Version: stateVersion, Bars: map[string]seekbar.State{}}, fmt.Errorf("state %s: unsupported version %d", s.path, st.Version)
	}
	if st.Bars == nil {
		st.Bars = map[string]seekbar.State{}
	}
	return st, nil
}

// save writes the state through a temporary file so a crash mid write keeps
// the previous copy.
func (s *stateStore) save(st persistState) error {
	st.Version = stateVersion
	st.SavedAt = time.Now().UTC()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
