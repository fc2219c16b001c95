package models

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	util "github.com/5amCurfew/tap-leadbyte/util"
)

var StateMutex sync.RWMutex
var State TapState

// StatePath is the location of the persisted state file
var StatePath = "state.json"

// TapState holds one bookmark per incremental stream, keyed by stream name
type TapState struct {
	Type      string              `json:"type"`
	Bookmarks map[string]Bookmark `json:"bookmarks"`
}

// Bookmark is the persisted high-water mark of a stream's replication key.
// Inclusive records whether rows exactly at the boundary were already
// emitted, so a resumed run neither re-emits nor skips them.
type Bookmark struct {
	ReplicationKeyValue string `json:"replication_key_value"`
	Inclusive           bool   `json:"inclusive"`
	UpdatedAt           string `json:"updated_at"`
}

// Create writes an empty state file
func (s *TapState) Create() error {
	s.Type = "STATE"
	s.Bookmarks = map[string]Bookmark{}

	if err := util.WriteJSON(StatePath, s); err != nil {
		return fmt.Errorf("error creating state file: %w", err)
	}

	return nil
}

// Read loads the state file
func (s *TapState) Read() error {
	stateFile, err := os.ReadFile(StatePath)
	if err != nil {
		return fmt.Errorf("error reading state file: %w", err)
	}

	if err := json.Unmarshal(stateFile, s); err != nil {
		return fmt.Errorf("error unmarshaling state json: %w", err)
	}

	if s.Bookmarks == nil {
		s.Bookmarks = map[string]Bookmark{}
	}

	return nil
}

// Get returns the bookmark for a stream, if one has been persisted
func (s *TapState) Get(stream string) (Bookmark, bool) {
	StateMutex.RLock()
	defer StateMutex.RUnlock()

	bookmark, ok := s.Bookmarks[stream]
	return bookmark, ok
}

// Set advances a stream's bookmark and persists the state file
func (s *TapState) Set(stream string, value string, inclusive bool) error {
	StateMutex.Lock()
	defer StateMutex.Unlock()

	s.Bookmarks[stream] = Bookmark{
		ReplicationKeyValue: value,
		Inclusive:           inclusive,
		UpdatedAt:           time.Now().UTC().Format(time.RFC3339),
	}

	if err := util.WriteJSON(StatePath, s); err != nil {
		return fmt.Errorf("error persisting state file: %w", err)
	}

	return nil
}

// Message emits a STATE message with the stream's current bookmark
func (s *TapState) Message(stream string) error {
	StateMutex.RLock()
	defer StateMutex.RUnlock()

	message := Message{
		Type:   "STATE",
		Stream: stream,
		Value:  map[string]interface{}{"bookmarks": s.Bookmarks},
	}

	return writeMessage(message)
}
