package game

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// ScoreStore persists the best score as a small JSON file. A missing or
// unreadable file reads as 0; write failures are logged and otherwise
// ignored — losing a high score is not worth crashing the game over.
// A nil store is valid and does nothing (headless runs, tests).
type ScoreStore struct {
	path string
}

type scoreFile struct {
	Best int `json:"best"`
}

func NewScoreStore(path string) *ScoreStore {
	return &ScoreStore{path: path}
}

// Load reads the stored best score, defaulting to 0 if absent or malformed.
func (ss *ScoreStore) Load() int {
	if ss == nil {
		return 0
	}
	data, err := os.ReadFile(ss.path)
	if err != nil {
		return 0
	}
	var sf scoreFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return 0
	}
	if sf.Best < 0 {
		return 0
	}
	return sf.Best
}

// Save writes the best score out.
func (ss *ScoreStore) Save(best int) {
	if ss == nil {
		return
	}
	data, err := json.Marshal(scoreFile{Best: best})
	if err != nil {
		return
	}
	if dir := filepath.Dir(ss.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("could not save high score: %v", err)
			return
		}
	}
	if err := os.WriteFile(ss.path, data, 0o644); err != nil {
		log.Printf("could not save high score: %v", err)
	}
}
