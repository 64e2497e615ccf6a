package game

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the tunables the game reads from the environment. Every field
// has a sensible default so the binary runs with no configuration at all.
type Config struct {
	Scale        float64 // window scale over the logical resolution
	RoundSeconds int
	MaxAmmo      int
	SpawnStartMs int
	ScoreFile    string
}

// LoadConfig reads AIMRANGE_* environment variables, falling back to defaults.
func LoadConfig() Config {
	return Config{
		Scale:        getEnvFloat("AIMRANGE_SCALE", 1.5),
		RoundSeconds: getEnvInt("AIMRANGE_ROUND_SECONDS", 60),
		MaxAmmo:      getEnvInt("AIMRANGE_MAX_AMMO", 10),
		SpawnStartMs: getEnvInt("AIMRANGE_SPAWN_MS", 1000),
		ScoreFile:    getEnv("AIMRANGE_SCORE_FILE", defaultScoreFile()),
	}
}

// defaultScoreFile places the high score under the user config dir, falling
// back to the working directory when no config dir is resolvable.
func defaultScoreFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "highscore.json"
	}
	return filepath.Join(dir, "aimrange", "highscore.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
