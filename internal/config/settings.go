package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Settings — параметры запуска. На игровой баланс не влияют.
type Settings struct {
	Seed          int64   `toml:"seed"`            // 0 — сид от текущего времени
	WindowScale   float64 `toml:"window_scale"`    // Множитель размера окна
	StartFromMenu bool    `toml:"start_from_menu"` // false — сразу в игру
	Audio         bool    `toml:"audio"`
	DebugAddr     string  `toml:"debug_addr"` // pprof и /metrics; пусто — выключено
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Seed:          0,
		WindowScale:   1.0,
		StartFromMenu: true,
		Audio:         true,
		DebugAddr:     "localhost:6060",
	}
}

// LoadSettings читает TOML-файл (если он есть) поверх значений по умолчанию,
// затем применяет переменные окружения MD_*.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Файла нет — остаёмся на умолчаниях
		case err != nil:
			return s, fmt.Errorf("failed to read settings file: %w", err)
		default:
			if err := toml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("failed to unmarshal settings: %w", err)
			}
		}
	}

	s.Seed = getEnvInt64("MD_SEED", s.Seed)
	s.WindowScale = getEnvFloat("MD_WINDOW_SCALE", s.WindowScale)
	s.Audio = getEnvBool("MD_AUDIO", s.Audio)
	s.DebugAddr = getEnv("MD_DEBUG_ADDR", s.DebugAddr)

	if s.WindowScale <= 0 {
		s.WindowScale = 1.0
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
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

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
