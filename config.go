package dnd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds scene settings. Zero numeric fields of a Config passed to
// NewSceneWithConfig keep their defaults; the zero Config is therefore the
// default scene. Bools are taken literally.
type Config struct {
	// Delta is the drag threshold in device pixels.
	Delta float64 `env:"DND_DRAG_DELTA"`
	// DragImageOpacity is the alpha of the visible drag image.
	DragImageOpacity float64 `env:"DND_DRAG_IMAGE_OPACITY"`
	// GoBackDuration is the go-back animation length in seconds.
	GoBackDuration float32 `env:"DND_GO_BACK_SECONDS"`
	// DragImageFade fades each newly shown drag image in over that many
	// seconds.
	DragImageFade float32 `env:"DND_DRAG_IMAGE_FADE_SECONDS"`
	// DisableWatchdog keeps the session alive when the window loses focus.
	DisableWatchdog bool `env:"DND_DISABLE_WATCHDOG"`
	// Debug enables debug mode (see Scene.SetDebugMode).
	Debug bool `env:"DND_DEBUG"`
}

// DefaultConfig returns the settings a plain NewScene uses.
func DefaultConfig() Config {
	return Config{
		Delta:            DefaultDelta,
		DragImageOpacity: DefaultDragImageOpacity,
		GoBackDuration:   DefaultGoBackDuration,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by DND_* environment
// variables.
func ConfigFromEnv() (Config, error) {
	return parseConfig(env.Options{})
}

// ConfigFromMap is ConfigFromEnv reading from vars instead of the process
// environment.
func ConfigFromMap(vars map[string]string) (Config, error) {
	return parseConfig(env.Options{Environment: vars})
}

func parseConfig(opts env.Options) (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("dnd: parse env: %w", err)
	}
	if cfg.Delta < 0 {
		return Config{}, fmt.Errorf("dnd: parse env: negative drag delta %v", cfg.Delta)
	}
	if cfg.DragImageFade < 0 {
		return Config{}, fmt.Errorf("dnd: parse env: negative fade %v", cfg.DragImageFade)
	}
	return cfg, nil
}
