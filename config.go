package picsel

import (
	"math"
	"runtime"

	"github.com/BurntSushi/toml"
)

const (
	MaxAnimationDuration = 100.0
	maxReloadWorkers     = 64
)

// WindowConfig controls the viewer window.
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	ShowFPS bool   `toml:"show_fps"`
}

// CameraConfig controls pan and zoom.
type CameraConfig struct {
	ZoomFactor    float64 `toml:"zoom_factor"`
	MinScale      float64 `toml:"min_scale"`
	MaxScale      float64 `toml:"max_scale"`
	FocusDuration float64 `toml:"focus_duration"`
}

// AnimationConfig controls layout transitions.
type AnimationConfig struct {
	Duration float64 `toml:"duration"`
}

// HilbertConfig holds the initial Hilbert layout settings.
type HilbertConfig struct {
	Order          int     `toml:"order"`
	RadiusExponent float64 `toml:"radius_exponent"`
	SampleColors   bool    `toml:"sample_colors"`
}

// RandomConfig holds the initial random layout settings.
type RandomConfig struct {
	Seed uint64 `toml:"seed"`
}

// ReloadConfig controls the reload pass.
type ReloadConfig struct {
	// Workers bounds concurrent decodes. 0 means one per CPU.
	Workers int `toml:"workers"`
}

// Config is the full application configuration.
type Config struct {
	Window        WindowConfig    `toml:"window"`
	Camera        CameraConfig    `toml:"camera"`
	Animation     AnimationConfig `toml:"animation"`
	Hilbert       HilbertConfig   `toml:"hilbert"`
	Random        RandomConfig    `toml:"random"`
	Reload        ReloadConfig    `toml:"reload"`
	Debug         bool            `toml:"debug"`
	ScreenshotDir string          `toml:"screenshot_dir"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "picsel", Width: 1000, Height: 800},
		Camera: CameraConfig{
			ZoomFactor:    DefaultZoomFactor,
			MinScale:      defaultMinScale,
			MaxScale:      defaultMaxScale,
			FocusDuration: 0.3,
		},
		Animation:     AnimationConfig{Duration: 1},
		Hilbert:       HilbertConfig{Order: DefaultCurveOrder, RadiusExponent: DefaultRadiusExponent},
		Random:        RandomConfig{Seed: 1},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a TOML file over the defaults and validates the result.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, wrapError(ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, newError(ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Validate()
	return cfg, nil
}

// Validate clamps every bounded setting into range.
func (c *Config) Validate() {
	if c.Window.Width <= 0 {
		c.Window.Width = 1000
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 800
	}
	if c.Camera.ZoomFactor <= 1 {
		c.Camera.ZoomFactor = DefaultZoomFactor
	}
	if c.Camera.MinScale <= 0 {
		c.Camera.MinScale = defaultMinScale
	}
	if c.Camera.MaxScale < c.Camera.MinScale {
		c.Camera.MaxScale = math.Max(defaultMaxScale, c.Camera.MinScale)
	}
	c.Camera.FocusDuration = math.Max(0, c.Camera.FocusDuration)
	c.Animation.Duration = math.Max(0, math.Min(MaxAnimationDuration, c.Animation.Duration))
	c.Hilbert.Order = max(MinCurveOrder, min(MaxCurveOrder, c.Hilbert.Order))
	c.Hilbert.RadiusExponent = math.Max(MinRadiusExponent, math.Min(MaxRadiusExponent, c.Hilbert.RadiusExponent))
	if c.Reload.Workers <= 0 {
		c.Reload.Workers = runtime.NumCPU()
	}
	c.Reload.Workers = min(c.Reload.Workers, maxReloadWorkers)
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
}
