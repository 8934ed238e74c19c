package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"rangeseek/eui"
	"rangeseek/seekbar"
)

const (
	configName = "rangeseek"
	configType = "yaml"
	configPath = "."

	configKeyWindowWidth       = "window.width"
	configKeyWindowHeight      = "window.height"
	configKeyWindowTitle       = "window.title"
	configKeyTheme             = "theme"
	configKeyTouchSlop         = "touch_slop"
	configKeyAnimationDuration = "animation_duration"
	configKeyTrimLength        = "trim.length"

	barKeyMin              = "min"
	barKeyMax              = "max"
	barKeyCurrentMin       = "current_min"
	barKeyCurrentMax       = "current_max"
	barKeyRounded          = "rounded"
	barKeyProgressHeight   = "progress_height"
	barKeyBackgroundHeight = "background_height"
	barKeyProgressColor    = "progress_color"
	barKeyBackgroundColor  = "background_color"
	barKeyStepsEnabled     = "steps_enabled"
	barKeySteps            = "steps"
	barKeyStepRadius       = "step_radius"
	barKeyThumbNormal      = "thumb_normal"
	barKeyThumbPressed     = "thumb_pressed"
	barKeyThumbSize        = "thumb_size"

	defaultWindowWidth  = 640
	defaultWindowHeight = 300
	defaultTrimLength   = 3*time.Minute + 30*time.Second

	minTimeBetweenReloadAttempts = 500 * time.Millisecond
	delayBetweenEventAndReload   = 50 * time.Millisecond
)

// barConfig is the YAML section describing one range bar.
type barConfig struct {
	Min, Max               float32
	CurrentMin, CurrentMax float32
	Rounded                bool
	ProgressHeight         float32
	BackgroundHeight       float32
	ProgressColor          color.Color
	BackgroundColor        color.Color
	StepsEnabled           bool
	Steps                  []float32
	StepRadius             float32
	ThumbNormal            string
	ThumbPressed           string
	ThumbSize              int
}

// appConfig is the canonical configuration after defaults and validation.
type appConfig struct {
	WindowWidth       int
	WindowHeight      int
	WindowTitle       string
	Theme             string
	TouchSlop         float32
	AnimationDuration time.Duration
	TrimLength        time.Duration

	Price barConfig
	Trim  barConfig
}

// seekbarConfig converts the section into engine construction options.
func (bc barConfig) seekbarConfig(logger *zap.SugaredLogger, touchSlop float32) seekbar.Config {
	cfg := seekbar.DefaultConfig()
	cfg.Min, cfg.Max = bc.Min, bc.Max
	cfg.CurrentMin, cfg.CurrentMax = bc.CurrentMin, bc.CurrentMax
	cfg.Rounded = bc.Rounded
	cfg.ProgressHeight = bc.ProgressHeight
	cfg.BackgroundHeight = bc.BackgroundHeight
	cfg.ProgressColor = bc.ProgressColor
	cfg.BackgroundColor = bc.BackgroundColor
	cfg.StepsEnabled = bc.StepsEnabled
	cfg.Steps = bc.Steps
	cfg.StepRadius = bc.StepRadius
	cfg.TouchSlop = touchSlop

	normal, pressed, err := eui.LoadThumbPair(bc.ThumbNormal, bc.ThumbPressed, bc.ThumbSize)
	if err != nil {
		logger.Warnw("Failed to load thumb images, using stock thumbs", "error", err)
	} else {
		cfg.ThumbNormal, cfg.ThumbPressed = normal, pressed
	}
	return cfg
}

// configStore loads rangeseek.yaml and reloads it when the file changes.
type configStore struct {
	logger   *zap.SugaredLogger
	notifier func(title, body string)
	v        *viper.Viper

	reloads chan *appConfig
}

func newConfigStore(file string, logger *zap.SugaredLogger, notifier func(title, body string)) *configStore {
	logger = logger.Named("config")
	if notifier == nil {
		notifier = func(string, string) {}
	}

	v := viper.New()
	v.SetConfigType(configType)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(configPath)
	}

	v.SetDefault(configKeyWindowWidth, defaultWindowWidth)
	v.SetDefault(configKeyWindowHeight, defaultWindowHeight)
	v.SetDefault(configKeyWindowTitle, "rangeseek")
	v.SetDefault(configKeyTheme, "")
	v.SetDefault(configKeyTouchSlop, seekbar.DefaultTouchSlop)
	v.SetDefault(configKeyAnimationDuration, seekbar.DefaultAnimateDuration)
	v.SetDefault(configKeyTrimLength, defaultTrimLength)
	setBarDefaults(v, "price", 0, 5000, nil)
	setBarDefaults(v, "trim", 0, 100, []string{"25", "50", "75"})

	logger.Debug("Created config instance")
	return &configStore{
		logger:   logger,
		notifier: notifier,
		v:        v,
		reloads:  make(chan *appConfig, 1),
	}
}

func setBarDefaults(v *viper.Viper, section string, minValue, maxValue float64, steps []string) {
	key := func(k string) string { return section + "." + k }
	v.SetDefault(key(barKeyMin), minValue)
	v.SetDefault(key(barKeyMax), maxValue)
	v.SetDefault(key(barKeyCurrentMin), minValue)
	v.SetDefault(key(barKeyCurrentMax), maxValue)
	v.SetDefault(key(barKeyRounded), true)
	v.SetDefault(key(barKeyProgressHeight), seekbar.DefaultLineHeight)
	v.SetDefault(key(barKeyBackgroundHeight), seekbar.DefaultLineHeight)
	v.SetDefault(key(barKeyProgressColor), "")
	v.SetDefault(key(barKeyBackgroundColor), "")
	v.SetDefault(key(barKeyStepsEnabled), false)
	v.SetDefault(key(barKeySteps), steps)
	v.SetDefault(key(barKeyStepRadius), seekbar.DefaultStepRadius)
	v.SetDefault(key(barKeyThumbNormal), "")
	v.SetDefault(key(barKeyThumbPressed), "")
	v.SetDefault(key(barKeyThumbSize), 0)
}

// load reads the config file. A missing file is not an error: every key has
// a default.
func (cs *configStore) load() (*appConfig, error) {
	if err := cs.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			cs.logger.Warnw("Viper failed to read config", "error", err)
			return nil, fmt.Errorf("read config: %w", err)
		}
		cs.logger.Infow("Config file not found, using defaults")
	}

	cfg := cs.populate()
	cs.logger.Infow("Loaded config",
		"file", cs.v.ConfigFileUsed(),
		"theme", cfg.Theme,
		"touchSlop", cfg.TouchSlop,
		"animationDuration", cfg.AnimationDuration)
	return cfg, nil
}

func (cs *configStore) populate() *appConfig {
	v := cs.v
	cfg := &appConfig{
		WindowWidth:       v.GetInt(configKeyWindowWidth),
		WindowHeight:      v.GetInt(configKeyWindowHeight),
		WindowTitle:       v.GetString(configKeyWindowTitle),
		Theme:             strings.ToLower(strings.TrimSpace(v.GetString(configKeyTheme))),
		TouchSlop:         float32(v.GetFloat64(configKeyTouchSlop)),
		AnimationDuration: v.GetDuration(configKeyAnimationDuration),
		TrimLength:        v.GetDuration(configKeyTrimLength),
	}

	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cs.logger.Warnw("Invalid window size specified, using default value",
			"width", cfg.WindowWidth, "height", cfg.WindowHeight)
		cfg.WindowWidth, cfg.WindowHeight = defaultWindowWidth, defaultWindowHeight
	}
	if cfg.TouchSlop < 0 {
		cs.logger.Warnw("Negative touch slop specified, using default value", "invalidValue", cfg.TouchSlop)
		cfg.TouchSlop = seekbar.DefaultTouchSlop
	}
	if cfg.AnimationDuration <= 0 {
		cfg.AnimationDuration = seekbar.DefaultAnimateDuration
	}
	if cfg.TrimLength <= 0 {
		cs.logger.Warnw("Invalid trim length specified, using default value", "invalidValue", cfg.TrimLength)
		cfg.TrimLength = defaultTrimLength
	}

	cfg.Price = cs.populateBar("price")
	cfg.Trim = cs.populateBar("trim")
	// The trim bar selects a percentage of the clip.
	cfg.Trim.Min, cfg.Trim.Max = seekbar.DefaultMinValue, seekbar.DefaultMaxValue

	cs.logger.Debug("Populated config fields from viper")
	return cfg
}

func (cs *configStore) populateBar(section string) barConfig {
	v := cs.v
	key := func(k string) string { return section + "." + k }
	bc := barConfig{
		Min:              float32(v.GetFloat64(key(barKeyMin))),
		Max:              float32(v.GetFloat64(key(barKeyMax))),
		CurrentMin:       float32(v.GetFloat64(key(barKeyCurrentMin))),
		CurrentMax:       float32(v.GetFloat64(key(barKeyCurrentMax))),
		Rounded:          v.GetBool(key(barKeyRounded)),
		ProgressHeight:   float32(v.GetFloat64(key(barKeyProgressHeight))),
		BackgroundHeight: float32(v.GetFloat64(key(barKeyBackgroundHeight))),
		StepsEnabled:     v.GetBool(key(barKeyStepsEnabled)),
		StepRadius:       float32(v.GetFloat64(key(barKeyStepRadius))),
		ThumbNormal:      v.GetString(key(barKeyThumbNormal)),
		ThumbPressed:     v.GetString(key(barKeyThumbPressed)),
		ThumbSize:        v.GetInt(key(barKeyThumbSize)),
	}
	bc.ProgressColor = cs.colorValue(key(barKeyProgressColor))
	bc.BackgroundColor = cs.colorValue(key(barKeyBackgroundColor))

	for _, s := range v.GetStringSlice(key(barKeySteps)) {
		var f float32
		if _, err := fmt.Sscan(s, &f); err != nil {
			cs.logger.Warnw("Ignoring invalid step", "key", key(barKeySteps), "invalidValue", s)
			continue
		}
		bc.Steps = append(bc.Steps, f)
	}
	return bc
}

// colorValue parses a configured color; empty or invalid values yield nil so
// the engine default applies.
func (cs *configStore) colorValue(key string) color.Color {
	raw := cs.v.GetString(key)
	if raw == "" {
		return nil
	}
	c, err := eui.ParseColor(raw)
	if err != nil {
		cs.logger.Warnw("Invalid color specified, using default value", "key", key, "error", err)
		return nil
	}
	return c
}

// subscribe returns the channel that receives each successfully reloaded
// config. Only the newest unconsumed config is kept.
func (cs *configStore) subscribe() <-chan *appConfig {
	return cs.reloads
}

// watch starts watching the config file and reloads it when it is written.
func (cs *configStore) watch() {
	if cs.v.ConfigFileUsed() == "" {
		cs.logger.Debug("No config file in use, not watching")
		return
	}
	cs.logger.Debugw("Starting to watch config file for changes", "path", cs.v.ConfigFileUsed())

	lastAttemptedReload := time.Now()
	cs.v.OnConfigChange(func(event fsnotify.Event) {
		if !event.Has(fsnotify.Write) {
			return
		}
		now := time.Now()
		// many editors write the file twice
		if !lastAttemptedReload.Add(minTimeBetweenReloadAttempts).Before(now) {
			return
		}
		lastAttemptedReload = now

		cs.logger.Debugw("Config file modified, attempting reload", "event", event)
		<-time.After(delayBetweenEventAndReload)
		cs.reload()
	})
	cs.v.WatchConfig()
}

func (cs *configStore) reload() {
	cfg, err := cs.load()
	if err != nil {
		cs.logger.Warnw("Failed to reload config file", "error", err)
		if strings.Contains(err.Error(), "yaml") {
			cs.notifier("Invalid configuration!", "Please make sure the config file is valid YAML.")
		}
		return
	}
	cs.logger.Info("Reloaded config successfully")
	cs.notifier("Configuration reloaded!", "Your changes have been applied.")

	select {
	case <-cs.reloads:
	default:
	}
	cs.reloads <- cfg
}
