package seekbar

import (
	"image"
	"image/color"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMinValue         = 0
	DefaultMaxValue         = 100
	DefaultLineHeight       = 10
	DefaultStepRadius       = DefaultLineHeight + 2
	DefaultTouchSlop        = 8
	DefaultAnimateDuration  = 1000 * time.Millisecond
	defaultMeasureWidth     = 200
	invalidPointerID        = -1
	degenerateNormalizedMin = 0
	degenerateNormalizedMax = 1
)

var (
	DefaultProgressColor   = ARGB(0xFF, 0x33, 0xB5, 0xE5)
	DefaultBackgroundColor = ARGB(0xFF, 0xC0, 0xC0, 0xC0)
)

// Thumb identifies one of the two handles.
type Thumb int

const (
	ThumbNone Thumb = iota
	ThumbMin
	ThumbMax
)

func (t Thumb) String() string {
	switch t {
	case ThumbMin:
		return "min"
	case ThumbMax:
		return "max"
	}
	return "none"
}

// Listener receives selection updates. OnChanging fires on every live drag
// update, OnChanged on commits (gesture end, programmatic sets, animation
// frames).
type Listener interface {
	OnChanging(minValue, maxValue float32)
	OnChanged(minValue, maxValue float32)
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Changing func(minValue, maxValue float32)
	Changed  func(minValue, maxValue float32)
}

func (l ListenerFuncs) OnChanging(minValue, maxValue float32) {
	if l.Changing != nil {
		l.Changing(minValue, maxValue)
	}
}

func (l ListenerFuncs) OnChanged(minValue, maxValue float32) {
	if l.Changed != nil {
		l.Changed(minValue, maxValue)
	}
}

// DragClaimer is implemented by containers that can stop ancestors from
// stealing an in-progress gesture.
type DragClaimer interface {
	ClaimDrag()
}

// Clock supplies the time used to start animations.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config holds the construction options of a Bar. Zero heights, colors and
// radii fall back to the package defaults.
type Config struct {
	Min, Max               float32
	CurrentMin, CurrentMax float32

	ProgressHeight   float32
	BackgroundHeight float32
	Rounded          bool
	ProgressColor    color.Color
	BackgroundColor  color.Color

	ThumbNormal  image.Image
	ThumbPressed image.Image

	StepsEnabled bool
	Steps        []float32
	StepRadius   float32

	TouchSlop float32
}

// DefaultConfig mirrors the attribute defaults of the widget: a 0..100 range
// fully selected.
func DefaultConfig() Config {
	return Config{
		Min:              DefaultMinValue,
		Max:              DefaultMaxValue,
		CurrentMin:       DefaultMinValue,
		CurrentMax:       DefaultMaxValue,
		ProgressHeight:   DefaultLineHeight,
		BackgroundHeight: DefaultLineHeight,
		ProgressColor:    DefaultProgressColor,
		BackgroundColor:  DefaultBackgroundColor,
		StepRadius:       DefaultStepRadius,
		TouchSlop:        DefaultTouchSlop,
	}
}

// Option customizes a Bar at construction.
type Option func(*Bar)

// WithLogger routes gesture and rejection messages to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(b *Bar) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock replaces the wall clock used by animations.
func WithClock(c Clock) Option {
	return func(b *Bar) {
		if c != nil {
			b.clock = c
		}
	}
}

// WithListener installs the initial listener.
func WithListener(l Listener) Option {
	return func(b *Bar) { b.listener = l }
}

// WithDragClaimer sets the container asked to keep the gesture.
func WithDragClaimer(p DragClaimer) Option {
	return func(b *Bar) { b.parent = p }
}

// Bar is the ranged selection engine. It owns the value model, the drag
// session and the per-thumb animations. It is not safe for concurrent use;
// all calls are expected on the UI goroutine.
type Bar struct {
	minValue, maxValue float32
	normMin, normMax   float32

	width, height float32

	thumbImage, thumbPressedImage image.Image

	thumbHalfWidth, thumbHalfHeight               float32
	thumbPressedHalfWidth, thumbPressedHalfHeight float32
	padding                                       float32

	progressLineHeight   float32
	backgroundLineHeight float32
	progressColor        color.Color
	backgroundColor      color.Color
	rounded              bool

	stepsEnabled bool
	steps        []float32
	stepRadius   float32

	touchSlop float32
	enabled   bool
	pressed   bool
	session   session

	minAnim, maxAnim *animation
	interp           Interpolator

	dirty       bool
	layoutDirty bool

	listener Listener
	parent   DragClaimer
	clock    Clock
	logger   *zap.SugaredLogger
}

// New builds a Bar from cfg. Missing thumb images are replaced by a plain
// disc so the geometry is always defined.
func New(cfg Config, opts ...Option) *Bar {
	b := &Bar{
		normMax:         1,
		enabled:         true,
		clock:           systemClock{},
		interp:          Decelerate,
		logger:          zap.NewNop().Sugar(),
		session:         session{activePointerID: invalidPointerID},
		dirty:           true,
		progressColor:   cfg.ProgressColor,
		backgroundColor: cfg.BackgroundColor,
		rounded:         cfg.Rounded,
	}
	for _, opt := range opts {
		opt(b)
	}
	// The initial selection is not reported.
	listener := b.listener
	b.listener = nil
	defer func() { b.listener = listener }()

	if b.progressColor == nil {
		b.progressColor = DefaultProgressColor
	}
	if b.backgroundColor == nil {
		b.backgroundColor = DefaultBackgroundColor
	}
	b.stepRadius = cfg.StepRadius
	if b.stepRadius <= 0 {
		b.stepRadius = DefaultStepRadius
	}
	b.touchSlop = cfg.TouchSlop
	if b.touchSlop <= 0 {
		b.touchSlop = DefaultTouchSlop
	}
	b.progressLineHeight = cfg.ProgressHeight
	if b.progressLineHeight <= 0 {
		b.progressLineHeight = DefaultLineHeight
	}
	b.backgroundLineHeight = cfg.BackgroundHeight
	if b.backgroundLineHeight <= 0 {
		b.backgroundLineHeight = DefaultLineHeight
	}

	normal, pressed := cfg.ThumbNormal, cfg.ThumbPressed
	switch {
	case normal == nil && pressed == nil:
		normal = DefaultThumb(false)
		pressed = DefaultThumb(true)
	case normal == nil:
		normal = pressed
	case pressed == nil:
		pressed = normal
	}
	b.thumbImage, b.thumbPressedImage = normal, pressed
	b.measureThumb()
	b.measureThumbPressed()
	b.updatePadding()

	b.minValue, b.maxValue = cfg.Min, cfg.Max
	if isNaN(b.minValue) || isNaN(b.maxValue) {
		b.logger.Warnw("Ignoring NaN bounds", "min", cfg.Min, "max", cfg.Max)
		b.minValue, b.maxValue = DefaultMinValue, DefaultMaxValue
	}
	b.setSelectedMinVal(cfg.CurrentMin)
	b.setSelectedMaxVal(cfg.CurrentMax)

	if cfg.StepsEnabled {
		b.EnableSteps(true)
	}
	if len(cfg.Steps) > 0 {
		b.SetSteps(cfg.Steps)
	}
	return b
}

// SetListener replaces the listener; nil removes it.
func (b *Bar) SetListener(l Listener) { b.listener = l }

// SetDragClaimer replaces the container asked to keep gestures.
func (b *Bar) SetDragClaimer(p DragClaimer) { b.parent = p }

// SetEnabled toggles pointer input. A disabled bar ignores every event.
func (b *Bar) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if !enabled && b.session.pressed != ThumbNone {
		b.cancelSession()
	}
	b.markDirty()
}

func (b *Bar) Enabled() bool { return b.enabled }

// SetTouchSlop sets the displacement in pixels before a press becomes a drag.
func (b *Bar) SetTouchSlop(px float32) {
	if px < 0 {
		px = 0
	}
	b.touchSlop = px
}

// SetSize records the laid out size of the widget in pixels.
func (b *Bar) SetSize(width, height float32) {
	if b.width == width && b.height == height {
		return
	}
	b.width, b.height = width, height
	b.markDirty()
}

func (b *Bar) Size() (width, height float32) { return b.width, b.height }

// Padding is the inset applied to both track ends so thumbs stay visible.
func (b *Bar) Padding() float32 { return b.padding }

// Dirty reports whether the bar needs repainting.
func (b *Bar) Dirty() bool { return b.dirty }

// LayoutDirty reports whether the measured size may have changed.
func (b *Bar) LayoutDirty() bool { return b.layoutDirty }

// ClearDirty is called by the host after painting and laying out.
func (b *Bar) ClearDirty() {
	b.dirty = false
	b.layoutDirty = false
}

func (b *Bar) markDirty() { b.dirty = true }

func (b *Bar) requestLayout() {
	b.layoutDirty = true
	b.dirty = true
}

func (b *Bar) notifyChanged() {
	if b.listener != nil {
		b.listener.OnChanged(b.SelectedMin(), b.SelectedMax())
	}
}

func (b *Bar) notifyChanging() {
	if b.listener != nil {
		b.listener.OnChanging(b.SelectedMin(), b.SelectedMax())
	}
}
