package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"rangeseek/eui"
	"rangeseek/seekbar"
)

const (
	panelMargin   = 16
	statusTimeout = 2 * time.Second
	helpText      = "A animate  S steps  D disable  R reset  T thumb  P snapshot  L log  Ctrl+C copy"

	barPrice = "price"
	barTrim  = "trim"
)

// Game hosts the range bars inside the ebiten loop.
type Game struct {
	ctx     context.Context
	logger  *zap.SugaredLogger
	cfg     *appConfig
	reloads <-chan *appConfig
	desk    *desktop

	panel *eui.Panel
	price *eui.RangeBar
	trim  *eui.RangeBar

	changingLimiter *rate.Limiter
	rng             *rand.Rand

	width, height     int
	status            string
	statusUntil       time.Time
	screenshotPending bool

	pickThumb    func() (string, error)
	pickingThumb bool
	thumbPicks   chan thumbPick
	thumbPath    string
}

func newGame(ctx context.Context, cfg *appConfig, logger *zap.SugaredLogger, desk *desktop, saved persistState, reloads <-chan *appConfig) *Game {
	g := &Game{
		ctx:             ctx,
		logger:          logger.Named("game"),
		cfg:             cfg,
		reloads:         reloads,
		desk:            desk,
		changingLimiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		rng:             rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		width:           cfg.WindowWidth,
		height:          cfg.WindowHeight,
		pickThumb:       pickThumbFile,
		thumbPicks:      make(chan thumbPick, 1),
		thumbPath:       saved.Thumb,
	}
	g.build(saved)
	return g
}

func (g *Game) themeFor(cfg *appConfig) *eui.Theme {
	if cfg.Theme != "" {
		th, err := eui.LoadTheme(cfg.Theme)
		if err == nil {
			return th
		}
		g.logger.Warnw("Unknown theme, using desktop preference", "theme", cfg.Theme, "error", err)
	}
	return eui.DefaultTheme(g.desk.prefersDark())
}

// build creates the panel and bars from the current config and restores
// saved selections whose bounds still match.
func (g *Game) build(saved persistState) {
	th := g.themeFor(g.cfg)
	g.panel = eui.NewPanel(panelMargin, panelMargin, float32(g.width-2*panelMargin), th, g.logger)
	barLogger := g.logger.Named("seekbar")

	priceCfg := g.withPickedThumb(g.cfg.Price).seekbarConfig(g.logger, g.cfg.TouchSlop)
	applyThemeColors(&priceCfg, g.cfg.Price, th)
	g.price, _ = eui.NewRangeBar("Price", priceCfg, seekbar.WithLogger(barLogger.With("bar", barPrice)))
	g.price.Format = formatPrice

	trimCfg := g.withPickedThumb(g.cfg.Trim).seekbarConfig(g.logger, g.cfg.TouchSlop)
	applyThemeColors(&trimCfg, g.cfg.Trim, th)
	trimCfg.StepsEnabled = trimCfg.StepsEnabled || saved.TrimSteps
	g.trim, _ = eui.NewRangeBar("Trim", trimCfg, seekbar.WithLogger(barLogger.With("bar", barTrim)))
	g.trim.Format = trimFormatter(g.cfg.TrimLength)

	g.panel.Add(g.price)
	g.panel.Add(g.trim)

	for name, rb := range g.namedBars() {
		st, ok := saved.Bars[name]
		if !ok {
			continue
		}
		b := rb.Bar()
		if st.Min != b.MinValue() || st.Max != b.MaxValue() {
			g.logger.Infow("Saved bounds differ from config, not restoring", "bar", name,
				"savedMin", st.Min, "savedMax", st.Max, "min", b.MinValue(), "max", b.MaxValue())
			continue
		}
		b.RestoreState(st)
		g.logger.Debugw("Restored selection", "bar", name, "range", rb.Readout())
	}
}

// withPickedThumb fills in the thumb chosen with the T key when the config
// leaves the bar on the stock thumbs.
func (g *Game) withPickedThumb(bc barConfig) barConfig {
	if bc.ThumbNormal == "" && g.thumbPath != "" {
		bc.ThumbNormal, bc.ThumbPressed = g.thumbPath, ""
	}
	return bc
}

func applyThemeColors(cfg *seekbar.Config, bc barConfig, th *eui.Theme) {
	if bc.ProgressColor == nil {
		cfg.ProgressColor = th.Progress
	}
	if bc.BackgroundColor == nil {
		cfg.BackgroundColor = th.Track
	}
}

func (g *Game) namedBars() map[string]*eui.RangeBar {
	return map[string]*eui.RangeBar{barPrice: g.price, barTrim: g.trim}
}

// snapshot captures every bar for the state store.
func (g *Game) snapshot() persistState {
	st := persistState{
		Version:   stateVersion,
		TrimSteps: g.trim.Bar().StepsEnabled(),
		Thumb:     g.thumbPath,
		Bars:      map[string]seekbar.State{},
	}
	for name, rb := range g.namedBars() {
		st.Bars[name] = rb.Bar().SaveState()
	}
	return st
}

// applyConfig rebuilds the bars from a reloaded config, carrying the current
// selections over.
func (g *Game) applyConfig(cfg *appConfig) {
	st := g.snapshot()
	g.cfg = cfg
	g.build(st)
	g.logger.Infow("Applied reloaded config", "theme", g.panel.Theme.Name)
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusUntil = time.Now().Add(statusTimeout)
}

func (g *Game) animatePriceRandom() {
	b := g.price.Bar()
	span := b.MaxValue() - b.MinValue()
	lo := b.MinValue() + g.rng.Float32()*span
	hi := b.MinValue() + g.rng.Float32()*span
	if lo > hi {
		lo, hi = hi, lo
	}
	b.AnimateSelectedMin(lo, g.cfg.AnimationDuration)
	b.AnimateSelectedMax(hi, g.cfg.AnimationDuration)
	g.logger.Debugw("Animating price", "min", lo, "max", hi)
}

func (g *Game) resetBars() {
	for _, rb := range g.panel.Bars() {
		b := rb.Bar()
		b.AnimateSelectedMin(b.MinValue(), g.cfg.AnimationDuration)
		b.AnimateSelectedMax(b.MaxValue(), g.cfg.AnimationDuration)
	}
}

func (g *Game) toggleTrimSteps() {
	b := g.trim.Bar()
	b.EnableSteps(!b.StepsEnabled())
	g.setStatus("Trim steps: " + onOff(b.StepsEnabled()))
}

func (g *Game) toggleEnabled() {
	enabled := !g.price.Bar().Enabled()
	for _, rb := range g.panel.Bars() {
		rb.Bar().SetEnabled(enabled)
	}
	g.setStatus("Input: " + onOff(enabled))
}

func (g *Game) copyRanges() {
	if g.desk.copyText(rangesText(g.panel.Bars())) {
		g.setStatus("Copied ranges to clipboard")
		return
	}
	g.setStatus("Clipboard unavailable")
}

func (g *Game) showLog() {
	if err := g.desk.showLog(); err != nil {
		g.logger.Debugw("Cannot open log file", "error", err)
		g.setStatus("Log file unavailable")
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (g *Game) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyRanges()
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.animatePriceRandom()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.toggleTrimSteps()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.toggleEnabled()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.resetBars()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.screenshotPending = true
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.chooseThumb()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.showLog()
	}
}

// drainEvents logs selection updates. Changing events are throttled and
// animation frames are only reported once the animation lands.
func (g *Game) drainEvents() {
	for _, rb := range g.panel.Bars() {
		g.drainBar(rb)
	}
}

func (g *Game) drainBar(rb *eui.RangeBar) {
	for {
		select {
		case ev := <-rb.Handler().Events:
			g.logRangeEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) logRangeEvent(ev eui.UIEvent) {
	switch ev.Type {
	case eui.EventRangeChanging:
		if g.changingLimiter.Allow() {
			g.logger.Debugw("Range changing", "bar", ev.Item.Label, "min", ev.Min, "max", ev.Max)
		}
	case eui.EventRangeChanged:
		if ev.Item.Bar().Animating() || ev.Item.Bar().Pressed() {
			return
		}
		g.logger.Infow("Range selected", "bar", ev.Item.Label, "range", ev.Item.Readout())
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	select {
	case cfg := <-g.reloads:
		g.applyConfig(cfg)
	default:
	}
	g.drainThumbPicks()
	g.handleKeys()
	g.panel.Update(time.Now())
	g.drainEvents()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.panel.Theme.Background)
	g.panel.Draw(screen)
	if g.screenshotPending {
		g.screenshotPending = false
		g.takeScreenshot(screen)
	}
	line := helpText
	if g.status != "" && time.Now().Before(g.statusUntil) {
		line = g.status
	}
	ebitenutil.DebugPrintAt(screen, line, panelMargin, g.height-panelMargin-12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.panel.SetWidth(float32(g.width - 2*panelMargin))
	}
	return outsideWidth, outsideHeight
}
