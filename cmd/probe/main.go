package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"

	ebitenbackend "github.com/milk9111/inputstack/backend/ebiten"
	"github.com/milk9111/inputstack/input"
	"github.com/milk9111/inputstack/logger"
	"github.com/milk9111/inputstack/profile"
)

const (
	screenWidth  = 960
	screenHeight = 640

	lineHeight = 16
	barWidth   = 180.0
	barHeight  = 8.0
)

// probe is a live inspector for a binding profile: it shows every raw
// source the backend reports, which context claims it, and the resolved
// action phases and axis values side by side. Press a key or button to
// learn its source syntax, then copy it straight into a profile file.
type probe struct {
	pipe        *input.Pipeline
	profileName string

	prevDown    map[input.Source]struct{}
	lastSource  string
	copiedAt    uint64
	clipboardOK bool
}

func (p *probe) Update() error {
	p.pipe.Tick()

	frame := p.pipe.LastFrame()
	down := frame.DownSources()
	next := make(map[input.Source]struct{}, len(down))
	for _, src := range down {
		next[src] = struct{}{}
		if _, held := p.prevDown[src]; !held {
			p.lastSource = src.String()
		}
	}
	p.prevDown = next

	// A deflected pad stick is a "press" for discovery purposes too.
	for _, src := range frame.AnalogSources() {
		if src.Kind == input.KindGamepadAxis && math.Abs(frame.Analog(src)) >= 0.5 {
			p.lastSource = src.String()
		}
	}

	if p.pipe.Action("copy_source") == input.Pressed {
		p.copyLast()
	}
	return nil
}

func (p *probe) copyLast() {
	if p.lastSource == "" {
		return
	}
	if !p.clipboardOK {
		slog.Warn("probe: clipboard unavailable, nothing copied", "source", p.lastSource)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(p.lastSource))
	p.copiedAt = p.pipe.Ticks()
	slog.Info("probe: copied source syntax", "source", p.lastSource)
}

func (p *probe) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x14, 0x14, 0x18, 0xff})

	var names []string
	for _, ctx := range p.pipe.Stack().OrderedActive() {
		names = append(names, ctx.Name)
	}
	header := fmt.Sprintf("profile %s   tick %d   stack: %s", p.profileName, p.pipe.Ticks(), strings.Join(names, " > "))
	ebitenutil.DebugPrintAt(screen, header, 8, 8)

	p.drawSources(screen, 8, 40)
	p.drawResolved(screen, screenWidth/2+8, 40)
	p.drawFooter(screen)
}

// drawSources lists the raw side of the pipeline: discrete sources that
// are down and continuous sources that reported this tick, each with the
// context that claimed it.
func (p *probe) drawSources(screen *ebiten.Image, x, y int) {
	frame := p.pipe.LastFrame()

	var b strings.Builder
	b.WriteString("raw sources down\n")
	down := frame.DownSources()
	if len(down) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, src := range down {
		fmt.Fprintf(&b, "  %-16s %s\n", src.String(), p.claimLabel(src))
	}

	b.WriteString("\nanalog sources\n")
	analog := frame.AnalogSources()
	if len(analog) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, src := range analog {
		fmt.Fprintf(&b, "  %-16s %+8.3f  %s\n", src.String(), frame.Analog(src), p.claimLabel(src))
	}

	mx, my := frame.MousePosition()
	fmt.Fprintf(&b, "\ncursor %4.0f,%4.0f\n", mx, my)

	ebitenutil.DebugPrintAt(screen, b.String(), x, y)
}

func (p *probe) claimLabel(src input.Source) string {
	if ctx, ok := p.pipe.ClaimedBy(src); ok {
		return "-> " + ctx
	}
	return "(unclaimed)"
}

// drawResolved lists the logical side: every declared action with its
// phase and every declared axis with its value as a centered bar.
func (p *probe) drawResolved(screen *ebiten.Image, x, y int) {
	state := p.pipe.State()

	var b strings.Builder
	b.WriteString("actions\n")
	for _, name := range state.ActionNames() {
		phase := state.Action(name)
		mark := " "
		if phase.Active() {
			mark = "*"
		}
		fmt.Fprintf(&b, " %s %-16s %s\n", mark, name, phase)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), x, y)

	y += (len(state.ActionNames()) + 2) * lineHeight
	ebitenutil.DebugPrintAt(screen, "axes", x, y)
	y += lineHeight

	for _, name := range state.AxisNames() {
		v := state.Axis(name)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("  %-10s %+7.3f", name, v), x, y)
		p.drawAxisBar(screen, float64(x+180), float64(y+4), name, v)
		y += lineHeight
	}
}

// drawAxisBar renders v inside the axis's declared range as a bar that
// grows away from the zero point, so symmetric axes read like a stick.
func (p *probe) drawAxisBar(screen *ebiten.Image, x, y float64, name string, v float64) {
	min, max, ok := p.pipe.State().AxisRange(name)
	if !ok || max <= min {
		return
	}
	ebitenutil.DrawRect(screen, x, y, barWidth, barHeight, color.RGBA{0x30, 0x30, 0x38, 0xff})

	zero := (0 - min) / (max - min)
	if zero < 0 {
		zero = 0
	}
	if zero > 1 {
		zero = 1
	}
	t := (v - min) / (max - min)

	x0, x1 := zero, t
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	w := (x1 - x0) * barWidth
	if v != 0 && w < 1 {
		w = 1
	}
	ebitenutil.DrawRect(screen, x+x0*barWidth, y, w, barHeight, color.RGBA{0xff, 0xa6, 0x26, 0xff})
	ebitenutil.DrawRect(screen, x+zero*barWidth, y-1, 1, barHeight+2, color.RGBA{0xdd, 0xdd, 0xdd, 0xff})
}

func (p *probe) drawFooter(screen *ebiten.Image) {
	y := screenHeight - 3*lineHeight
	if p.lastSource == "" {
		ebitenutil.DebugPrintAt(screen, "press any key, button, or stick to see its source syntax", 8, y)
		return
	}
	msg := fmt.Sprintf("last press: %s   (F8 copies it for profile files)", p.lastSource)
	if p.copiedAt != 0 && p.pipe.Ticks()-p.copiedAt < 120 {
		msg += "   copied!"
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, y)
}

func (p *probe) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	profileName := flag.String("profile", "default.yaml", "binding profile (a copy under profiles/ overrides the embedded one)")
	logLevel := flag.String("log", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: "console"})

	prof, err := profile.LoadProfile(*profileName)
	if err != nil {
		log.Fatal(err)
	}

	pipe := input.New(ebitenbackend.New())
	if err := prof.Apply(pipe); err != nil {
		log.Fatal(err)
	}

	// The probe's own context rides on top of the profile's stack. It
	// binds a single key, so everything else falls through to the
	// contexts below and resolves exactly as the profile says.
	if err := pipe.RegisterBinding("probe", input.KeyF8.Source(), input.ActionTarget("copy_source")); err != nil {
		log.Fatal(err)
	}
	if err := pipe.PushContext("probe"); err != nil {
		log.Fatal(err)
	}

	p := &probe{pipe: pipe, profileName: prof.Name}
	if err := clipboard.Init(); err != nil {
		slog.Warn("probe: clipboard unavailable", "err", err)
	} else {
		p.clipboardOK = true
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("inputstack probe")
	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
