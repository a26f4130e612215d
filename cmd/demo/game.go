package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/inputstack/common"
	"github.com/milk9111/inputstack/input"
	"github.com/milk9111/inputstack/profile"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	ballSpeed    = 420.0
	jumpSpeed    = 560.0
	shoveImpulse = 450.0
	zoomStep     = 0.05
)

// Game is a small physics toy that exists to exercise the pipeline: a
// ball driven by gameplay bindings, a pause menu that shadows them with a
// ui context, and a debug overlay showing what the resolver decided.
type Game struct {
	pipe        *input.Pipeline
	arena       *arena
	pauseUI     *ebitenui.UI
	world       *ebiten.Image
	profileName string
	watcher     *profile.Watcher

	paused  bool
	overlay bool
	slowMo  bool
	quit    bool
	zoom    float64
}

func NewGame(pipe *input.Pipeline, profileName string) *Game {
	g := &Game{
		pipe:        pipe,
		arena:       newArena(baseWidth, baseHeight),
		world:       ebiten.NewImage(baseWidth, baseHeight),
		profileName: profileName,
		zoom:        1,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

// watchProfile re-applies the profile whenever its on-disk copy changes.
func (g *Game) watchProfile() {
	w, err := profile.NewWatcher("profiles")
	if err != nil {
		slog.Warn("demo: profile watching disabled", "err", err)
		return
	}
	g.watcher = w
	slog.Info("demo: watching profiles/ for edits")
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollProfileEdits()
	g.pipe.Tick()

	if g.pipe.Action("toggle_overlay") == input.Pressed {
		g.overlay = !g.overlay
	}
	if g.pipe.Action("slow_motion") == input.Pressed {
		g.slowMo = !g.slowMo
	}

	if g.paused {
		g.pauseUI.Update()
		// Escape feeds pause out here and menu_back in the menu. Both
		// toggle on the release edge: a key still held across the
		// context swap re-claims with a fresh Pressed and would bounce
		// the menu open and shut.
		if g.pipe.Action("menu_back") == input.Released || g.pipe.Action("menu_confirm") == input.Pressed {
			g.closeMenu()
		}
		return nil
	}

	if g.pipe.Action("pause") == input.Released {
		g.openMenu()
		return nil
	}

	g.drive()
	dt := 1.0 / 60.0
	if g.slowMo {
		dt /= 4
	}
	g.arena.step(dt)
	return nil
}

// drive turns the resolved logical state into ball motion. Keyboard
// movement comes in as actions, the stick as an axis; both funnel into
// one steering value.
func (g *Game) drive() {
	ax := g.pipe.Axis("move_x")
	if g.pipe.Action("move_right").Active() {
		ax += 1
	}
	if g.pipe.Action("move_left").Active() {
		ax -= 1
	}
	ax = common.Clamp(ax, -1, 1)

	v := g.arena.ball.Velocity()
	vx := common.Lerp(v.X, ax*ballSpeed, 0.2)
	g.arena.ball.SetVelocity(vx, v.Y)

	if g.pipe.Action("jump") == input.Pressed {
		g.arena.ball.SetVelocity(vx, -jumpSpeed)
	}

	if g.pipe.Action("fire") == input.Pressed {
		wx, wy := g.cursorWorld()
		pos := g.arena.ball.Position()
		dir := cp.Vector{X: wx - pos.X, Y: wy - pos.Y}.Normalize()
		g.arena.ball.ApplyImpulseAtLocalPoint(dir.Mult(shoveImpulse), cp.Vector{})
	}

	g.zoom = common.Clamp(g.zoom+g.pipe.Axis("zoom")*zoomStep, 0.5, 2)
}

func (g *Game) openMenu() {
	g.paused = true
	if err := g.pipe.PushContext("ui"); err != nil {
		slog.Warn("demo: push ui context", "err", err)
	}
}

func (g *Game) closeMenu() {
	g.paused = false
	g.pipe.PopContext("ui")
}

// cursorWorld maps the cursor through the zoom back into arena
// coordinates.
func (g *Game) cursorWorld() (x, y float64) {
	mx, my := g.pipe.LastFrame().MousePosition()
	x = (mx-baseWidth/2)/g.zoom + baseWidth/2
	y = (my-baseHeight/2)/g.zoom + baseHeight/2
	return x, y
}

// pollProfileEdits drains the watcher without blocking the tick. The old
// bindings are unregistered and the new ones registered in one queued
// batch, so the swap lands atomically on the next tick boundary.
func (g *Game) pollProfileEdits() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = true
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				slog.Warn("demo: profile watcher", "err", err)
			}
			if !ok {
				g.watcher = nil
				return
			}
		default:
			if changed {
				g.reloadProfile()
			}
			return
		}
	}
}

func (g *Game) reloadProfile() {
	prof, err := profile.LoadProfile(g.profileName)
	if err != nil {
		slog.Warn("demo: profile reload skipped", "err", err)
		return
	}
	for _, ctx := range prof.Contexts {
		for _, b := range g.pipe.Registry().Bindings(ctx.Name) {
			g.pipe.UnregisterBinding(ctx.Name, b.Source)
		}
	}
	if err := prof.Apply(g.pipe); err != nil {
		slog.Warn("demo: profile reload failed", "err", err)
		return
	}
	slog.Info("demo: profile re-applied", "profile", g.profileName)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Clear()
	cp.DrawSpace(g.arena.space, &arenaDrawer{screen: g.world})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-baseWidth/2, -baseHeight/2)
	op.GeoM.Scale(g.zoom, g.zoom)
	op.GeoM.Translate(baseWidth/2, baseHeight/2)
	screen.DrawImage(g.world, op)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.overlay {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "tick: %d  fps: %.1f\n", g.pipe.Ticks(), ebiten.ActualFPS())

	ctxs := g.pipe.Stack().OrderedActive()
	names := make([]string, len(ctxs))
	for i, c := range ctxs {
		names[i] = c.Name
	}
	fmt.Fprintf(&b, "stack (top first): %s\n", strings.Join(names, " > "))

	for _, name := range g.pipe.State().ActionNames() {
		phase := g.pipe.Action(name)
		if phase != input.Inactive {
			fmt.Fprintf(&b, "%s: %s\n", name, phase)
		}
	}
	for _, name := range g.pipe.State().AxisNames() {
		if v := g.pipe.Axis(name); v != 0 {
			fmt.Fprintf(&b, "%s: %+.2f\n", name, v)
		}
	}
	if ctx, ok := g.pipe.ClaimedBy(input.KeyEscape.Source()); ok {
		fmt.Fprintf(&b, "key:Escape claimed by %s\n", ctx)
	}

	ebitenutil.DebugPrint(screen, b.String())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
