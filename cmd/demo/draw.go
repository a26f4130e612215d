package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
)

// arenaDrawer renders the physics space as wireframes. It implements
// cp.Drawer so cp.DrawSpace can walk the shapes for us.
type arenaDrawer struct {
	screen *ebiten.Image
}

func (d *arenaDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	steps := 24
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		ebitenutil.DrawLine(d.screen, prev.X, prev.Y, cur.X, cur.Y, c)
		prev = cur
	}
	// spoke showing the body's rotation
	ebitenutil.DrawLine(d.screen, pos.X, pos.Y, pos.X+math.Cos(angle)*radius, pos.Y+math.Sin(angle)*radius, c)
}

func (d *arenaDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, fcolorToRGBA(fill))
}

func (d *arenaDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, fcolorToRGBA(outline))
	if radius > 0 {
		d.DrawCircle(a, 0, radius, outline, fill, data)
		d.DrawCircle(b, 0, radius, outline, fill, data)
	}
}

func (d *arenaDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		a := verts[i]
		b := verts[(i+1)%count]
		ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, c)
	}
}

func (d *arenaDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	l := size / 2
	ebitenutil.DrawLine(d.screen, pos.X-l, pos.Y, pos.X+l, pos.Y, c)
	ebitenutil.DrawLine(d.screen, pos.X, pos.Y-l, pos.X, pos.Y+l, c)
}

func (d *arenaDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *arenaDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.85, G: 0.85, B: 0.85, A: 1.0}
}

func (d *arenaDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.45, G: 0.6, B: 0.95, A: 1.0}
	}
	return cp.FColor{R: 1.0, G: 0.65, B: 0.15, A: 1.0}
}

func (d *arenaDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 1.0}
}

func (d *arenaDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.2, B: 0.2, A: 1.0}
}

func (d *arenaDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
