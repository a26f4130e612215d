package main

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/inputstack/common"
)

const (
	ballRadius    = 16.0
	ballMass      = 1.0
	wallThickness = 4.0
)

// arena is the physics playground the demo drives: a walled box with a
// single dynamic ball inside.
type arena struct {
	space *cp.Space
	ball  *cp.Body
}

func newArena(w, h float64) *arena {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
		{a: cp.Vector{X: 0, Y: h}, b: cp.Vector{X: w, Y: h}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(space.StaticBody, seg.a, seg.b, wallThickness)
		shape.SetFriction(0.8)
		shape.SetElasticity(0.6)
		space.AddShape(shape)
	}

	moment := cp.MomentForCircle(ballMass, 0, ballRadius, cp.Vector{})
	ball := cp.NewBody(ballMass, moment)
	ball.SetPosition(cp.Vector{X: w / 2, Y: h / 2})
	space.AddBody(ball)

	shape := cp.NewCircle(ball, ballRadius, cp.Vector{})
	shape.SetFriction(0.7)
	shape.SetElasticity(0.6)
	space.AddShape(shape)

	return &arena{space: space, ball: ball}
}

func (a *arena) step(dt float64) {
	a.space.Step(dt)
}
