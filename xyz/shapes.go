// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/pixelstudio/math32"
)

// Shape is the local geometry of a [Solid], before posing.
type Shape interface {

	// Mesh returns the triangulated shape in local coordinates.
	Mesh() *Mesh
}

// Box is a rectangular-shaped solid (cuboid) centered at the origin.
type Box struct {

	// Size along each dimension.
	Size math32.Vector3
}

// NewBox returns a Box shape with given size.
func NewBox(width, height, depth float32) *Box {
	return &Box{Size: math32.Vec3(width, height, depth)}
}

// Mesh implements [Shape].
func (bx *Box) Mesh() *Mesh {
	h := bx.Size.DivScalar(2)
	ms := &Mesh{}
	for axis := range 3 {
		for _, sign := range []float32{-1, 1} {
			// corner builds a point on this face from coordinates on the two other axes
			corner := func(u, v float32) math32.Vector3 {
				switch axis {
				case 0:
					return math32.Vec3(sign*h.X, u*h.Y, v*h.Z)
				case 1:
					return math32.Vec3(u*h.X, sign*h.Y, v*h.Z)
				}
				return math32.Vec3(u*h.X, v*h.Y, sign*h.Z)
			}
			n := math32.Vector3{}
			switch axis {
			case 0:
				n.X = sign
			case 1:
				n.Y = sign
			default:
				n.Z = sign
			}
			ms.AddQuad(corner(-1, -1), corner(1, -1), corner(1, 1), corner(-1, 1), n)
		}
	}
	return ms
}

// Torus is a ring lying in the XY plane around the Z axis.
type Torus struct {

	// Radius is the distance from the center of the torus to the
	// center of the tube.
	Radius float32

	// Tube is the radius of the tube.
	Tube float32

	// RadialSegs is the number of segments around the tube.
	RadialSegs int

	// TubularSegs is the number of segments around the ring.
	TubularSegs int
}

// Mesh implements [Shape].
func (tr *Torus) Mesh() *Mesh {
	radial := max(3, tr.RadialSegs)
	tubular := max(3, tr.TubularSegs)
	ms := &Mesh{}
	for j := 0; j <= radial; j++ {
		v := float32(j) / float32(radial) * 2 * math32.Pi
		for i := 0; i <= tubular; i++ {
			u := float32(i) / float32(tubular) * 2 * math32.Pi
			r := tr.Radius + tr.Tube*math32.Cos(v)
			p := math32.Vec3(r*math32.Cos(u), r*math32.Sin(u), tr.Tube*math32.Sin(v))
			c := math32.Vec3(tr.Radius*math32.Cos(u), tr.Radius*math32.Sin(u), 0)
			ms.addVertex(p, p.Sub(c).Normal())
		}
	}
	row := uint32(tubular + 1)
	for j := 1; j <= radial; j++ {
		for i := 1; i <= tubular; i++ {
			a := row*uint32(j) + uint32(i) - 1
			b := row*uint32(j-1) + uint32(i) - 1
			c := row*uint32(j-1) + uint32(i)
			d := row*uint32(j) + uint32(i)
			ms.Indices = append(ms.Indices, a, b, d, b, c, d)
		}
	}
	return ms
}

// Extrusion is a flat ring-shaped outline in the XY plane extruded
// along +Z from 0 to Depth. The hole must have the same number of points
// as the outer outline, with hole point i facing outer point i, so that
// the face between them is a strip of quads.
type Extrusion struct {

	// Outer is the closed outer outline, without a repeated first point.
	Outer []math32.Vector2

	// Hole is the closed inner outline matching Outer point for point.
	Hole []math32.Vector2

	// Depth is the extrusion depth.
	Depth float32
}

// signedArea returns twice the signed area of the closed outline,
// which is positive for counter-clockwise outlines.
func signedArea(pts []math32.Vector2) float32 {
	var a float32
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// Mesh implements [Shape].
func (ex *Extrusion) Mesh() *Mesh {
	ms := &Mesh{}
	n := len(ex.Outer)
	if n < 3 || len(ex.Hole) != n {
		return ms
	}
	outer, hole := ex.Outer, ex.Hole
	if signedArea(outer) < 0 {
		outer, hole = reversed(outer), reversed(hole)
	}
	at := func(p math32.Vector2, z float32) math32.Vector3 {
		return math32.Vec3(p.X, p.Y, z)
	}
	up, down := math32.Vec3(0, 0, 1), math32.Vec3(0, 0, -1)
	for i := range n {
		j := (i + 1) % n
		o0, o1, h0, h1 := outer[i], outer[j], hole[i], hole[j]
		// caps
		ms.AddQuad(at(o0, ex.Depth), at(o1, ex.Depth), at(h1, ex.Depth), at(h0, ex.Depth), up)
		ms.AddQuad(at(o0, 0), at(o1, 0), at(h1, 0), at(h0, 0), down)
		// outer wall faces away from the outline, inner wall towards its center
		on := math32.Vec3(o1.Y-o0.Y, o0.X-o1.X, 0).Normal()
		ms.AddQuad(at(o0, 0), at(o1, 0), at(o1, ex.Depth), at(o0, ex.Depth), on)
		hn := math32.Vec3(h0.Y-h1.Y, h1.X-h0.X, 0).Normal()
		ms.AddQuad(at(h0, 0), at(h1, 0), at(h1, ex.Depth), at(h0, ex.Depth), hn)
	}
	return ms
}

func reversed(pts []math32.Vector2) []math32.Vector2 {
	out := make([]math32.Vector2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// SquareRing returns the outlines of a square frame centered at the
// origin with the given outer and inner sides.
func SquareRing(outer, inner float32) (out, hole []math32.Vector2) {
	sq := func(s float32) []math32.Vector2 {
		h := s / 2
		return []math32.Vector2{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	}
	return sq(outer), sq(inner)
}

// DiamondRing returns the outlines of a square frame rotated 45 degrees,
// centered at the origin, with the given outer and inner diagonals.
func DiamondRing(outer, inner float32) (out, hole []math32.Vector2) {
	dm := func(s float32) []math32.Vector2 {
		h := s / 2
		return []math32.Vector2{{0, -h}, {h, 0}, {0, h}, {-h, 0}}
	}
	return dm(outer), dm(inner)
}

// HeartSegments is the number of points sampled on each of the two
// curves of a heart outline.
const HeartSegments = 24

// HeartRing returns the outline of a heart of the given size and its
// hole, a heart scaled by 0.55 and shifted down by 0.02*size.
func HeartRing(size float32) (out, hole []math32.Vector2) {
	return heart(size, 0), heart(size*0.55, -0.02*size)
}

// heart samples the two cubic Bezier halves of a heart outline.
func heart(s, oy float32) []math32.Vector2 {
	p := func(x, y float32) math32.Vector2 { return math32.Vec2(x*s, y*s+oy) }
	start, top := p(0, -0.2), p(0, 1.2)
	pts := make([]math32.Vector2, 0, 2*HeartSegments)
	pts = appendBezier(pts, start, p(0.9, -0.9), p(1.25, 0.45), top)
	pts = appendBezier(pts, top, p(-1.25, 0.45), p(-0.9, -0.9), start)
	return pts
}

// appendBezier appends the cubic Bezier from p0 to p3 sampled at
// [HeartSegments] points, excluding p3.
func appendBezier(pts []math32.Vector2, p0, p1, p2, p3 math32.Vector2) []math32.Vector2 {
	for i := range HeartSegments {
		t := float32(i) / HeartSegments
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		pts = append(pts, math32.Vec2(
			a*p0.X+b*p1.X+c*p2.X+d*p3.X,
			a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y))
	}
	return pts
}
