// Package geometry turns a maze into a list of 3D quads: wall tops, sloped
// wall faces, outer edges and floors.
//
// Every room is a 1x1x1 cell with room (x, y) placed at (x, height-y, 0), so
// the first row of the maze has the largest Y. Walls are 1 high; the floor,
// if built, lies at Z=0 and extends down by the floor thickness.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"darkmaze/pkg/engine/maze"
)

// ErrInvalidParameter is returned by Build for out of range parameters
var ErrInvalidParameter = errors.New("invalid geometry parameter")

// Flags select the parts of the mesh to build
type Flags uint8

const (
	FlagWalls   Flags = 1 << iota // sloped faces and outer edges of walls
	FlagFloor                     // room floors
	FlagTop                       // wall tops
	FlagTexture                   // texture coordinates on every vertex

	FlagAll = FlagWalls | FlagFloor | FlagTop | FlagTexture
)

// Kind tells what part of the maze a quad belongs to
type Kind uint8

const (
	KindTop Kind = iota
	KindSlope
	KindEdge
	KindFloor
	KindFloorBottom
)

var kindNames = [...]string{"top", "slope", "edge", "floor", "floor bottom"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Vec3 is a point or direction in mesh space
type Vec3 struct {
	X, Y, Z float64
}

// Vertex is a quad corner with its texture coordinates
type Vertex struct {
	Vec3
	U, V float64
}

// Quad is a planar four sided polygon, vertices in drawing order
type Quad struct {
	Kind     Kind
	Room     maze.Position
	Normal   Vec3
	Vertices [4]Vertex
}

// Bounds returns the axis aligned box holding the quad
func (q Quad) Bounds() (lo, hi Vec3) {
	lo, hi = q.Vertices[0].Vec3, q.Vertices[0].Vec3
	for _, v := range q.Vertices[1:] {
		lo = Vec3{math.Min(lo.X, v.X), math.Min(lo.Y, v.Y), math.Min(lo.Z, v.Z)}
		hi = Vec3{math.Max(hi.X, v.X), math.Max(hi.Y, v.Y), math.Max(hi.Z, v.Z)}
	}
	return lo, hi
}

// Mesh is the output of Build
type Mesh struct {
	Quads    []Quad
	Textured bool
}

// Count returns the number of quads of kind k
func (m Mesh) Count(k Kind) int {
	n := 0
	for _, q := range m.Quads {
		if q.Kind == k {
			n++
		}
	}
	return n
}

// Params controls Build
type Params struct {
	// WallWidth is the thickness of the top of a wall, in (0, 1)
	WallWidth float64

	// SlopeWidth is how much further a wall reaches into the room at its foot
	SlopeWidth float64

	// FloorThickness is the depth of the floor below Z=0
	FloorThickness float64

	// Rooms within D of (CX, CY) on both axes are built
	CX, CY, D int

	Flags Flags
}

// DefaultParams builds the whole of a width x height maze
func DefaultParams(width, height int) Params {
	return Params{
		WallWidth:  0.2,
		SlopeWidth: 0.05,
		CX:         width / 2,
		CY:         height / 2,
		D:          max(width, height),
		Flags:      FlagAll,
	}
}

// Validate checks the parameters
func (p Params) Validate() error {
	switch {
	case !(p.WallWidth > 0 && p.WallWidth < 1):
		return fmt.Errorf("%w: wall width %v", ErrInvalidParameter, p.WallWidth)
	case !(p.SlopeWidth >= 0):
		return fmt.Errorf("%w: slope width %v", ErrInvalidParameter, p.SlopeWidth)
	case !(p.FloorThickness >= 0):
		return fmt.Errorf("%w: floor thickness %v", ErrInvalidParameter, p.FloorThickness)
	case p.D < 0:
		return fmt.Errorf("%w: distance %d", ErrInvalidParameter, p.D)
	case p.Flags&^FlagAll != 0:
		return fmt.Errorf("%w: flags %#x", ErrInvalidParameter, uint8(p.Flags))
	}
	return nil
}

// side is one of the four walls of a room, built in its own frame where the
// wall runs along the bottom edge and the corner sits at the bottom left
type side struct {
	wall   maze.Wall
	corner maze.Corner
	turns  int // quarter turns clockwise from the frame to the room
}

// sides in building order
var sides = [...]side{
	{maze.WallDown, maze.CornerDownLeft, 0},
	{maze.WallLeft, maze.CornerUpLeft, 1},
	{maze.WallUp, maze.CornerUpRight, 2},
	{maze.WallRight, maze.CornerDownRight, 3},
}

// isEdge returns true if s of room (x, y) is on the outline of the maze
func (s side) isEdge(t maze.Topology, x, y int) bool {
	switch s.wall {
	case maze.WallDown:
		return y == t.Height()-1
	case maze.WallLeft:
		return x == 0
	case maze.WallUp:
		return y == 0
	default:
		return x == t.Width()-1
	}
}

// Build creates the quads of the rooms of t around (p.CX, p.CY).
//
// For every side of a room a corner piece is built when the corner ahead of
// it protrudes; otherwise a wall piece is built if the side is closed, with
// an outer face when the side lies on the maze outline.
func Build(t maze.Topology, p Params) (Mesh, error) {
	if err := p.Validate(); err != nil {
		return Mesh{}, err
	}

	b := builder{params: p, height: t.Height()}
	b.mesh.Textured = p.Flags&FlagTexture != 0

	for y := max(p.CY-p.D, 0); y <= min(p.CY+p.D, t.Height()-1); y++ {
		for x := max(p.CX-p.D, 0); x <= min(p.CX+p.D, t.Width()-1); x++ {
			b.room(t, x, y)
		}
	}

	return b.mesh, nil
}

type builder struct {
	params Params
	height int
	mesh   Mesh

	// current room and side frame
	x, y  int
	turns int
}

func (b *builder) room(t maze.Topology, x, y int) {
	b.x, b.y = x, y

	for _, s := range sides {
		b.turns = s.turns
		switch {
		case t.IsCornerOut(x, y, s.corner):
			b.corner()
		case !t.IsOpen(x, y, s.wall):
			b.wall(s.isEdge(t, x, y))
		}
	}

	if b.params.Flags&FlagFloor == 0 {
		return
	}
	b.turns = 0
	b.quad(KindFloor, Vec3{0, 0, 1},
		Vec3{0, 1, 0}, Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{1, 1, 0})
	if d := b.params.FloorThickness; d > 0 {
		b.quad(KindFloorBottom, Vec3{0, 0, -1},
			Vec3{0, 0, -d}, Vec3{0, 1, -d}, Vec3{1, 1, -d}, Vec3{1, 0, -d})
	}
}

// wall builds a wall along the bottom of the side frame
func (b *builder) wall(edge bool) {
	ww, sw := b.params.WallWidth, b.params.SlopeWidth

	if b.params.Flags&FlagTop != 0 {
		b.quad(KindTop, Vec3{0, 0, 1},
			Vec3{0, ww, 1}, Vec3{0, 0, 1}, Vec3{1, 0, 1}, Vec3{1, ww, 1})
	}
	if b.params.Flags&FlagWalls == 0 {
		return
	}
	b.quad(KindSlope, slopeNormal(Vec3{0, 1, 0}, sw),
		Vec3{0, ww, 1}, Vec3{1, ww, 1}, Vec3{1, ww + sw, 0}, Vec3{0, ww + sw, 0})
	if edge {
		b.quad(KindEdge, Vec3{0, -1, 0},
			Vec3{0, 0, 1}, Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{1, 0, 1})
	}
}

// corner builds a corner post in the bottom left of the side frame
func (b *builder) corner() {
	ww, sw := b.params.WallWidth, b.params.SlopeWidth

	if b.params.Flags&FlagTop != 0 {
		b.quad(KindTop, Vec3{0, 0, 1},
			Vec3{0, ww, 1}, Vec3{0, 0, 1}, Vec3{ww, 0, 1}, Vec3{ww, ww, 1})
	}
	if b.params.Flags&FlagWalls == 0 {
		return
	}
	b.quad(KindSlope, slopeNormal(Vec3{0, 1, 0}, sw),
		Vec3{0, ww, 1}, Vec3{ww, ww, 1}, Vec3{ww + sw, ww + sw, 0}, Vec3{0, ww + sw, 0})
	b.quad(KindSlope, slopeNormal(Vec3{1, 0, 0}, sw),
		Vec3{ww, ww, 1}, Vec3{ww, 0, 1}, Vec3{ww + sw, 0, 0}, Vec3{ww + sw, ww + sw, 0})
}

// slopeNormal returns the unit normal of a face leaning away from out by
// slope horizontal units per unit of height
func slopeNormal(out Vec3, slope float64) Vec3 {
	n := Vec3{out.X, out.Y, slope}
	l := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	return Vec3{n.X / l, n.Y / l, n.Z / l}
}

// texture coordinates of the four vertices of a quad
var texCoords = [4][2]float64{{0, 1}, {0, 0}, {1, 0}, {1, 1}}

// quad adds a quad given in the current side frame
func (b *builder) quad(kind Kind, normal Vec3, v0, v1, v2, v3 Vec3) {
	q := Quad{
		Kind:   kind,
		Room:   maze.Position{X: b.x, Y: b.y},
		Normal: b.rotate(normal, false),
	}
	for i, v := range [4]Vec3{v0, v1, v2, v3} {
		p := b.rotate(v, true)
		p.X += float64(b.x)
		p.Y += float64(b.height - b.y)
		q.Vertices[i].Vec3 = p
		if b.mesh.Textured {
			q.Vertices[i].U, q.Vertices[i].V = texCoords[i][0], texCoords[i][1]
		}
	}
	b.mesh.Quads = append(b.mesh.Quads, q)
}

// rotate turns v clockwise by the current number of quarter turns, around
// the room centre for points and around the origin for directions
func (b *builder) rotate(v Vec3, point bool) Vec3 {
	for i := 0; i < b.turns; i++ {
		if point {
			v.X, v.Y = v.Y, 1-v.X
		} else {
			v.X, v.Y = v.Y, -v.X
		}
	}
	return v
}
