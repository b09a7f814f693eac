package objects

// Coord is one axis of a Pos: either absolute (`12`) or relative to the
// executing position (`~`, `~3.5`).
type Coord struct {
	Value    float64
	Relative bool
}

// Abs is an absolute coordinate.
func Abs(v float64) Coord { return Coord{Value: v} }

// Rel is a `~`-relative coordinate.
func Rel(v float64) Coord { return Coord{Value: v, Relative: true} }

func (c Coord) String() string {
	if c.Relative {
		if c.Value == 0 {
			return "~"
		}
		return "~" + formatFloat(c.Value)
	}
	return formatFloat(c.Value)
}

func (c Coord) shift(d float64) Coord {
	return Coord{Value: c.Value + d, Relative: c.Relative}
}

// Pos is a world position: three independently absolute-or-relative axes.
type Pos struct {
	X, Y, Z Coord
}

func NewPos(x, y, z Coord) Pos { return Pos{X: x, Y: y, Z: z} }

func (p Pos) String() string {
	return p.X.String() + " " + p.Y.String() + " " + p.Z.String()
}

// Offset applies a pure numeric displacement, preserving each axis's
// absolute/relative-ness.
func (p Pos) Offset(o Offset) Pos {
	return Pos{X: p.X.shift(o.DX), Y: p.Y.shift(o.DY), Z: p.Z.shift(o.DZ)}
}

// Context is the `positioned <x> <y> <z>` execute subcommand for this
// position.
func (p Pos) Context() ExecuteSubcmd {
	return ExecuteSubcmd{Subcmd: "positioned", Args: p.String()}
}

// PositionedAs is the `positioned as <selector>` form used when a position
// is derived from an entity rather than literal coordinates.
func PositionedAs(selector string) ExecuteSubcmd {
	return ExecuteSubcmd{Subcmd: "positioned", Args: "as " + selector}
}

// Offset is a pure numeric displacement vector: unlike Pos it has no
// absolute/relative distinction per axis, matching spec.md §3's `Offset`
// type being distinct from `Pos`.
type Offset struct {
	DX, DY, DZ float64
}

func NewOffset(dx, dy, dz float64) Offset { return Offset{DX: dx, DY: dy, DZ: dz} }

func (o Offset) Add(other Offset) Offset {
	return Offset{DX: o.DX + other.DX, DY: o.DY + other.DY, DZ: o.DZ + other.DZ}
}

func (o Offset) Negate() Offset {
	return Offset{DX: -o.DX, DY: -o.DY, DZ: -o.DZ}
}

func (o Offset) String() string {
	return formatFloat(o.DX) + " " + formatFloat(o.DY) + " " + formatFloat(o.DZ)
}
