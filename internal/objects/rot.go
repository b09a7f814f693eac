package objects

// Rotation is Acacia's `Rot` compile-time geometry value, restored from
// objects/rotation.py's Rotation class: two components (vertical/xrot,
// horizontal/yrot), each either absolute or `~`-relative, accumulated as
// `execute rotated ...`/`execute facing ...` context rather than resolved
// eagerly, since the values may depend on an as-yet-unresolved executing
// entity.
type Rotation struct {
	Context []ExecuteSubcmd
}

// RotationFromEntity is `Rot(entity)`: rotation copied from an entity at
// command-execution time.
func RotationFromEntity(selector string) *Rotation {
	return &Rotation{Context: []ExecuteSubcmd{{Subcmd: "rotated", Args: "as " + selector}}}
}

// RotationAbsolute is `Rot(vertical, horizontal)`: a literal rotation.
func RotationAbsolute(vertical, horizontal float64) *Rotation {
	return &Rotation{Context: []ExecuteSubcmd{{
		Subcmd: "rotated",
		Args:   formatFloat(vertical) + " " + formatFloat(horizontal),
	}}}
}

// FaceEntity is `Rot.face_entity(target, anchor)`: rotation that aims at
// another entity. anchor is "eyes" or "feet" (DEFAULT_ANCHOR in the
// original is "eyes").
func FaceEntity(target, anchor string) *Rotation {
	if anchor == "" {
		anchor = "eyes"
	}
	return &Rotation{Context: []ExecuteSubcmd{{
		Subcmd: "facing",
		Args:   "entity " + target + " " + anchor,
	}}}
}

func (r *Rotation) Copy() *Rotation {
	ctx := make([]ExecuteSubcmd, len(r.Context))
	copy(ctx, r.Context)
	return &Rotation{Context: ctx}
}

func vhString(prefix string, v *float64) string {
	if v == nil {
		return "~"
	}
	return prefix + formatFloat(*v)
}

// Abs sets an absolute rotation; a nil component leaves that axis unchanged
// (`~`). Returns a new Rotation — rotations are immutable once built, same
// as the original's ImmutableMixin.
func (r *Rotation) Abs(vertical, horizontal *float64) *Rotation {
	return r.appendSetter("", vertical, horizontal)
}

// Offset rotates relative to the current rotation.
func (r *Rotation) Offset(vertical, horizontal *float64) *Rotation {
	return r.appendSetter("~", vertical, horizontal)
}

func (r *Rotation) appendSetter(prefix string, vertical, horizontal *float64) *Rotation {
	out := r.Copy()
	out.Context = append(out.Context, ExecuteSubcmd{
		Subcmd: "rotated",
		Args:   vhString(prefix, vertical) + " " + vhString(prefix, horizontal),
	})
	return out
}
