package objects

import (
	"fmt"
	"strings"
)

// Selector is the accumulated `@<var>[...]` predicate state behind one
// EntityFilter snapshot. Simplified from the original's MCSelector +
// multi-stage tag-chaining dance (entity_filter.py's `_new_data`/`dump`,
// which re-tags intermediate selections across /execute boundaries): this
// port only supports predicates expressible on one selector, which is every
// EntityFilter chain that doesn't mix `random`/`nearest_from` with a later
// predicate that Bedrock's selector grammar can't itself express — the
// multi-stage split is future work, noted in DESIGN.md.
type Selector struct {
	Var string

	Type    string
	TypeNeg []string

	Tags    []string
	TagsNeg []string

	Name    string
	NameNeg []string

	DistMin, DistMax *float64
	Dx, Dy, Dz       *float64

	RxMin, RxMax *float64
	RyMin, RyMax *float64

	ScoresObj   []string
	ScoresRange []string

	Limit *int // negative selects farthest-first (c=-N)
}

func (s *Selector) clone() *Selector {
	c := *s
	c.TypeNeg = append([]string(nil), s.TypeNeg...)
	c.Tags = append([]string(nil), s.Tags...)
	c.TagsNeg = append([]string(nil), s.TagsNeg...)
	c.NameNeg = append([]string(nil), s.NameNeg...)
	c.ScoresObj = append([]string(nil), s.ScoresObj...)
	c.ScoresRange = append([]string(nil), s.ScoresRange...)
	return &c
}

// String renders the selector's arguments in Bedrock's documented
// acceptance order: type/tag predicates, then distance/volume bounds, then
// c=/sort (SPEC_FULL.md §5's grounding note for entityfilter).
func (s *Selector) String() string {
	v := s.Var
	if v == "" {
		v = "e"
	}
	var args []string
	if s.Type != "" {
		args = append(args, "type="+s.Type)
	}
	for _, t := range s.TypeNeg {
		args = append(args, "type=!"+t)
	}
	for _, t := range s.Tags {
		args = append(args, "tag="+t)
	}
	for _, t := range s.TagsNeg {
		args = append(args, "tag=!"+t)
	}
	if s.Name != "" {
		args = append(args, "name="+s.Name)
	}
	for _, n := range s.NameNeg {
		args = append(args, "name=!"+n)
	}
	if s.DistMin != nil || s.DistMax != nil {
		args = append(args, "distance="+rangeArg(s.DistMin, s.DistMax))
	}
	if s.Dx != nil {
		args = append(args, "dx="+formatFloat(*s.Dx))
	}
	if s.Dy != nil {
		args = append(args, "dy="+formatFloat(*s.Dy))
	}
	if s.Dz != nil {
		args = append(args, "dz="+formatFloat(*s.Dz))
	}
	if s.RxMin != nil || s.RxMax != nil {
		args = append(args, "rx="+rangeArg(s.RxMin, s.RxMax))
	}
	if s.RyMin != nil || s.RyMax != nil {
		args = append(args, "ry="+rangeArg(s.RyMin, s.RyMax))
	}
	for i, obj := range s.ScoresObj {
		args = append(args, fmt.Sprintf("scores={%s=%s}", obj, s.ScoresRange[i]))
	}
	if s.Limit != nil {
		args = append(args, fmt.Sprintf("c=%d", *s.Limit))
	}
	if len(args) == 0 {
		return "@" + v
	}
	return "@" + v + "[" + strings.Join(args, ",") + "]"
}

func rangeArg(min, max *float64) string {
	lo, hi := "", ""
	if min != nil {
		lo = formatFloat(*min)
	}
	if max != nil {
		hi = formatFloat(*max)
	}
	return lo + ".." + hi
}

// EntityFilter is `Enfilter`: a chainable, immutable predicate builder that
// freezes into one selector string at evaluation (SPEC_FULL.md §5,
// mccmdgen/expression/entity_filter.py's EntityFilter).
type EntityFilter struct {
	sel *Selector
}

func NewEnfilter() *EntityFilter {
	return &EntityFilter{sel: &Selector{Var: "e"}}
}

func (f *EntityFilter) with(edit func(*Selector)) *EntityFilter {
	next := f.sel.clone()
	edit(next)
	return &EntityFilter{sel: next}
}

func (f *EntityFilter) AllPlayers() *EntityFilter {
	return f.with(func(s *Selector) { s.Var = "a" })
}

func (f *EntityFilter) Random(entityType string, limit int) *EntityFilter {
	return f.with(func(s *Selector) {
		s.Var = "r"
		if s.Type == "" {
			s.Type = entityType
		}
		s.Limit = &limit
	})
}

func (f *EntityFilter) NearestFrom(limit int) *EntityFilter {
	return f.with(func(s *Selector) {
		s.Var = "e"
		s.Limit = &limit
	})
}

func (f *EntityFilter) FarthestFrom(limit int) *EntityFilter {
	return f.with(func(s *Selector) {
		s.Var = "e"
		neg := -limit
		s.Limit = &neg
	})
}

func (f *EntityFilter) HasTag(tags ...string) *EntityFilter {
	return f.with(func(s *Selector) { s.Tags = append(s.Tags, tags...) })
}

func (f *EntityFilter) HasNoTag(tags ...string) *EntityFilter {
	return f.with(func(s *Selector) { s.TagsNeg = append(s.TagsNeg, tags...) })
}

func (f *EntityFilter) DistanceFrom(min, max *float64) *EntityFilter {
	return f.with(func(s *Selector) { s.DistMin, s.DistMax = min, max })
}

func (f *EntityFilter) IsType(t string) *EntityFilter {
	return f.with(func(s *Selector) { s.Type = t })
}

func (f *EntityFilter) IsNotType(types ...string) *EntityFilter {
	return f.with(func(s *Selector) { s.TypeNeg = append(s.TypeNeg, types...) })
}

func (f *EntityFilter) Inside(dx, dy, dz float64) *EntityFilter {
	return f.with(func(s *Selector) { s.Dx, s.Dy, s.Dz = &dx, &dy, &dz })
}

func (f *EntityFilter) RotVertical(min, max float64) *EntityFilter {
	return f.with(func(s *Selector) { s.RxMin, s.RxMax = &min, &max })
}

func (f *EntityFilter) RotHorizontal(min, max float64) *EntityFilter {
	return f.with(func(s *Selector) { s.RyMin, s.RyMax = &min, &max })
}

func (f *EntityFilter) IsName(name string) *EntityFilter {
	return f.with(func(s *Selector) { s.Name = name })
}

func (f *EntityFilter) IsNotName(names ...string) *EntityFilter {
	return f.with(func(s *Selector) { s.NameNeg = append(s.NameNeg, names...) })
}

func (f *EntityFilter) Scores(objective, rng string) *EntityFilter {
	return f.with(func(s *Selector) {
		s.ScoresObj = append(s.ScoresObj, objective)
		s.ScoresRange = append(s.ScoresRange, rng)
	})
}

func (f *EntityFilter) Limit(n int) *EntityFilter {
	return f.with(func(s *Selector) { s.Limit = &n })
}

// String freezes the filter into its final `@e[...]` selector text.
func (f *EntityFilter) String() string {
	return f.sel.String()
}
