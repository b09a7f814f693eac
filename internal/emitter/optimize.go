package emitter

import "sort"

// inlineSingletons is the "singleton inline" pass (SPEC_FULL.md §5): a
// generated helper file whose body collapsed to exactly one line, and that
// isn't itself a user-declared interface, is folded into every call site and
// dropped. Declared interfaces keep their own file even when they collapse
// to one line, since they stay externally reachable by path. Bounded by
// --max-inline rounds so a pathological helper chain can't loop forever.
func inlineSingletons(r *renderer) {
	for round := 0; round < r.cfg.maxInline(); round++ {
		var candidates []string
		for p, lines := range r.files {
			if r.declared[p] || len(lines) != 1 {
				continue
			}
			candidates = append(candidates, p)
		}
		if len(candidates) == 0 {
			return
		}
		sort.Strings(candidates)

		changed := false
		for _, p := range candidates {
			lines, ok := r.files[p]
			if !ok || len(lines) != 1 {
				continue // already collapsed away this round
			}
			callLine := "function " + r.cfg.qualify(p)
			replacement := lines[0]
			used := false
			for other, otherLines := range r.files {
				if other == p {
					continue
				}
				for i, l := range otherLines {
					if l == callLine {
						otherLines[i] = replacement
						used = true
					}
				}
			}
			if used {
				delete(r.files, p)
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}
