package compiler

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// writeOutputs writes every emitted file under outDir, atomically: each file
// is staged to a ".tmp" sibling and only renamed into place once every file
// in the batch has staged successfully, so a mid-write failure (a full disk,
// a permission error on the third file) never leaves a half-updated output
// tree from a previous, otherwise-successful build.
//
// When override is false, the whole batch is refused if any target path
// already exists, citing the first conflict found (in sorted path order, so
// the reported conflict is deterministic).
func writeOutputs(outDir string, files map[string]string, override bool) ([]string, error) {
	paths := make([]string, 0, len(files))
	for rel := range files {
		paths = append(paths, rel)
	}
	sort.Strings(paths)

	if !override {
		for _, rel := range paths {
			target := filepath.Join(outDir, rel)
			if _, err := os.Stat(target); err == nil {
				return nil, errors.Errorf("output file %s already exists (pass --override-old to overwrite)", target)
			}
		}
	}

	staged := make([]string, 0, len(paths))
	for _, rel := range paths {
		target := filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating directory for %s", target)
		}
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, []byte(files[rel]), 0o644); err != nil {
			return nil, errors.Wrapf(err, "staging %s", target)
		}
		staged = append(staged, tmp)
	}

	written := make([]string, 0, len(paths))
	for i, rel := range paths {
		target := filepath.Join(outDir, rel)
		if err := os.Rename(staged[i], target); err != nil {
			return written, errors.Wrapf(err, "finalizing %s", target)
		}
		written = append(written, target)
	}
	return written, nil
}
