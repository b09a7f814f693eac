// Package fs holds small filesystem predicates. No other package imports
// it; the module loader calls os.Stat itself.
package fs

import "os"

// IsValidFile reports whether filename exists and is a regular file.
func IsValidFile(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
