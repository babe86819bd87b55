// Package rename applies an ordered table of filename renames inside a base directory.
package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type (
	// Entry is a single rename instruction. Both names are bare filenames,
	// resolved against the base directory at run time.
	Entry struct {
		Old string
		New string
	}

	// Mapping is an ordered list of entries. Entries are applied top to bottom.
	Mapping []Entry

	Renamer struct {
		Out     io.Writer
		BaseDir string
	}
)

// Validate rejects duplicate source names and names that are not bare filenames.
func (m Mapping) Validate() error {
	seen := make(map[string]struct{}, len(m))

	for _, e := range m {
		if e.Old == "" || e.New == "" {
			return fmt.Errorf("mapping entry %q -> %q has an empty name", e.Old, e.New)
		}

		if strings.ContainsRune(e.Old, os.PathSeparator) || strings.ContainsRune(e.New, os.PathSeparator) {
			return fmt.Errorf("mapping entry %q -> %q is not a bare filename", e.Old, e.New)
		}

		if _, ok := seen[e.Old]; ok {
			return fmt.Errorf("duplicate source name %q in mapping", e.Old)
		}

		seen[e.Old] = struct{}{}
	}

	return nil
}

// ExecutableDir returns the directory containing the running executable,
// with symlinks resolved. It is the default base directory.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate the running executable: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks of executable path %q: %w", exe, err)
	}

	return filepath.Dir(exe), nil
}

// Run applies the mapping in order. An entry whose source file is absent is
// reported as missing and skipped. A failed rename aborts the run right away,
// leaving earlier renames in place. The destination is never checked first;
// os.Rename replaces an existing destination file on POSIX systems.
func (r *Renamer) Run(m Mapping) (*Report, error) {
	report := &Report{Results: make([]Result, 0, len(m))}

	for _, e := range m {
		oldPath := filepath.Clean(filepath.Join(r.BaseDir, e.Old))
		newPath := filepath.Clean(filepath.Join(r.BaseDir, e.New))

		if _, err := os.Stat(oldPath); err != nil {
			if !os.IsNotExist(err) {
				return report, fmt.Errorf("failed to stat %q: %w", oldPath, err)
			}

			_, _ = fmt.Fprintf(r.Out, "Missing: %s\n", e.Old)

			report.add(e, StatusMissing)

			continue
		}

		if err := os.Rename(oldPath, newPath); err != nil {
			return report, fmt.Errorf("failed to rename %q to %q: %w", e.Old, e.New, err)
		}

		_, _ = fmt.Fprintf(r.Out, "Renamed: %s -> %s\n", e.Old, e.New)

		report.add(e, StatusRenamed)
	}

	return report, nil
}
