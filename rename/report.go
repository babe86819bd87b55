package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

type (
	Status string

	Result struct {
		Old    string `yaml:"old"`
		New    string `yaml:"new"`
		Status Status `yaml:"status"`
	}

	// Report aggregates the outcome of one run, in mapping order.
	Report struct {
		Results []Result `yaml:"results"`
		Renamed int      `yaml:"renamed"`
		Missing int      `yaml:"missing"`
	}
)

const (
	StatusRenamed Status = "renamed"
	StatusMissing Status = "missing"
)

func (rp *Report) add(e Entry, s Status) {
	rp.Results = append(rp.Results, Result{Old: e.Old, New: e.New, Status: s})

	switch s {
	case StatusRenamed:
		rp.Renamed++
	case StatusMissing:
		rp.Missing++
	}
}

// WriteSummary writes the report as a YAML document.
func (rp *Report) WriteSummary(w io.Writer) error {
	contents, err := yaml.Marshal(rp)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary as YAML: %w", err)
	}

	_, err = w.Write(contents)

	return err
}

// SaveSummary writes the YAML summary to a file, replacing any previous one.
func (rp *Report) SaveSummary(path string) (err error) {
	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create summary file %q: %w", path, err)
	}

	defer func() { _ = fd.Close() }()

	if err = rp.WriteSummary(fd); err != nil {
		return fmt.Errorf("failed to write summary to %q: %w", path, err)
	}

	return nil
}
