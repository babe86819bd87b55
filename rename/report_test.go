package rename

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summary struct {
	Results []struct {
		Old    string `yaml:"old"`
		New    string `yaml:"new"`
		Status string `yaml:"status"`
	} `yaml:"results"`
	Renamed int `yaml:"renamed"`
	Missing int `yaml:"missing"`
}

func TestWriteSummary(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "asset-toolkit")
	require.NoError(t, err)

	defer func() {
		t.Helper()

		err = os.RemoveAll(tempDir)
		require.NoError(t, err)
	}()

	err = os.WriteFile(filepath.Join(tempDir, "a.webp"), []byte("a"), 0600)
	require.NoError(t, err)

	mapping := Mapping{
		{Old: "a.webp", New: "b.webp"},
		{Old: "x.webp", New: "y.webp"},
	}

	var out strings.Builder

	renamer := Renamer{BaseDir: tempDir, Out: &out}

	report, err := renamer.Run(mapping)
	require.NoError(t, err)

	var buf strings.Builder

	err = report.WriteSummary(&buf)
	require.NoError(t, err)

	var s summary

	err = yaml.Unmarshal([]byte(buf.String()), &s)
	require.NoError(t, err)

	require.Len(t, s.Results, 2)
	assert.Equal(t, "a.webp", s.Results[0].Old)
	assert.Equal(t, "b.webp", s.Results[0].New)
	assert.Equal(t, "renamed", s.Results[0].Status)
	assert.Equal(t, "x.webp", s.Results[1].Old)
	assert.Equal(t, "missing", s.Results[1].Status)
	assert.Equal(t, 1, s.Renamed)
	assert.Equal(t, 1, s.Missing)
}

func TestSaveSummary(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "asset-toolkit")
	require.NoError(t, err)

	defer func() {
		t.Helper()

		err = os.RemoveAll(tempDir)
		require.NoError(t, err)
	}()

	report := &Report{}
	report.add(Entry{Old: "x.webp", New: "y.webp"}, StatusMissing)

	path := filepath.Join(tempDir, "summary.yaml")

	err = report.SaveSummary(path)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var s summary

	err = yaml.Unmarshal(contents, &s)
	require.NoError(t, err)

	require.Len(t, s.Results, 1)
	assert.Equal(t, "missing", s.Results[0].Status)
	assert.Equal(t, 1, s.Missing)
}
