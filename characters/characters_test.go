package characters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsValid(t *testing.T) {
	table := Table()

	require.NotEmpty(t, table)
	require.NoError(t, table.Validate())

	for _, e := range table {
		assert.True(t, IsCanonical(e.New), "new name %q does not follow the artwork naming scheme", e.New)
	}
}

func TestIsCanonical(t *testing.T) {
	canonical := []string{
		"show_thomas_harold-percy-thomas_01.webp",
		"show_thomas_gordon_12.webp",
		"show_paw-patrol_chase_03.webp",
	}
	for _, name := range canonical {
		assert.True(t, IsCanonical(name), name)
	}

	notCanonical := []string{
		"ANewViewforThomaspromo4.webp",
		"show_thomas_gordon_1.webp",
		"show_thomas_gordon_01.png",
		"show_Thomas_gordon_01.webp",
		"thomas_gordon_01.webp",
		"show_thomas__01.webp",
	}
	for _, name := range notCanonical {
		assert.False(t, IsCanonical(name), name)
	}
}
