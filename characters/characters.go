// Package characters holds the rename table for the character artwork files.
package characters

import (
	"regexp"

	"github.com/kxue43/asset-toolkit/rename"
)

// Canonical artwork names are of the form show_thomas_harold-percy-thomas_01.webp:
// the show slug, the character slugs joined by dashes, and a two-digit serial.
var canonicalRegex = regexp.MustCompile(`^show_[a-z0-9]+(?:-[a-z0-9]+)*_[a-z0-9]+(?:-[a-z0-9]+)*_\d{2}\.webp$`)

func IsCanonical(name string) bool {
	return canonicalRegex.MatchString(name)
}

// Table returns the rename instructions for artwork files that still carry
// their upload-time names. Entries are applied top to bottom.
func Table() rename.Mapping {
	return rename.Mapping{
		{Old: "ANewViewforThomaspromo4.webp", New: "show_thomas_harold-percy-thomas_01.webp"},
		{Old: "thomas-friends-gordon-hero.webp", New: "show_thomas_gordon_01.webp"},
		{Old: "IMG_20240312_percy_station.webp", New: "show_thomas_percy_01.webp"},
		{Old: "JamesRedEngineS22still.webp", New: "show_thomas_james_01.webp"},
		{Old: "emily_castShotCropped.webp", New: "show_thomas_emily_01.webp"},
		{Old: "PercyAndThomasTunnel2.webp", New: "show_thomas_percy-thomas_01.webp"},
	}
}
