package version

import (
	"runtime/debug"
	"strings"
)

// FromBuildInfo reports the VCS revision and timestamp baked into the binary.
func FromBuildInfo() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	var revision, ts, modified string

	for i := range info.Settings {
		switch info.Settings[i].Key {
		case "vcs.revision":
			revision = info.Settings[i].Value
		case "vcs.time":
			ts = info.Settings[i].Value
		case "vcs.modified":
			modified = info.Settings[i].Value
		default:
			continue
		}
	}

	if revision == "" {
		return "unavailable"
	}

	var b strings.Builder

	b.WriteString("revision " + revision)

	if ts != "" {
		b.WriteString(" at " + ts)
	}

	if modified == "true" {
		b.WriteString(" (dirty)")
	}

	return b.String()
}
