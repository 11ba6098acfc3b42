package common

import "runtime/debug"

// Version reports the module version baked into the binary, falling back to
// the VCS revision for untagged builds.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
