// Package version reports which arcslider build is running. Release builds
// stamp it at link time:
//
//	go build -ldflags "-X github.com/garrettladley/arcslider/internal/version.version=v0.3.0" ./cmd/arcslider
//
// go install builds report the module version, and local builds fall back
// to the commit they were built from.
package version

import (
	"runtime/debug"
	"sync"
)

const (
	devel         = "devel"
	shortRevision = 7
)

var version = devel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != devel {
			return
		}
		if info, ok := debug.ReadBuildInfo(); ok {
			version = fromBuildInfo(info)
		}
	})
	return version
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "("+devel+")" {
		return v
	}

	var (
		revision string
		modified bool
	)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return devel
	}
	if len(revision) > shortRevision {
		revision = revision[:shortRevision]
	}
	v := devel + "+" + revision
	if modified {
		v += ".dirty"
	}
	return v
}
