// Package buildinfo carries version metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/minibank-dev/minibank/internal/buildinfo.Version=v0.1.0"
package buildinfo

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
