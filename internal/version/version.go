// Package version holds the build version, overridable at link time:
//
//	go build -ldflags "-X github.com/devbush/scribepad/internal/version.Version=v1.2.3"
package version

// Version is the current scribepad version
var Version = "0.1.0"
