// Package buildinfo exposes version information of the ossd binary.
//
// Values are injected via ldflags when available:
//
//	go build -ldflags "-X github.com/DistributedDoge/oss-directory/internal/infra/buildinfo.Version=v1.2.0"
//
// Otherwise the commit and Go version are taken from the module build
// information embedded by the Go toolchain.
package buildinfo
