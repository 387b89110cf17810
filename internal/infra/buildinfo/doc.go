// Package buildinfo provides build-time version information.
//
// Version, Commit and BuildTime are set through -ldflags -X. The Go version
// comes from the runtime, and missing VCS fields fall back to the stamp the
// toolchain embeds in the binary.
package buildinfo
