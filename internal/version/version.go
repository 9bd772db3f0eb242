package version

// Version is the toolkit release tag; overridden at build time via
// -ldflags "-X epirt/internal/version.Version=...".
var Version = "0.2.0"
