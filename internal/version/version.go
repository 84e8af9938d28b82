package version

// Version is overridden at build time via -ldflags "-X mitocheck/internal/version.Version=...".
var Version = "0.3.0-dev"
