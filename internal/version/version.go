package version

// Version is stamped at build time via -ldflags "-X dilemma/internal/version.Version=...".
var Version = "dev"
