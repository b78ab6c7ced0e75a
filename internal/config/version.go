package config

// Version is the atna binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/atna/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
