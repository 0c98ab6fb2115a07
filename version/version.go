package version

// Version is the Major.Minor.Patch release tag, injected at
// build time via -ldflags - else 'dev' as a default
var Version string = "dev"
