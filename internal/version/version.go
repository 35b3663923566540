package version

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/argoprssm/internal/version.Version=0.3.0"
var (
	// Version is the semantic version of the application
	Version = "0.3.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2025"
)

// String returns the version line printed by the CLI.
func String() string {
	return "argoprssm v" + Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
