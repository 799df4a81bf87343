package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/xfiles/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/xfiles/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/xfiles/internal/version.Date={{.Date}}
)

// String returns a one-line description of the build
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
