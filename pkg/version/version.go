package version

// Version represents the current version of mundi
const Version = "1.2.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return "mundi version " + Version
}

// APIVersion returns just the version number for API responses
func APIVersion() string {
	return Version
}
