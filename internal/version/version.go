// Package version holds the application version string.
package version

// Version is the current application version.
const Version = "1.0.0"
