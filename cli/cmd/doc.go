// Package cmd provides the arprof subcommands.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file, without extension.
	ConfigIdentifier = "config"

	// SeverityIdentifier is the kong variable identifier containing the
	// comma-separated severity names accepted by --level.
	SeverityIdentifier = "severityEnum"
)
