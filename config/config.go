// Package config looks up the external configuration consulted when
// the shared logger instance is constructed.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/loaderkit/diaglog/core"
)

// EnvVar is the environment variable holding the debug verbosity
// keyword.
const EnvVar = "LOADER_DEBUG"

// Verbosity returns the severity union selected by the LOADER_DEBUG
// keyword. The keywords are cumulative: "error", "warn", "info", and
// "all"/"verbose" each enable everything the previous one does plus
// one more level. ok is false when the variable is unset or the
// keyword is not recognized.
func Verbosity() (severities core.Severity, ok bool) {
	v := viper.New()
	v.AutomaticEnv()

	return parseVerbosity(v.GetString(EnvVar))
}

func parseVerbosity(keyword string) (core.Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "error":
		return core.SeverityError, true
	case "warn":
		return core.SeverityError | core.SeverityWarning, true
	case "info":
		return core.SeverityError | core.SeverityWarning | core.SeverityInfo, true
	case "all", "verbose":
		return core.AllSeverities, true
	default:
		return 0, false
	}
}
