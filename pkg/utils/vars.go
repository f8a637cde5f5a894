package utils

const (
	debug            = "DEBUG"
	logLevel         = "LOG_LEVEL"
	OutputVar        = "VSPROF_OUTPUT"
	ResolutionVar    = "VSPROF_RESOLUTION"
	FlushIntervalVar = "VSPROF_FLUSH_INTERVAL"
	ConfigVar        = "VSPROF_CONFIG"
)

func DebugEnabled() bool {
	return BoolFromEnv(debug)
}

func LogLevel() string {
	return FromEnv(logLevel, "")
}
