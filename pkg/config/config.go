package config

// resolved configuration values from CLI flags, environment and config file
var (
	LogLevel     string // zap log level
	LogFormat    string // text vs json
	OutputFormat string // json vs text for command results
)

const (
	OutputJSON = "json"
	OutputText = "text"
)
