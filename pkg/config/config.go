package config

// this holds the resolved configuration values from CLI
var (
	ServerAddr        string // listen addr for the HTTP API server
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogConfig         string // path to log config file
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry
	ProfilingPort     int    // port for profiling
	TrackFile         string // optional track definition file overriding the built-in set
	WatchTrackFile    bool   // reload the track file on change
)
