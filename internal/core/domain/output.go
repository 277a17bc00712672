package domain

// LogFormat selects how log records are rendered.
type LogFormat string

// Log formats accepted by --log-format.
const (
	LogFormatAuto   LogFormat = "auto"
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// OutputFormat selects what a build writes.
type OutputFormat string

// Build output formats.
const (
	FormatCSS      OutputFormat = "css"
	FormatHTML     OutputFormat = "html"
	FormatDocument OutputFormat = "document"
)
