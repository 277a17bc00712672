package domain

import "go.trai.ch/zerr"

var (
	// ErrNilGenerator is returned when a style registration is attempted without a style generator.
	ErrNilGenerator = zerr.New("style generator is nil")

	// ErrNilTheme is returned when a token binding is attempted without a theme.
	ErrNilTheme = zerr.New("theme is nil")

	// ErrUnknownKeyframes is returned when a component references keyframes the stylefile does not define.
	ErrUnknownKeyframes = zerr.New("unknown keyframes reference")

	// ErrConfigNotFound is returned when no stylefile is found in the directory or its parents.
	ErrConfigNotFound = zerr.New("could not find " + StylefileName)

	// ErrConfigReadFailed is returned when the stylefile cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read stylefile")

	// ErrConfigParseFailed is returned when the stylefile is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse stylefile")

	// ErrConfigInvalid is returned when the stylefile fails validation.
	ErrConfigInvalid = zerr.New("invalid stylefile")

	// ErrDuplicateComponent is returned when two components share the same name.
	ErrDuplicateComponent = zerr.New("duplicate component name")

	// ErrUnknownTransformer is returned when the stylefile names a transformer that does not exist.
	ErrUnknownTransformer = zerr.New("unknown transformer")

	// ErrUnknownLinter is returned when the stylefile names a linter that does not exist.
	ErrUnknownLinter = zerr.New("unknown linter")

	// ErrStoreCreateFailed is returned when the snapshot store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot store directory")

	// ErrStoreReadFailed is returned when a snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot")

	// ErrStoreUnmarshalFailed is returned when a snapshot cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal snapshot")

	// ErrStoreMarshalFailed is returned when a snapshot cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal snapshot")

	// ErrStoreWriteFailed is returned when a snapshot cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot")

	// ErrDocumentParseFailed is returned when an HTML document cannot be parsed.
	ErrDocumentParseFailed = zerr.New("failed to parse html document")

	// ErrDocumentRenderFailed is returned when an HTML document cannot be rendered.
	ErrDocumentRenderFailed = zerr.New("failed to render html document")

	// ErrOutputWriteFailed is returned when build output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrUnknownFormat is returned when an unsupported output format is requested.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'css', 'html' or 'document'")

	// ErrOutputRequired is returned when watch mode is started without an output file.
	ErrOutputRequired = zerr.New("watch needs an output file")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")
)
