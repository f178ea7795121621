package item

// SchemaName is the name the embedded stock file schema is registered under
const SchemaName = "items.schema.json"

// CurrentVersion is the only stock file version this loader reads
const CurrentVersion = "1.0"

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgRegisterSchemaFailed = "failed to register items schema: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil        = "config is nil"
	ErrFmtItemAtIndexEmpty = "%w: item at index %d has empty name"
)
