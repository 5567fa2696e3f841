package template

// SchemaName is the name the embedded item template schema is registered under
const SchemaName = "items.schema.json"

// ==================== Error Messages ====================

const (
	ErrMsgReadTemplateFailed  = "failed to read item template file: %w"
	ErrMsgParseTemplateFailed = "failed to parse item template: %w"
	ErrFmtSchemaFailed        = "%w: schema validation failed for %s: %v"
	ErrFmtDuplicateKey        = "%w: duplicate item key '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgTemplateLoaded = "Item templates loaded"
)
