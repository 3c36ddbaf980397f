package logger

// Standard field names for consistent structured logging across enumgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldModule     = "module"
	FieldFile       = "file"
	FieldPath       = "path"
	FieldRoot       = "root"
	FieldEnum       = "enum"
	FieldCount      = "count"
	FieldStatus     = "status"
	FieldSource     = "source"
	FieldError      = "error"
	FieldDurationMS = "duration_ms"
)
