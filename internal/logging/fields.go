package logging

// Field name constants for structured logging.
// Using constants prevents typos across call sites.
const (
	// Common fields.
	FieldError    = "error"
	FieldPath     = "path"
	FieldDocument = "document"

	// Buffer fields.
	FieldPosition = "position"
	FieldStart    = "start"
	FieldLength   = "length"
	FieldCount    = "count"
	FieldVersion  = "version"
	FieldPieces   = "pieces"

	// Style fields.
	FieldAxis = "axis"
	FieldRuns = "runs"
	FieldEnd  = "end"

	// Config fields.
	FieldLevel = "level"
	FieldKind  = "kind"
)
