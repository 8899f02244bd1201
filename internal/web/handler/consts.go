package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// MsgInternalServerError is the opaque message returned for any storage
	// failure. Internal detail is logged, never sent to the caller.
	MsgInternalServerError = "Internal server error"

	// MsgInvalidLimit is returned when the limit query parameter is not a number.
	MsgInvalidLimit = "Invalid limit parameter"

	// MsgInvalidParameters is returned when ticket listing path/query
	// parameters do not parse.
	MsgInvalidParameters = "Invalid parameters"
)
