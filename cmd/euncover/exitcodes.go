package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad config file, invalid settings)
	ExitDataError   = 3 // Data error (missing or malformed dataset file)
	ExitNotFound    = 4 // Unknown MEP or no record for the MEP
	ExitIndexStale  = 5 // SQLite index missing or older than the fixtures
)
