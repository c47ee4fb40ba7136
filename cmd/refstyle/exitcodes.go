package main

// Exit codes used by refstyle commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing repository, bad style table)
	ExitDataError   = 3 // Data error (malformed names, unparseable BibTeX)
	ExitNetwork     = 4 // Network error (doi.org unreachable, rate limited)
)
