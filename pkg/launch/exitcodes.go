package launch

// Launcher exit codes. These cover failures of the bootstrap itself;
// once delegation succeeds, the companion's exit code is forwarded
// verbatim and never drawn from this block.
const (
	ExitPanic          = 101
	ExitResolveError   = 102
	ExitLocateError    = 103
	ExitExecutionError = 104
	ExitInvalidArgs    = 105
	ExitIOError        = 106
)
