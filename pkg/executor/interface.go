package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs the command and returns its stdout as text
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// Output runs the command and returns its raw stdout, for binary streams such as PCM
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// LookPath reports where name resolves on PATH
	LookPath(name string) (string, error)
}
