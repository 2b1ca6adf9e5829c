// Package invoker implements the outbound model-invocation strategies: a
// direct Anthropic Messages API client, an upstream relay client, and a mock
// that never leaves the process. The pipeline depends only on the Invoker
// interface so tests can inject doubles.
package invoker

import "context"

// Invoker sends a prompt to a text-generation backend and returns the raw
// response text. One outbound call per invocation; no retries.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
	Name() string
}
