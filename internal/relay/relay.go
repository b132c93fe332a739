package relay

import "context"

// Provider is the boundary to the external text-completion service. Handlers
// depend on this interface so tests can substitute a stub.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
