package similarity

import "context"

// Scorer is the injected text-similarity capability the ranking core depends
// on but does not implement. Implementations must be deterministic for fixed
// inputs and return a finite score, nominally in [0, 1]. Any model loading or
// bootstrap happens before construction; a Scorer handed to the core is ready
// to use.
type Scorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}
