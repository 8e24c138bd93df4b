package adapter

import "context"

// ReportCache stores assembled reports keyed by report kind and parameters.
type ReportCache interface {
	// Get decodes the cached value for key into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key string, value any) error
}
