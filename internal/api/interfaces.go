package api

import "context"

// Service is the contract the UI controller and the CLI depend on.
type Service interface {
	// ListTitles returns every title known to the service, in service order.
	ListTitles(ctx context.Context) ([]string, error)

	// Recommend returns the titles recommended for title, in service order.
	// An empty result is not an error.
	Recommend(ctx context.Context, title string) ([]string, error)
}
