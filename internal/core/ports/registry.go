// Package ports defines the core interfaces for the application.
package ports

import "context"

// RegistryClient fetches documents from the JSR registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type RegistryClient interface {
	// FetchBytes retrieves the raw body at url. A non-2xx response or a
	// transport error yields domain.ErrFetchFailed annotated with the URL.
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}
