// Package usecase implements the business logic for symbol list operations.
package usecase

import "context"

// SymbolRepository abstracts the source of the selectable symbol list.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	List(ctx context.Context) ([]string, error)
}

// SymbolUsecase provides business logic for symbol list operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListSymbols returns the selectable symbol codes.
func (u *SymbolUsecase) ListSymbols(ctx context.Context) ([]string, error) {
	return u.repo.List(ctx)
}
