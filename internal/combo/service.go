package combo

import (
	"context"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
)

type Service struct {
	catalog catalog.Repository
}

func NewService(catalogRepo catalog.Repository) *Service {
	return &Service{catalog: catalogRepo}
}

// Suggest runs the budget search over the live menu.
func (s *Service) Suggest(
	ctx context.Context,
	budget int,
	exclusions catalog.ExclusionSet,
) ([]Combo, error) {

	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	return Search(items, budget, exclusions), nil
}
