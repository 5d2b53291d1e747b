package memory

import (
	"context"
	"database/sql"

	"github.com/njprem/VisitEgypt_BackEnd/internal/content"
	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

// CatalogRepository serves the literal lists compiled into the binary.
type CatalogRepository struct{}

func NewCatalogRepo() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) ListByPage(ctx context.Context, page domain.PageKind) ([]domain.Card, error) {
	cards, ok := content.Cards(page)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cards, nil
}

func (r *CatalogRepository) FindByPage(ctx context.Context, page domain.PageKind, id int) (*domain.Card, error) {
	cards, ok := content.Cards(page)
	if !ok {
		return nil, sql.ErrNoRows
	}
	for i := range cards {
		if cards[i].ID == id {
			card := cards[i]
			return &card, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *CatalogRepository) Pyramids(ctx context.Context) (*domain.PyramidsGuide, error) {
	guide := content.Pyramids()
	return &guide, nil
}

var (
	_ ports.CardRepository  = (*CatalogRepository)(nil)
	_ ports.GuideRepository = (*CatalogRepository)(nil)
)
