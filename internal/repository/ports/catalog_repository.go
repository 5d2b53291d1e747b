package ports

import (
	"context"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
)

type CardRepository interface {
	ListByPage(ctx context.Context, page domain.PageKind) ([]domain.Card, error)
	FindByPage(ctx context.Context, page domain.PageKind, id int) (*domain.Card, error)
}

type GuideRepository interface {
	Pyramids(ctx context.Context) (*domain.PyramidsGuide, error)
}
