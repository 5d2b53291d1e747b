package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/njprem/VisitEgypt_BackEnd/internal/content"
	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/navigation"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrCardNotFound = errors.New("card not found")
	ErrCatalogEmpty = errors.New("catalog page has no cards")
)

type CatalogService struct {
	cards     ports.CardRepository
	guides    ports.GuideRepository
	navigator navigation.Navigator
	logger    *zap.Logger
}

func NewCatalogService(cards ports.CardRepository, guides ports.GuideRepository, navigator navigation.Navigator, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		cards:     cards,
		guides:    guides,
		navigator: navigator,
		logger:    logger,
	}
}

func (s *CatalogService) Pages(ctx context.Context) []domain.Page {
	return content.Pages()
}

// Page renders one card per record behind kind, in list order.
func (s *CatalogService) Page(ctx context.Context, kind domain.PageKind) (*domain.ListingPage, error) {
	page, ok := content.Page(kind)
	if !ok {
		return nil, ErrPageNotFound
	}

	cards, err := s.cards.ListByPage(ctx, kind)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("list %s cards: %w", kind, err)
	}

	return &domain.ListingPage{
		Page:  page,
		Cards: cards,
		Total: len(cards),
	}, nil
}

// Activate navigates to the route stored on the card, placeholder included,
// and returns that route.
func (s *CatalogService) Activate(ctx context.Context, kind domain.PageKind, cardID int) (string, error) {
	if _, ok := content.Page(kind); !ok {
		return "", ErrPageNotFound
	}

	card, err := s.cards.FindByPage(ctx, kind, cardID)
	if err != nil {
		if isNotFound(err) {
			return "", ErrCardNotFound
		}
		return "", fmt.Errorf("find %s card %d: %w", kind, cardID, err)
	}

	if err := s.navigator.Navigate(ctx, card.Route); err != nil {
		return "", fmt.Errorf("navigate to %q: %w", card.Route, err)
	}

	s.logger.Debug("card activated",
		zap.String("page", string(kind)),
		zap.Int("card_id", card.ID),
		zap.String("route", card.Route),
		zap.Bool("placeholder", card.IsPlaceholder()))
	return card.Route, nil
}

// Verify checks that every listing page has cards and the pyramids guide
// loads. It is run at start-up to catch an unseeded catalog.
func (s *CatalogService) Verify(ctx context.Context) error {
	for _, kind := range domain.PageKindsOrdered {
		page, err := s.Page(ctx, kind)
		if err != nil {
			return fmt.Errorf("verify %s page: %w", kind, err)
		}
		if page.Total == 0 {
			return fmt.Errorf("verify %s page: %w", kind, ErrCatalogEmpty)
		}
	}
	if _, err := s.Pyramids(ctx); err != nil {
		return fmt.Errorf("verify pyramids guide: %w", err)
	}
	return nil
}

func (s *CatalogService) Pyramids(ctx context.Context) (*domain.PyramidsGuide, error) {
	guide, err := s.guides.Pyramids(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return guide, nil
}
