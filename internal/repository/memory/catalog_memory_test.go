package memory

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
)

func TestCatalogRepositoryFindByPage(t *testing.T) {
	repo := NewCatalogRepo()
	ctx := context.Background()

	card, err := repo.FindByPage(ctx, domain.PageHeritage, 1)
	if err != nil {
		t.Fatalf("FindByPage returned error: %v", err)
	}
	if card.Route != "/heritage/pyramids" {
		t.Fatalf("expected pyramids route, got %q", card.Route)
	}

	if _, err := repo.FindByPage(ctx, domain.PageHeritage, 999); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for unknown card, got %v", err)
	}
	if _, err := repo.ListByPage(ctx, domain.PageKind("museums")); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for unknown page, got %v", err)
	}
}
