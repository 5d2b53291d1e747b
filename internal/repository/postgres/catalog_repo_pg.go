package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

const pyramidsGuideSlug = "pyramids"

type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type cardRow struct {
	domain.Card
	HighlightList pq.StringArray `db:"highlights"`
}

func (r cardRow) toCard() domain.Card {
	card := r.Card
	if len(r.HighlightList) > 0 {
		card.Highlights = append([]string(nil), r.HighlightList...)
	}
	return card
}

func (r *CatalogRepository) ListByPage(ctx context.Context, page domain.PageKind) ([]domain.Card, error) {
	const query = `
		SELECT page, id, position, title, description, image_url, cta, route,
		       rating, price, currency, badge, highlights
		FROM catalog_card
		WHERE page = $1
		ORDER BY position ASC, id ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, string(page))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		var row cardRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		cards = append(cards, row.toCard())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Every page has content; an empty result means the catalog was never seeded.
	if len(cards) == 0 {
		return nil, sql.ErrNoRows
	}
	return cards, nil
}

func (r *CatalogRepository) FindByPage(ctx context.Context, page domain.PageKind, id int) (*domain.Card, error) {
	const query = `
		SELECT page, id, position, title, description, image_url, cta, route,
		       rating, price, currency, badge, highlights
		FROM catalog_card
		WHERE page = $1 AND id = $2
	`
	var row cardRow
	if err := r.db.GetContext(ctx, &row, query, string(page), id); err != nil {
		return nil, err
	}
	card := row.toCard()
	return &card, nil
}

func (r *CatalogRepository) Pyramids(ctx context.Context) (*domain.PyramidsGuide, error) {
	const query = `SELECT body FROM catalog_guide WHERE slug = $1`
	var body []byte
	if err := r.db.GetContext(ctx, &body, query, pyramidsGuideSlug); err != nil {
		return nil, err
	}
	var guide domain.PyramidsGuide
	if err := json.Unmarshal(body, &guide); err != nil {
		return nil, fmt.Errorf("postgres: decode pyramids guide: %w", err)
	}
	return &guide, nil
}

// Seed upserts cards and the pyramids guide in a single transaction.
func (r *CatalogRepository) Seed(ctx context.Context, cards []domain.Card, guide domain.PyramidsGuide) error {
	const upsertCard = `
		INSERT INTO catalog_card (
			page, id, position, title, description, image_url, cta, route,
			rating, price, currency, badge, highlights
		) VALUES (
			:page, :id, :position, :title, :description, :image_url, :cta, :route,
			:rating, :price, :currency, :badge, :highlights
		)
		ON CONFLICT (page, id) DO UPDATE
		SET position = EXCLUDED.position,
		    title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    image_url = EXCLUDED.image_url,
		    cta = EXCLUDED.cta,
		    route = EXCLUDED.route,
		    rating = EXCLUDED.rating,
		    price = EXCLUDED.price,
		    currency = EXCLUDED.currency,
		    badge = EXCLUDED.badge,
		    highlights = EXCLUDED.highlights
	`
	const upsertGuide = `
		INSERT INTO catalog_guide (slug, body)
		VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE
		SET body = EXCLUDED.body,
		    updated_at = NOW()
	`

	body, err := json.Marshal(guide)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, card := range cards {
		args := map[string]any{
			"page":        string(card.Page),
			"id":          card.ID,
			"position":    card.Position,
			"title":       card.Title,
			"description": card.Description,
			"image_url":   card.ImageURL,
			"cta":         card.CTA,
			"route":       card.Route,
			"rating":      card.Rating,
			"price":       card.Price,
			"currency":    card.Currency,
			"badge":       card.Badge,
			"highlights":  pq.StringArray(nonNilStrings(card.Highlights)),
		}
		if _, err := tx.NamedExecContext(ctx, upsertCard, args); err != nil {
			return fmt.Errorf("postgres: seed card %s/%d: %w", card.Page, card.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, upsertGuide, pyramidsGuideSlug, body); err != nil {
		return fmt.Errorf("postgres: seed pyramids guide: %w", err)
	}

	return tx.Commit()
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

var (
	_ ports.CardRepository  = (*CatalogRepository)(nil)
	_ ports.GuideRepository = (*CatalogRepository)(nil)
)
