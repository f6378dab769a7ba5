package search

import (
	"context"

	"github.com/fierogr/findfarewells-sub000/models"
)

// SearchService runs the public directory search pipeline: resolve a
// prefecture from free text, filter partners by region and service, widen by
// proximity when nothing matches directly, then aggregate, sort and paginate.
type SearchService interface {
	Search(ctx context.Context, query models.SearchQuery) (*models.ResultPage, error)
}
