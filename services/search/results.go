package search

import (
	"sort"

	"github.com/fierogr/findfarewells-sub000/models"
)

// PageSize is the fixed number of result rows per page.
const PageSize = 10

// BuildRows expands partners into result rows: one row per partner, carrying
// its single lowest-priced package, or no package for basic-price listings.
func BuildRows(partners []models.Partner) []models.ResultRow {
	rows := make([]models.ResultRow, 0, len(partners))
	for i := range partners {
		p := partners[i]
		rows = append(rows, models.ResultRow{
			Partner: p,
			Package: p.CheapestPackage(),
			Price:   p.EffectivePrice(),
		})
	}
	return rows
}

// SortRows orders rows by effective price. Ties keep their prior relative
// order. Any order value other than "desc" sorts ascending.
func SortRows(rows []models.ResultRow, order string) {
	if order == models.SortDescending {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Price > rows[j].Price
		})
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Price < rows[j].Price
	})
}

// TotalPages computes the page count with a floor of one page, even for an
// empty row set.
func TotalPages(rowCount, pageSize int) int {
	if rowCount <= 0 {
		return 1
	}
	pages := (rowCount + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices one 1-indexed page out of the row set. An out-of-range page
// is clamped into the valid range; the clamped page number is returned so the
// response reports the page actually served.
func Paginate(rows []models.ResultRow, page, pageSize int) ([]models.ResultRow, int, int) {
	totalPages := TotalPages(len(rows), pageSize)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []models.ResultRow{}, page, totalPages
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], page, totalPages
}
