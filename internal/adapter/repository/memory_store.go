package repository

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"bazaartrack/internal/domain/entity"
)

func newMemoryID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Prices = append([]entity.PricePoint(nil), p.Prices...)
	return &cp
}

func matchesProduct(p *entity.Product, filter entity.ProductFilter) bool {
	if filter.VendorEmail != "" && p.VendorEmail != filter.VendorEmail {
		return false
	}
	if filter.Status != "" && p.Status != filter.Status {
		return false
	}
	if filter.From != nil && p.Date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && p.Date.After(*filter.To) {
		return false
	}
	return true
}

func sortProducts(products []*entity.Product, field string, desc bool) {
	less := func(a, b *entity.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch field {
	case "pricePerUnit":
		less = func(a, b *entity.Product) bool { return a.PricePerUnit < b.PricePerUnit }
	case "date":
		less = func(a, b *entity.Product) bool { return a.Date.Before(b.Date) }
	case "", "createdAt":
		if field == "" {
			desc = true
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
