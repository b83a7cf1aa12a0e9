package service

import (
	"time"

	"bazaartrack/internal/domain/entity"
)

// PriceUpdate is pushed to live subscribers whenever a product's price or status changes.
type PriceUpdate struct {
	ProductID    string               `json:"productId"`
	ItemName     string               `json:"itemName"`
	MarketName   string               `json:"marketName"`
	Status       entity.ProductStatus `json:"status"`
	PricePerUnit float64              `json:"pricePerUnit"`
	At           time.Time            `json:"at"`
}

type PriceNotifier interface {
	PublishPriceUpdate(update PriceUpdate)
}
