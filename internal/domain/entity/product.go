package entity

import (
	"time"
)

type ProductStatus string

const (
	ProductPending  ProductStatus = "pending"
	ProductApproved ProductStatus = "approved"
	ProductRejected ProductStatus = "rejected"
)

// PricePoint is one observed price of an item on a market day.
type PricePoint struct {
	Date  time.Time `json:"date" bson:"date" firestore:"date"`
	Price float64   `json:"price" bson:"price" firestore:"price"`
}

type Product struct {
	ID                string        `json:"_id" bson:"_id" firestore:"id"`
	VendorEmail       string        `json:"vendorEmail" bson:"vendorEmail" firestore:"vendorEmail"`
	VendorName        string        `json:"vendorName,omitempty" bson:"vendorName,omitempty" firestore:"vendorName,omitempty"`
	MarketName        string        `json:"marketName" bson:"marketName" firestore:"marketName"`
	MarketDescription string        `json:"marketDescription,omitempty" bson:"marketDescription,omitempty" firestore:"marketDescription,omitempty"`
	Date              time.Time     `json:"date" bson:"date" firestore:"date"`
	ItemName          string        `json:"itemName" bson:"itemName" firestore:"itemName"`
	ItemDescription   string        `json:"itemDescription,omitempty" bson:"itemDescription,omitempty" firestore:"itemDescription,omitempty"`
	Image             string        `json:"image,omitempty" bson:"image,omitempty" firestore:"image,omitempty"`
	Status            ProductStatus `json:"status" bson:"status" firestore:"status"`
	PricePerUnit      float64       `json:"pricePerUnit" bson:"pricePerUnit" firestore:"pricePerUnit"`
	Prices            []PricePoint  `json:"prices" bson:"prices" firestore:"prices"`
	RejectionReason   string        `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty" firestore:"rejectionReason,omitempty"`
	CreatedAt         time.Time     `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt" bson:"updatedAt" firestore:"updatedAt"`
}

// ProductFilter narrows product listings. Zero values mean "no constraint".
type ProductFilter struct {
	VendorEmail string
	Status      ProductStatus
	From        *time.Time
	To          *time.Time
	SortField   string
	SortDesc    bool
	Limit       int
	Offset      int
}
