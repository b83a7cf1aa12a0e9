package entity

import (
	"time"
)

type AdvertisementStatus string

const (
	AdvertisementPending  AdvertisementStatus = "pending"
	AdvertisementApproved AdvertisementStatus = "approved"
	AdvertisementRejected AdvertisementStatus = "rejected"
)

func (s AdvertisementStatus) Valid() bool {
	switch s {
	case AdvertisementPending, AdvertisementApproved, AdvertisementRejected:
		return true
	}
	return false
}

type Advertisement struct {
	ID          string              `json:"_id" bson:"_id" firestore:"id"`
	VendorEmail string              `json:"vendorEmail" bson:"vendorEmail" firestore:"vendorEmail"`
	Title       string              `json:"title" bson:"title" firestore:"title"`
	Description string              `json:"description" bson:"description" firestore:"description"`
	Image       string              `json:"image,omitempty" bson:"image,omitempty" firestore:"image,omitempty"`
	Status      AdvertisementStatus `json:"status" bson:"status" firestore:"status"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt" firestore:"updatedAt"`
}

type AdvertisementFilter struct {
	VendorEmail string
	Status      AdvertisementStatus
	Limit       int
}
