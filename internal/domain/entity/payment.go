package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID            string        `json:"_id" bson:"_id" firestore:"id"`
	UserEmail     string        `json:"userEmail" bson:"userEmail" firestore:"userEmail"`
	ProductID     string        `json:"productId" bson:"productId" firestore:"productId"`
	ItemName      string        `json:"itemName,omitempty" bson:"itemName,omitempty" firestore:"itemName,omitempty"`
	MarketName    string        `json:"marketName,omitempty" bson:"marketName,omitempty" firestore:"marketName,omitempty"`
	Amount        float64       `json:"amount" bson:"amount" firestore:"amount"`
	Currency      string        `json:"currency" bson:"currency" firestore:"currency"`
	TransactionID string        `json:"transactionId,omitempty" bson:"transactionId,omitempty" firestore:"transactionId,omitempty"`
	Status        PaymentStatus `json:"status" bson:"status" firestore:"status"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
}

type PaymentFilter struct {
	UserEmail string
	Status    PaymentStatus
}

// PaymentIntent is what the client needs to confirm a card payment with the provider.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
