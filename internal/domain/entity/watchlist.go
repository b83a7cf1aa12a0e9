package entity

import (
	"time"
)

type WatchListEntry struct {
	ID         string    `json:"_id" bson:"_id" firestore:"id"`
	Email      string    `json:"email" bson:"email" firestore:"email"`
	ProductID  string    `json:"productId" bson:"productId" firestore:"productId"`
	ItemName   string    `json:"itemName,omitempty" bson:"itemName,omitempty" firestore:"itemName,omitempty"`
	MarketName string    `json:"marketName,omitempty" bson:"marketName,omitempty" firestore:"marketName,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt" firestore:"createdAt"`
}
