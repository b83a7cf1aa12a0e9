package entity

import (
	"time"
)

type Review struct {
	ID        string    `json:"_id" bson:"_id" firestore:"id"`
	ProductID string    `json:"productId" bson:"productId" firestore:"productId"`
	UserEmail string    `json:"userEmail" bson:"userEmail" firestore:"userEmail"`
	UserName  string    `json:"userName,omitempty" bson:"userName,omitempty" firestore:"userName,omitempty"`
	UserPhoto string    `json:"userPhoto,omitempty" bson:"userPhoto,omitempty" firestore:"userPhoto,omitempty"`
	Rating    int       `json:"rating" bson:"rating" firestore:"rating"`
	Comment   string    `json:"comment" bson:"comment" firestore:"comment"`
	Date      time.Time `json:"date" bson:"date" firestore:"date"`
}
