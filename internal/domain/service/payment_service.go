package service

import (
	"context"

	"bazaartrack/internal/domain/entity"
)

// PaymentIntentRequest carries an amount in the currency's minor unit (cents for usd).
type PaymentIntentRequest struct {
	Amount   int64
	Currency string
	Email    string
	Metadata map[string]string
}

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*entity.PaymentIntent, error)
}
