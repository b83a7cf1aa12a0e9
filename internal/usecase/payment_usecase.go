package usecase

import (
	"context"
	"math"
	"strings"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGatewayService
	currency    string
}

// NewPaymentUseCase accepts a nil gateway; intents then fail while recording still works.
func NewPaymentUseCase(paymentRepo repository.PaymentRepository, gateway service.PaymentGatewayService, currency string) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		currency:    strings.ToLower(currency),
	}
}

type RecordPaymentInput struct {
	ProductID     string
	ItemName      string
	MarketName    string
	Amount        float64
	TransactionID string
}

// ToMinorUnits converts a major-unit amount (dollars) to the provider's integer unit (cents).
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (uc *PaymentUseCase) CreatePaymentIntent(ctx context.Context, caller service.Principal, amount float64) (*entity.PaymentIntent, error) {
	if amount <= 0 {
		return nil, errors.Validation("amount must be greater than 0")
	}
	if uc.gateway == nil {
		return nil, errors.Upstream("Payment provider is not configured", nil)
	}

	intent, err := uc.gateway.CreatePaymentIntent(ctx, service.PaymentIntentRequest{
		Amount:   ToMinorUnits(amount),
		Currency: uc.currency,
		Email:    caller.Email,
	})
	if err != nil {
		return nil, errors.Upstream("Failed to create payment intent", err)
	}
	return intent, nil
}

func (uc *PaymentUseCase) RecordPayment(ctx context.Context, caller service.Principal, input RecordPaymentInput) (*entity.Payment, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, errors.Validation("productId is required")
	}
	if input.Amount <= 0 {
		return nil, errors.Validation("amount must be greater than 0")
	}

	payment := &entity.Payment{
		UserEmail:     caller.Email,
		ProductID:     input.ProductID,
		ItemName:      input.ItemName,
		MarketName:    input.MarketName,
		Amount:        input.Amount,
		Currency:      uc.currency,
		TransactionID: input.TransactionID,
		Status:        entity.PaymentPaid,
	}
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Payment %s recorded for %s", payment.ID, caller.Email)
	return payment, nil
}

func (uc *PaymentUseCase) ListOrders(ctx context.Context) ([]*entity.Payment, error) {
	return uc.paymentRepo.List(ctx, entity.PaymentFilter{})
}

func (uc *PaymentUseCase) MyOrders(ctx context.Context, caller service.Principal) ([]*entity.Payment, error) {
	return uc.paymentRepo.List(ctx, entity.PaymentFilter{
		UserEmail: caller.Email,
		Status:    entity.PaymentPaid,
	})
}
