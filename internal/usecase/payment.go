package usecase

import (
	"motorhub/internal/entity"
	"motorhub/pkg/logger"
)

// PaymentCollector charges subscription fees. Collection itself is
// handled by an external billing system; this client records the
// charge intent and always succeeds.
type PaymentCollector interface {
	ChargeSubscription(accountID string, tier entity.SubscriptionTier) error
}

type paymentCollector struct {
	logger *logger.Logger
}

func NewPaymentCollector(log *logger.Logger) PaymentCollector {
	return &paymentCollector{logger: log}
}

func (p *paymentCollector) ChargeSubscription(accountID string, tier entity.SubscriptionTier) error {
	p.logger.Info("Recorded subscription charge for account %s: tier=%s", accountID, tier)
	return nil
}
