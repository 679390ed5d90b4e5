package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBudgetNotAccepted           = errors.New("budget not accepted")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

//go:generate mockgen -source=payment_link_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_link_usecase.go -package=mocks

// IPaymentLinkUseCase creates checkout links for accepted budgets. Links are
// returned to the caller and not stored.
type IPaymentLinkUseCase interface {
	CreateForBudget(ctx context.Context, budgetID string) (interfaces.PaymentLink, error)
}

type PaymentLinkUseCase struct {
	budgetRepo   interfaces.IBudgetRepository
	settingsRepo interfaces.ISettingsRepository
	gateway      interfaces.IPaymentGateway
	log          *zap.Logger
}

var _ IPaymentLinkUseCase = (*PaymentLinkUseCase)(nil)

func NewPaymentLinkUseCase(budgetRepo interfaces.IBudgetRepository, settingsRepo interfaces.ISettingsRepository, gateway interfaces.IPaymentGateway, log *zap.Logger) *PaymentLinkUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentLinkUseCase{budgetRepo: budgetRepo, settingsRepo: settingsRepo, gateway: gateway, log: log.Named("payment")}
}

func (u *PaymentLinkUseCase) CreateForBudget(ctx context.Context, budgetID string) (interfaces.PaymentLink, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return interfaces.PaymentLink{}, ErrInvalidBudgetID
	}
	if u.gateway == nil {
		u.log.Warn("gateway not configured", zap.String("budget_id", budgetID))
		return interfaces.PaymentLink{}, ErrPaymentGatewayNotConfigured
	}

	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		u.log.Error("load budget failed", zap.String("budget_id", budgetID), zap.Error(err))
		return interfaces.PaymentLink{}, err
	}
	if b.ID == "" {
		return interfaces.PaymentLink{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusAceptado {
		u.log.Info("budget not accepted", zap.String("budget_id", budgetID), zap.String("status", string(b.Status)))
		return interfaces.PaymentLink{}, ErrBudgetNotAccepted
	}

	settings, err := loadSettings(ctx, u.settingsRepo)
	if err != nil {
		return interfaces.PaymentLink{}, err
	}

	req := interfaces.PaymentLinkRequest{
		ExternalReference: b.ID,
		Title:             fmt.Sprintf("%s - %s", settings.BusinessName, b.ID),
		Description:       "Presupuesto de obra para " + b.Client.Name,
		Amount:            b.Total,
		PayerPhone:        b.Client.Phone,
	}
	link, err := u.gateway.CreatePaymentLink(ctx, req)
	if err != nil {
		u.log.Error("payment gateway failed", zap.String("budget_id", budgetID), zap.Error(err))
		switch {
		case isGatewayUnauthorized(err):
			return interfaces.PaymentLink{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return interfaces.PaymentLink{}, ErrPaymentGatewayBadRequest
		}
		return interfaces.PaymentLink{}, err
	}
	u.log.Info("payment link created",
		zap.String("budget_id", budgetID),
		zap.String("provider_id", link.ProviderID),
		zap.Float64("amount", b.Total),
	)
	return link, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
