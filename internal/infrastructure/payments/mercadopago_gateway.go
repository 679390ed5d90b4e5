package payments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"

	"presubuild/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const mockCheckoutURL = "https://www.mercadopago.com/checkout/v1/redirect?pref_id="

// preferenceCreator is the part of preference.Client the gateway calls.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway creates Checkout Pro preferences, one per budget.
type MercadoPagoGateway struct {
	client     preferenceCreator
	currencyID string
	mockMode   bool
	log        *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, currencyID string, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("mercadopago")

	if isPaymentGatewayMockEnabled() {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currencyID: currencyID, log: log}, nil
	}

	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg), currencyID: currencyID, log: log}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("mock create success",
			zap.String("external_reference", req.ExternalReference),
			zap.String("preference_id", id),
			zap.Float64("amount", req.Amount),
		)
		return interfaces.PaymentLink{
			ProviderID:       id,
			InitPoint:        mockCheckoutURL + id,
			SandboxInitPoint: mockCheckoutURL + id,
		}, nil
	}

	if g == nil || g.client == nil {
		return interfaces.PaymentLink{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("create start", zap.String("external_reference", req.ExternalReference), zap.Float64("amount", req.Amount))

	resp, err := g.client.Create(ctx, toPreferenceRequest(req, g.currencyID))
	if err != nil {
		g.log.Error("sdk create failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return interfaces.PaymentLink{}, err
	}
	if resp == nil || resp.ID == "" {
		return interfaces.PaymentLink{}, fmt.Errorf("mercado pago returned an empty preference for %s", req.ExternalReference)
	}
	g.log.Info("create success", zap.String("external_reference", req.ExternalReference), zap.String("preference_id", resp.ID))

	return interfaces.PaymentLink{
		ProviderID:       resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func toPreferenceRequest(req interfaces.PaymentLinkRequest, currencyID string) preference.Request {
	out := preference.Request{
		ExternalReference: req.ExternalReference,
		Items: []preference.ItemRequest{
			{
				ID:          req.ExternalReference,
				Title:       req.Title,
				Description: req.Description,
				CurrencyID:  currencyID,
				Quantity:    1,
				UnitPrice:   req.Amount,
			},
		},
	}
	if phone := strings.TrimSpace(req.PayerPhone); phone != "" {
		out.Payer = &preference.PayerRequest{Phone: &preference.PhoneRequest{Number: phone}}
	}
	return out
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
