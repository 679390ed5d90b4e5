package interfaces

import "context"

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// PaymentLinkRequest describes a checkout for the total of one budget.
type PaymentLinkRequest struct {
	ExternalReference string
	Title             string
	Description       string
	Amount            float64
	PayerPhone        string
}

// PaymentLink is what the provider returns for a checkout.
type PaymentLink struct {
	ProviderID       string `json:"providerId"`
	InitPoint        string `json:"initPoint"`
	SandboxInitPoint string `json:"sandboxInitPoint,omitempty"`
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLink, error)
}
