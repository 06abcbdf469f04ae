// Package gateway implements a simulated exchange and payment-method
// registry. Orders always clear; the roster of funding methods is held in
// memory and seeded with a fixed set.
package gateway

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"
	"sandbox-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
)

type simulatedGateway struct {
	latency time.Duration

	mu             sync.Mutex
	paymentMethods []domain.PaymentMethod
	cashOutMethods []domain.CashOutMethod
}

// New creates a simulated gateway seeded with the default funding methods.
// latency is applied to every call; pass 0 for immediate responses in tests.
func New(latency time.Duration) ports.PaymentGateway {
	return &simulatedGateway{
		latency:        latency,
		paymentMethods: seedPaymentMethods(),
		cashOutMethods: seedCashOutMethods(),
	}
}

func seedPaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: "pm_visa_1", Type: domain.MethodCard, Provider: domain.ProviderVisa, Name: "Visa ending in 4242", Last4: "4242", ExpiryDate: "12/25", IsDefault: true},
		{ID: "pm_mastercard_1", Type: domain.MethodCard, Provider: domain.ProviderMastercard, Name: "Mastercard ending in 5555", Last4: "5555", ExpiryDate: "10/26"},
		{ID: "pm_bank_1", Type: domain.MethodBank, Provider: domain.ProviderBank, Name: "Chase Bank Account", Last4: "6789"},
		{ID: "pm_paypal_1", Type: domain.MethodDigitalWallet, Provider: domain.ProviderPayPal, Name: "PayPal", Email: "user@example.com"},
		{ID: "pm_mobile_1", Type: domain.MethodMobileMoney, Provider: domain.ProviderMpesa, Name: "M-Pesa", PhoneNumber: "+254712345678"},
	}
}

func seedCashOutMethods() []domain.CashOutMethod {
	return []domain.CashOutMethod{
		{ID: "co_bank_1", Type: domain.MethodBank, Provider: domain.ProviderBank, Name: "Chase Bank Account", AccountNumber: "****6789", RoutingNumber: "****4321", IsDefault: true},
		{ID: "co_paypal_1", Type: domain.MethodDigitalWallet, Provider: domain.ProviderPayPal, Name: "PayPal", Email: "user@example.com"},
		{ID: "co_mobile_1", Type: domain.MethodMobileMoney, Provider: domain.ProviderMpesa, Name: "M-Pesa", PhoneNumber: "+254712345678"},
		{ID: "co_visa_1", Type: domain.MethodCard, Provider: domain.ProviderVisa, Name: "Visa Direct to card ending in 4242", Last4: "4242"},
	}
}

const idCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomID(prefix string, n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return prefix + strings.Repeat("0", n)
	}
	for i := range buf {
		buf[i] = idCharset[int(buf[i])%len(idCharset)]
	}
	return prefix + string(buf)
}

func orderID(prefix string) string {
	return prefix + strings.ToUpper(randomID("", 8))
}

func (g *simulatedGateway) pause(ctx context.Context) error {
	if g.latency <= 0 {
		return nil
	}
	t := time.NewTimer(g.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (g *simulatedGateway) Buy(ctx context.Context, amount decimal.Decimal, fiatCurrency, cryptoCurrency, paymentMethodID string) (*ports.OrderResult, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to process purchase")
	}
	return &ports.OrderResult{Success: true, OrderID: orderID("ORD-")}, nil
}

func (g *simulatedGateway) Sell(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) (*ports.OrderResult, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to process sale")
	}
	return &ports.OrderResult{Success: true, OrderID: orderID("ORD-")}, nil
}

func (g *simulatedGateway) Swap(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (*ports.OrderResult, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to process swap")
	}
	return &ports.OrderResult{Success: true, OrderID: orderID("SWP-")}, nil
}

func (g *simulatedGateway) CashOut(ctx context.Context, amount decimal.Decimal, cryptoCurrency, fiatCurrency, cashOutMethodID string) (*ports.OrderResult, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to process cash out")
	}
	return &ports.OrderResult{Success: true, OrderID: orderID("ORD-")}, nil
}

func (g *simulatedGateway) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to fetch payment methods")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.PaymentMethod, len(g.paymentMethods))
	copy(out, g.paymentMethods)
	return out, nil
}

func (g *simulatedGateway) CashOutMethods(ctx context.Context) ([]domain.CashOutMethod, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to fetch cash out methods")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.CashOutMethod, len(g.cashOutMethods))
	copy(out, g.cashOutMethods)
	return out, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *simulatedGateway) AddPaymentMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.PaymentMethod, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to add payment method")
	}

	var pm domain.PaymentMethod
	switch domain.PaymentMethodType(methodType) {
	case domain.MethodCard:
		pm = domain.PaymentMethod{
			ID:         randomID(fmt.Sprintf("pm_%s_", provider), 6),
			Type:       domain.MethodCard,
			Provider:   domain.PaymentProvider(provider),
			Name:       fmt.Sprintf("%s ending in %s", titleCase(provider), orDefault(details["last4"], "****")),
			Last4:      orDefault(details["last4"], "****"),
			ExpiryDate: orDefault(details["expiryDate"], "**/**"),
		}
	case domain.MethodBank:
		pm = domain.PaymentMethod{
			ID:       randomID("pm_bank_", 6),
			Type:     domain.MethodBank,
			Provider: domain.ProviderBank,
			Name:     orDefault(details["bankName"], "Bank Account"),
			Last4:    orDefault(details["accountLast4"], "****"),
		}
	case domain.MethodDigitalWallet:
		pm = domain.PaymentMethod{
			ID:       randomID(fmt.Sprintf("pm_%s_", provider), 6),
			Type:     domain.MethodDigitalWallet,
			Provider: domain.PaymentProvider(provider),
			Name:     titleCase(provider),
			Email:    orDefault(details["email"], "user@example.com"),
		}
	case domain.MethodMobileMoney:
		pm = domain.PaymentMethod{
			ID:          randomID(fmt.Sprintf("pm_%s_", provider), 6),
			Type:        domain.MethodMobileMoney,
			Provider:    domain.PaymentProvider(provider),
			Name:        titleCase(provider),
			PhoneNumber: orDefault(details["phoneNumber"], "+1234567890"),
		}
	default:
		return nil, apperror.ErrGatewayFailure("Unsupported payment method type")
	}

	g.mu.Lock()
	g.paymentMethods = append(g.paymentMethods, pm)
	g.mu.Unlock()
	return &pm, nil
}

func (g *simulatedGateway) AddCashOutMethod(ctx context.Context, methodType, provider string, details map[string]string) (*domain.CashOutMethod, error) {
	if err := g.pause(ctx); err != nil {
		return nil, apperror.ErrGatewayFailure("Failed to add cash out method")
	}

	var cm domain.CashOutMethod
	switch domain.PaymentMethodType(methodType) {
	case domain.MethodBank:
		cm = domain.CashOutMethod{
			ID:            randomID("co_bank_", 6),
			Type:          domain.MethodBank,
			Provider:      domain.ProviderBank,
			Name:          orDefault(details["bankName"], "Bank Account"),
			AccountNumber: maskedTail(details["accountNumber"], "****1234"),
			RoutingNumber: maskedTail(details["routingNumber"], "****5678"),
		}
	case domain.MethodDigitalWallet:
		cm = domain.CashOutMethod{
			ID:       randomID(fmt.Sprintf("co_%s_", provider), 6),
			Type:     domain.MethodDigitalWallet,
			Provider: domain.PaymentProvider(provider),
			Name:     titleCase(provider),
			Email:    orDefault(details["email"], "user@example.com"),
		}
	case domain.MethodMobileMoney:
		cm = domain.CashOutMethod{
			ID:          randomID(fmt.Sprintf("co_%s_", provider), 6),
			Type:        domain.MethodMobileMoney,
			Provider:    domain.PaymentProvider(provider),
			Name:        titleCase(provider),
			PhoneNumber: orDefault(details["phoneNumber"], "+1234567890"),
		}
	case domain.MethodCard:
		cm = domain.CashOutMethod{
			ID:       randomID(fmt.Sprintf("co_%s_", provider), 6),
			Type:     domain.MethodCard,
			Provider: domain.PaymentProvider(provider),
			Name:     fmt.Sprintf("%s Direct to card ending in %s", titleCase(provider), orDefault(details["last4"], "****")),
			Last4:    orDefault(details["last4"], "****"),
		}
	default:
		return nil, apperror.ErrGatewayFailure("Unsupported cash out method type")
	}

	g.mu.Lock()
	g.cashOutMethods = append(g.cashOutMethods, cm)
	g.mu.Unlock()
	return &cm, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// maskedTail keeps the last four digits of an account identifier.
func maskedTail(v, fallback string) string {
	if len(v) < 4 {
		return fallback
	}
	return "****" + v[len(v)-4:]
}
