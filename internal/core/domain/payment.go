package domain

// PaymentProvider identifies the backing payment network or institution.
type PaymentProvider string

const (
	ProviderVisa       PaymentProvider = "visa"
	ProviderMastercard PaymentProvider = "mastercard"
	ProviderAmex       PaymentProvider = "amex"
	ProviderPayPal     PaymentProvider = "paypal"
	ProviderBank       PaymentProvider = "bank"
	ProviderMpesa      PaymentProvider = "mpesa"
	ProviderMTN        PaymentProvider = "mtn"
	ProviderVenmo      PaymentProvider = "venmo"
	ProviderCashApp    PaymentProvider = "cashapp"
)

// PaymentMethodType classifies how funds come in or go out.
type PaymentMethodType string

const (
	MethodCard          PaymentMethodType = "card"
	MethodBank          PaymentMethodType = "bank"
	MethodDigitalWallet PaymentMethodType = "digital_wallet"
	MethodMobileMoney   PaymentMethodType = "mobile_money"
)

// PaymentMethod is a registered funding source for buying crypto.
type PaymentMethod struct {
	ID          string            `json:"id"`
	Type        PaymentMethodType `json:"type"`
	Provider    PaymentProvider   `json:"provider"`
	Name        string            `json:"name"`
	Last4       string            `json:"last4,omitempty"`
	ExpiryDate  string            `json:"expiry_date,omitempty"`
	Email       string            `json:"email,omitempty"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	IsDefault   bool              `json:"is_default"`
}

// CashOutMethod is a registered destination for selling crypto to fiat.
type CashOutMethod struct {
	ID            string            `json:"id"`
	Type          PaymentMethodType `json:"type"`
	Provider      PaymentProvider   `json:"provider"`
	Name          string            `json:"name"`
	AccountNumber string            `json:"account_number,omitempty"`
	RoutingNumber string            `json:"routing_number,omitempty"`
	Email         string            `json:"email,omitempty"`
	PhoneNumber   string            `json:"phone_number,omitempty"`
	Last4         string            `json:"last4,omitempty"`
	IsDefault     bool              `json:"is_default"`
}
