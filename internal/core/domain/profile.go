package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VerificationTier is the KYC level governing transaction limits.
type VerificationTier string

const (
	TierNone     VerificationTier = "none"
	TierPending  VerificationTier = "pending"
	TierBasic    VerificationTier = "basic"
	TierFull     VerificationTier = "full"
	TierRejected VerificationTier = "rejected"
)

// DocumentType identifies an accepted KYC document.
type DocumentType string

const (
	DocPassport       DocumentType = "passport"
	DocNationalID     DocumentType = "national_id"
	DocDrivingLicense DocumentType = "driving_license"
	DocUtilityBill    DocumentType = "utility_bill"
	DocBankStatement  DocumentType = "bank_statement"
)

// VerificationDocument tracks one submitted KYC document.
type VerificationDocument struct {
	ID              string       `json:"id"`
	Type            DocumentType `json:"type"`
	Status          string       `json:"status"` // pending, approved, rejected
	SubmittedAt     time.Time    `json:"submitted_at"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
}

// TransactionLimits are the USD caps for a verification tier.
type TransactionLimits struct {
	Daily          decimal.Decimal `json:"daily"`
	Monthly        decimal.Decimal `json:"monthly"`
	PerTransaction decimal.Decimal `json:"per_transaction"`
}

// PersonalInfo holds the KYC identity details submitted with a document.
type PersonalInfo struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}

// UserProfile carries the verification tier and consumed limit usage for the
// active wallet session. Usage is mutated only after a confirmed transaction.
type UserProfile struct {
	Tier                   VerificationTier       `json:"tier"`
	UsedDailyLimit         decimal.Decimal        `json:"used_daily_limit"`
	UsedMonthlyLimit       decimal.Decimal        `json:"used_monthly_limit"`
	Email                  string                 `json:"email,omitempty"`
	Phone                  string                 `json:"phone,omitempty"`
	VerifiedAt             *time.Time             `json:"verified_at,omitempty"`
	Documents              []VerificationDocument `json:"documents"`
	PersonalInfo           *PersonalInfo          `json:"personal_info,omitempty"`
	RecoveryPhraseVerified bool                   `json:"recovery_phrase_verified,omitempty"`
}

// NewUserProfile returns the unverified default profile.
func NewUserProfile() UserProfile {
	return UserProfile{Tier: TierNone}
}

var tierLimits = map[VerificationTier]TransactionLimits{
	TierNone:     {Daily: decimal.NewFromInt(1000), Monthly: decimal.NewFromInt(5000), PerTransaction: decimal.NewFromInt(500)},
	TierPending:  {Daily: decimal.NewFromInt(1000), Monthly: decimal.NewFromInt(5000), PerTransaction: decimal.NewFromInt(500)},
	TierBasic:    {Daily: decimal.NewFromInt(10000), Monthly: decimal.NewFromInt(50000), PerTransaction: decimal.NewFromInt(5000)},
	TierFull:     {Daily: decimal.NewFromInt(100000), Monthly: decimal.NewFromInt(500000), PerTransaction: decimal.NewFromInt(50000)},
	TierRejected: {},
}

// LimitsForTier returns the USD transaction caps for a tier.
// Unknown tiers fall back to the unverified limits.
func LimitsForTier(tier VerificationTier) TransactionLimits {
	if l, ok := tierLimits[tier]; ok {
		return l
	}
	return tierLimits[TierNone]
}

// LimitCheck is the outcome of evaluating an amount against the tier caps.
type LimitCheck struct {
	Allowed bool
	Reason  string
}

// CheckLimits evaluates a USD amount against the profile's caps in order:
// per-transaction, then remaining daily, then remaining monthly. The first
// violated cap determines the rejection reason.
func (p *UserProfile) CheckLimits(usdAmount decimal.Decimal) LimitCheck {
	limits := LimitsForTier(p.Tier)

	if usdAmount.GreaterThan(limits.PerTransaction) {
		return LimitCheck{Reason: fmt.Sprintf(
			"Transaction exceeds the maximum amount of $%s per transaction for your verification level.",
			limits.PerTransaction)}
	}

	if p.UsedDailyLimit.Add(usdAmount).GreaterThan(limits.Daily) {
		return LimitCheck{Reason: fmt.Sprintf(
			"Transaction would exceed your daily limit of $%s. Remaining: $%s",
			limits.Daily, limits.Daily.Sub(p.UsedDailyLimit))}
	}

	if p.UsedMonthlyLimit.Add(usdAmount).GreaterThan(limits.Monthly) {
		return LimitCheck{Reason: fmt.Sprintf(
			"Transaction would exceed your monthly limit of $%s. Remaining: $%s",
			limits.Monthly, limits.Monthly.Sub(p.UsedMonthlyLimit))}
	}

	return LimitCheck{Allowed: true}
}

// ConsumeLimits records a confirmed transaction against the daily and monthly
// usage counters. Never called speculatively.
func (p *UserProfile) ConsumeLimits(usdAmount decimal.Decimal) {
	p.UsedDailyLimit = p.UsedDailyLimit.Add(usdAmount)
	p.UsedMonthlyLimit = p.UsedMonthlyLimit.Add(usdAmount)
}
