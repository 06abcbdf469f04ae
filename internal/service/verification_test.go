package service_test

import (
	"context"
	"strings"
	"testing"

	"sandbox-wallet/internal/core/domain"
	"sandbox-wallet/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitVerification(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	_, err := f.engine.SubmitVerification(ctx, ports.SubmitVerificationRequest{})
	require.Error(t, err)

	f.createWallet(t)

	res, err := f.engine.SubmitVerification(ctx, ports.SubmitVerificationRequest{
		Info:         domain.PersonalInfo{FirstName: "Ada", LastName: "Lovelace", Country: "GB"},
		Email:        "ada@example.com",
		Phone:        "+44 20 7946 0000",
		DocumentType: domain.DocPassport,
		Document:     []byte("scan"),
	})
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
	assert.Contains(t, res.Message, "1-2 business days")

	profile := f.engine.State().Profile
	assert.Equal(t, domain.TierPending, profile.Tier)
	assert.Equal(t, "ada@example.com", profile.Email)
	require.NotNil(t, profile.PersonalInfo)
	assert.Equal(t, "Ada", profile.PersonalInfo.FirstName)
}

func TestVerificationLimitsPerTier(t *testing.T) {
	f := newTestEngine(t)
	ctx := context.Background()

	limits, err := f.engine.VerificationLimits(ctx, domain.TierBasic)
	require.NoError(t, err)
	assert.True(t, limits.PerTransaction.Equal(dec("5000")))
	assert.True(t, limits.Daily.Equal(dec("10000")))
	assert.True(t, limits.Monthly.Equal(dec("50000")))
}

func TestCheckTransactionAllowed(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)

	check := f.engine.CheckTransactionAllowed(dec("500"))
	assert.True(t, check.Allowed)

	check = f.engine.CheckTransactionAllowed(dec("500.01"))
	assert.False(t, check.Allowed)
	assert.Contains(t, check.Reason, "$500 per transaction")
}

func TestRecoveryPhraseFlow(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()

	phrase, err := f.engine.GenerateRecoveryPhrase(ctx)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(phrase), 12)

	valid, err := f.engine.VerifyRecoveryPhrase(ctx, phrase)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = f.engine.VerifyRecoveryPhrase(ctx, "definitely not a mnemonic")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyWithRecoveryPhraseUpgradesTier(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()

	phrase, err := f.engine.GenerateRecoveryPhrase(ctx)
	require.NoError(t, err)

	t.Run("invalid phrase", func(t *testing.T) {
		res, err := f.engine.VerifyWithRecoveryPhrase(ctx, "wrong words here")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, domain.TierNone, f.engine.State().Profile.Tier)
	})

	t.Run("valid phrase upgrades to basic", func(t *testing.T) {
		res, err := f.engine.VerifyWithRecoveryPhrase(ctx, phrase)
		require.NoError(t, err)
		require.True(t, res.Success, res.Message)
		assert.Equal(t, domain.TierBasic, res.NewTier)

		profile := f.engine.State().Profile
		assert.Equal(t, domain.TierBasic, profile.Tier)
		assert.True(t, profile.RecoveryPhraseVerified)

		// Basic tier accepts amounts the unverified tier rejects.
		assert.True(t, f.engine.CheckTransactionAllowed(dec("2000")).Allowed)
	})
}

func TestFundingMethods(t *testing.T) {
	f := newTestEngine(t)
	f.createWallet(t)
	ctx := context.Background()

	methods := f.engine.PaymentMethods()
	require.NotEmpty(t, methods)
	var hasDefault bool
	for _, m := range methods {
		if m.IsDefault {
			hasDefault = true
		}
	}
	assert.True(t, hasDefault)

	added, err := f.engine.AddPaymentMethod(ctx, "card", "Visa", map[string]string{"last4": "1111"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Len(t, f.engine.PaymentMethods(), len(methods)+1)

	cashOuts := f.engine.CashOutMethods()
	require.NotEmpty(t, cashOuts)

	co, err := f.engine.AddCashOutMethod(ctx, "bank", "Chase", map[string]string{"last4": "9876"})
	require.NoError(t, err)
	assert.NotEmpty(t, co.ID)
	assert.Len(t, f.engine.CashOutMethods(), len(cashOuts)+1)
}
