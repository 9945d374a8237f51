package jazzcash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		BaseURL:          "https://sandbox.jazzcash.example",
		ChargePath:       "/charge",
		InquiryPath:      "/inquiry",
		RefundPath:       "/refund",
		MerchantID:       "MC123",
		MerchantPassword: "pass123",
		SharedSecret:     "secret",
		ReturnURL:        "https://snookerslam.com/jazzcash/callback",
	}
}

var testNow = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestToPaisa(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{12.50, 1250},
		{10, 1000},
		{9.999, 999}, // sub-paisa fractions truncate
		{500.00, 50000},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toPaisa(tt.amount), "amount %v", tt.amount)
	}
}

func TestChargeTransactionTimestamps(t *testing.T) {
	txn := newChargeTransaction(Customer{PhoneNo: "03001234567", IDCard: "3520112223334"}, 500.00, testNow)

	assert.Equal(t, "T20240101120000", txn.refNo)
	assert.Equal(t, "20240101120000", txn.txnDateTime)
	// Expiry is transaction time + 2 days in the same format.
	assert.Equal(t, "20240103120000", txn.expiryDateTime)
	assert.Equal(t, int64(50000), txn.amountPaisa)
}

func TestChargePayloadFields(t *testing.T) {
	txn := newChargeTransaction(Customer{PhoneNo: "03001234567", IDCard: "3520112223334"}, 500.00, testNow)
	payload, err := buildPayload(testConfig(), txn)
	require.Nil(t, err)

	assert.Equal(t, "EN", payload["pp_Language"])
	assert.Equal(t, "MC123", payload["pp_MerchantID"])
	assert.Equal(t, "pass123", payload["pp_Password"])
	assert.Equal(t, "T20240101120000", payload["pp_TxnRefNo"])
	assert.Equal(t, "03001234567", payload["pp_MobileNumber"])
	assert.Equal(t, "3520112223334", payload["pp_CNIC"])
	assert.Equal(t, "50000", payload["pp_Amount"])
	assert.Equal(t, "PKR", payload["pp_TxnCurrency"])
	assert.Equal(t, "20240101120000", payload["pp_TxnDateTime"])
	assert.Equal(t, "billref", payload["pp_BillReference"])
	assert.Equal(t, "Snooker Slam Payment", payload["pp_Description"])
	assert.Equal(t, "20240103120000", payload["pp_TxnExpiryDateTime"])
	assert.Equal(t, "https://snookerslam.com/jazzcash/callback", payload["pp_ReturnURL"])

	// Schema placeholders are transmitted empty.
	for _, name := range []string{"pp_SubMerchantID", "pp_DiscountedAmount", "ppmpf_1", "ppmpf_2", "ppmpf_3", "ppmpf_4", "ppmpf_5"} {
		value, ok := payload[name]
		assert.True(t, ok, "missing %s", name)
		assert.Empty(t, value)
	}
}

func TestInquiryPayloadFields(t *testing.T) {
	payload, err := buildPayload(testConfig(), newInquiryTransaction("T20240101120000"))
	require.Nil(t, err)

	assert.Equal(t, "T20240101120000", payload["pp_TxnRefNo"])
	assert.Equal(t, "T20240101120000", payload["pp_RetreivalReferenceNo"])
	assert.Equal(t, "MWALLET", payload["pp_TxnType"])
	assert.Equal(t, "EN", payload["pp_Language"])
	assert.Equal(t, "PKR", payload["pp_TxnCurrency"])

	// No amount or customer fields on inquiry, so they fall out of the
	// secure-hash canonicalization too.
	for _, name := range []string{"pp_Amount", "pp_MobileNumber", "pp_CNIC", "pp_TxnExpiryDateTime"} {
		_, ok := payload[name]
		assert.False(t, ok, "%s must be absent", name)
	}
}

func TestRefundPayloadFields(t *testing.T) {
	payload, err := buildPayload(testConfig(), newRefundTransaction("T20240101120000", 500.00, testNow))
	require.Nil(t, err)

	assert.Equal(t, "T20240101120000", payload["pp_TxnRefNo"])
	assert.Equal(t, "50000", payload["pp_Amount"])
	assert.Equal(t, "20240101120000", payload["pp_TxnDateTime"])
	assert.Equal(t, "Refund for Snooker Slam Payment", payload["pp_Description"])
	assert.Equal(t, "MWALLET", payload["pp_TxnType"])
	assert.Equal(t, "FULL", payload["pp_TxnRefundType"])
}

func TestBuildPayloadIdempotent(t *testing.T) {
	cfg := testConfig()
	txn := newChargeTransaction(Customer{PhoneNo: "03001234567", IDCard: "3520112223334"}, 12.50, testNow)

	first, err := buildPayload(cfg, txn)
	require.Nil(t, err)
	second, err := buildPayload(cfg, txn)
	require.Nil(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPayloadRejectsBlankCredentials(t *testing.T) {
	txn := newInquiryTransaction("T20240101120000")

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"merchant id", func(c *Config) { c.MerchantID = "" }},
		{"merchant password", func(c *Config) { c.MerchantPassword = "" }},
		{"shared secret", func(c *Config) { c.SharedSecret = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			_, err := buildPayload(cfg, txn)
			require.NotNil(t, err)
			assert.Equal(t, ErrConfiguration, err.Kind)
		})
	}
}
