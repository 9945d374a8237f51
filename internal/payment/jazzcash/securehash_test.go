package jazzcash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalMessageOrderAndSeparator(t *testing.T) {
	payload := map[string]string{
		"pp_Amount":     "1250",
		"pp_Language":   "EN",
		"pp_MerchantID": "MC123",
		// not part of the signing list, must never appear
		"pp_ReturnURL": "https://snookerslam.com/jazzcash/callback",
		"ppmpf_1":      "",
	}

	got := canonicalMessage("s3cret", payload)

	// Secret first, then the signed fields in their fixed order regardless
	// of map iteration order.
	assert.Equal(t, "s3cret&EN&MC123&1250", got)
}

func TestCanonicalMessageOmitsAbsentFields(t *testing.T) {
	withEmpty := map[string]string{
		"pp_Language":   "EN",
		"pp_MerchantID": "MC123",
		"pp_CNIC":       "",
		"pp_Amount":     "1250",
	}
	without := map[string]string{
		"pp_Language":   "EN",
		"pp_MerchantID": "MC123",
		"pp_Amount":     "1250",
	}

	// A present-but-empty field keeps its slot; an absent field loses it.
	assert.Equal(t, "k&EN&MC123&&1250", canonicalMessage("k", withEmpty))
	assert.Equal(t, "k&EN&MC123&1250", canonicalMessage("k", without))

	hashWithEmpty, err := secureHash("k", withEmpty)
	require.Nil(t, err)
	hashWithout, err := secureHash("k", without)
	require.Nil(t, err)
	assert.NotEqual(t, hashWithEmpty, hashWithout)
}

func TestSecureHashDeterministic(t *testing.T) {
	payload := map[string]string{
		"pp_Language":    "EN",
		"pp_MerchantID":  "MC123",
		"pp_Password":    "pass123",
		"pp_TxnRefNo":    "T20240101120000",
		"pp_Amount":      "50000",
		"pp_TxnCurrency": "PKR",
	}

	first, err := secureHash("secret", payload)
	require.Nil(t, err)
	second, err := secureHash("secret", payload)
	require.Nil(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, "^[0-9a-f]{64}$", first)
}

func TestSecureHashChangesWithAnyField(t *testing.T) {
	base := map[string]string{
		"pp_Language":   "EN",
		"pp_MerchantID": "MC123",
		"pp_Password":   "pass123",
		"pp_TxnRefNo":   "T20240101120000",
		"pp_Amount":     "50000",
	}
	baseHash, err := secureHash("secret", base)
	require.Nil(t, err)

	for name := range base {
		mutated := make(map[string]string, len(base))
		for k, v := range base {
			mutated[k] = v
		}
		mutated[name] = mutated[name] + "x"

		got, err := secureHash("secret", mutated)
		require.Nil(t, err)
		assert.NotEqual(t, baseHash, got, "changing %s must change the digest", name)
	}

	otherSecret, err := secureHash("secret2", base)
	require.Nil(t, err)
	assert.NotEqual(t, baseHash, otherSecret)
}

func TestSecureHashEmptySecret(t *testing.T) {
	_, err := secureHash("", map[string]string{"pp_Language": "EN"})
	require.NotNil(t, err)
	assert.Equal(t, ErrConfiguration, err.Kind)
}
