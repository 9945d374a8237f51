package jazzcash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashFieldOrder is the gateway's signing order. It deliberately covers only
// a subset of the transmitted payload (pp_ReturnURL and the placeholder
// fields are sent but never signed) — the asymmetry is part of the gateway's
// signing contract, not something to correct.
var hashFieldOrder = []string{
	"pp_Language",
	"pp_MerchantID",
	"pp_Password",
	"pp_TxnRefNo",
	"pp_MobileNumber",
	"pp_CNIC",
	"pp_Amount",
	"pp_TxnCurrency",
	"pp_TxnDateTime",
	"pp_BillReference",
	"pp_Description",
	"pp_TxnExpiryDateTime",
}

// canonicalMessage joins the signed fields in hashFieldOrder with "&", with
// the shared secret as the leading element. Fields absent from the payload
// are skipped entirely; a present-but-empty field still contributes its
// (empty) slot. Both rules are part of the wire contract.
func canonicalMessage(secret string, payload map[string]string) string {
	parts := make([]string, 0, len(hashFieldOrder)+1)
	parts = append(parts, secret)
	for _, name := range hashFieldOrder {
		if value, ok := payload[name]; ok {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, "&")
}

// secureHash computes the lowercase-hex HMAC-SHA256 of the canonical message,
// keyed by the shared secret.
func secureHash(secret string, payload map[string]string) (string, *Error) {
	if secret == "" {
		return "", newError(ErrConfiguration, "shared secret is missing")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonicalMessage(secret, payload)))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// hmacEqual compares two hex digests in constant time.
func hmacEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
