package jazzcash

import "os"

// Config holds the merchant credentials and endpoint layout for the JazzCash
// gateway. It is read once at startup and never mutated afterwards; every
// call works off this read-only value plus its own per-call transaction.
type Config struct {
	BaseURL     string
	ChargePath  string
	InquiryPath string
	RefundPath  string

	MerchantID       string
	MerchantPassword string
	SharedSecret     string

	ReturnURL string

	// Debug enables request/response logging. Payloads contain the merchant
	// password, so keep this off outside sandbox runs.
	Debug bool
}

// ConfigFromEnv reads the JAZZCASH_* variables. Call godotenv.Load before
// this if credentials live in a .env file.
func ConfigFromEnv() Config {
	return Config{
		BaseURL:          os.Getenv("JAZZCASH_URL"),
		ChargePath:       os.Getenv("JAZZCASH_CHARGE_PATH"),
		InquiryPath:      os.Getenv("JAZZCASH_INQUIRY_PATH"),
		RefundPath:       os.Getenv("JAZZCASH_REFUND_PATH"),
		MerchantID:       os.Getenv("JAZZCASH_MERCHANT_ID"),
		MerchantPassword: os.Getenv("JAZZCASH_MERCHANT_PASSWORD"),
		SharedSecret:     os.Getenv("JAZZCASH_SHARED_SECRET"),
		ReturnURL:        os.Getenv("JAZZCASH_RETURN_URL"),
		Debug:            os.Getenv("JAZZCASH_DEBUG") == "true",
	}
}

// validate rejects blank credentials up front so a misconfigured process
// never dispatches an unsigned or half-signed transaction.
func (c Config) validate() *Error {
	if c.MerchantID == "" {
		return newError(ErrConfiguration, "merchant id is missing")
	}
	if c.MerchantPassword == "" {
		return newError(ErrConfiguration, "merchant password is missing")
	}
	if c.SharedSecret == "" {
		return newError(ErrConfiguration, "shared secret is missing")
	}
	return nil
}
