package jazzcash

import (
	"log"
	"time"

	httpClient "snookerslam/internal/utility/http"
)

// Client talks to the JazzCash mobile-wallet gateway. It holds only
// read-only configuration and a shared HTTP client, so a single instance is
// safe for concurrent use; all call state lives in per-call transactions.
type Client struct {
	cfg  Config
	http *httpClient.Client
	now  func() time.Time
}

// New validates the configuration and returns a ready client. Blank
// credentials are rejected here so no transaction is ever attempted with
// them.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:  cfg,
		http: httpClient.NewHttpClient(),
		now:  time.Now,
	}, nil
}

// Result is the uniform caller-facing outcome for every operation. Failures
// never escape as errors; they come back with Success=false and ErrorType
// set to one of the ErrorKind values.
type Result struct {
	Success     bool           `json:"success"`
	ReferenceID string         `json:"reference_id,omitempty"`
	Status      string         `json:"status,omitempty"`
	Message     string         `json:"message"`
	ErrorType   string         `json:"error_type,omitempty"`
	RawResponse map[string]any `json:"raw_response,omitempty"`
}

// Charge debits the customer's wallet. The reference number is generated
// here from the transaction timestamp; a caller retrying a failed charge
// just calls Charge again and gets a fresh reference.
func (c *Client) Charge(customer Customer, amount float64) Result {
	txn := newChargeTransaction(customer, amount, c.now())
	raw, err := c.send(c.cfg.ChargePath, txn)
	if err != nil {
		return failureResult(err)
	}
	return Result{
		Success:     true,
		ReferenceID: stringField(raw, fieldTxnRefNo),
		Message:     stringField(raw, fieldResponseMessage),
		RawResponse: raw,
	}
}

// Inquire looks up the status of an earlier transaction by its reference.
func (c *Client) Inquire(referenceID string) Result {
	txn := newInquiryTransaction(referenceID)
	raw, err := c.send(c.cfg.InquiryPath, txn)
	if err != nil {
		return failureResult(err)
	}
	return Result{
		Success:     true,
		ReferenceID: stringField(raw, fieldTxnRefNo),
		Status:      stringField(raw, fieldTxnStatus),
		Message:     stringField(raw, fieldResponseMessage),
		RawResponse: raw,
	}
}

// Refund returns the amount of an earlier charge, identified by reference.
func (c *Client) Refund(referenceID string, amount float64) Result {
	txn := newRefundTransaction(referenceID, amount, c.now())
	raw, err := c.send(c.cfg.RefundPath, txn)
	if err != nil {
		return failureResult(err)
	}
	return Result{
		Success:     true,
		ReferenceID: stringField(raw, fieldTxnRefNo),
		Message:     stringField(raw, fieldResponseMessage),
		RawResponse: raw,
	}
}

// VerifyCallback checks the secure hash on fields the gateway posted to the
// return URL and, if genuine, shapes them into a Result. A missing or
// mismatched hash fails with InvalidCredentials.
func (c *Client) VerifyCallback(fields map[string]string) Result {
	posted, ok := fields[fieldSecureHash]
	if !ok || posted == "" {
		return failureResult(newError(ErrInvalidCredentials, "callback is missing secure hash"))
	}
	expected, err := secureHash(c.cfg.SharedSecret, fields)
	if err != nil {
		return failureResult(err)
	}
	if !hmacEqual(posted, expected) {
		return failureResult(newError(ErrInvalidCredentials, "callback secure hash mismatch"))
	}

	code := fields[fieldResponseCode]
	if gwErr := classify(code, fields[fieldResponseMessage]); gwErr != nil {
		return failureResult(gwErr)
	}
	raw := make(map[string]any, len(fields))
	for k, v := range fields {
		raw[k] = v
	}
	return Result{
		Success:     true,
		ReferenceID: fields[fieldTxnRefNo],
		Status:      fields[fieldTxnStatus],
		Message:     fields[fieldResponseMessage],
		RawResponse: raw,
	}
}

func (c *Client) send(path string, txn transaction) (map[string]any, *Error) {
	payload, err := buildPayload(c.cfg, txn)
	if err != nil {
		return nil, err
	}
	return c.dispatch(path, payload)
}

func failureResult(err *Error) Result {
	return Result{
		Success:   false,
		Message:   err.Message,
		ErrorType: string(err.Kind),
	}
}

func (c *Client) debugf(format string, args ...any) {
	if c.cfg.Debug {
		log.Printf("[jazzcash] "+format, args...)
	}
}
