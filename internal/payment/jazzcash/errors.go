package jazzcash

// ErrorKind identifies a class of gateway failure. Callers branch on it to
// decide whether a failure is retryable, user-fixable, or terminal.
type ErrorKind string

const (
	ErrConfiguration      ErrorKind = "ConfigurationError"
	ErrServiceDown        ErrorKind = "ServiceDown"
	ErrInvalidAmount      ErrorKind = "InvalidAmount"
	ErrInvalidPhoneNumber ErrorKind = "InvalidPhoneNumber"
	ErrInvalidCNIC        ErrorKind = "InvalidCNIC"
	ErrInvalidCredentials ErrorKind = "InvalidCredentials"
	ErrInvalidMerchant    ErrorKind = "InvalidMerchant"
	ErrTransactionFailed  ErrorKind = "TransactionFailed"
	ErrSystemError        ErrorKind = "SystemError"
)

// Error is a gateway failure carrying the message text the gateway (or the
// transport layer) produced. It never crosses the facade boundary; Charge,
// Inquire and Refund convert it into a Result.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}
