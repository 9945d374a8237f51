package jazzcash

// Response body fields the integration consumes.
const (
	fieldResponseCode    = "pp_ResponseCode"
	fieldResponseMessage = "pp_ResponseMessage"
	fieldTxnRefNo        = "pp_TxnRefNo"
	fieldTxnStatus       = "pp_TxnStatus"
	fieldSecureHash      = "pp_SecureHash"
)

const responseCodeSuccess = "000"

// classify maps a gateway response code to a typed error, or nil for the
// success code. It applies identically whether the code arrived in a 2xx
// body or in the body of an HTTP error response.
func classify(code, message string) *Error {
	switch code {
	case responseCodeSuccess:
		return nil
	case "124":
		return newError(ErrInvalidAmount, message)
	case "125":
		return newError(ErrInvalidPhoneNumber, message)
	case "126":
		return newError(ErrInvalidCNIC, message)
	case "127":
		return newError(ErrInvalidCredentials, message)
	case "128":
		return newError(ErrInvalidMerchant, message)
	default:
		return newError(ErrTransactionFailed, message)
	}
}

// stringField pulls a string value out of a decoded JSON body, tolerating
// absent or non-string values.
func stringField(raw map[string]any, name string) string {
	if value, ok := raw[name].(string); ok {
		return value
	}
	return ""
}
