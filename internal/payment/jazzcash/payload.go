package jazzcash

import "strconv"

// Fixed literals the gateway schema expects on every transaction.
const (
	language          = "EN"
	currency          = "PKR"
	txnTypeMWallet    = "MWALLET"
	refundTypeFull    = "FULL"
	billReference     = "billref"
	chargeDescription = "Snooker Slam Payment"
	refundDescription = "Refund for Snooker Slam Payment"
)

// buildPayload assembles the unsigned field map for a transaction. It is a
// pure function of the config and the per-call transaction, so repeated
// calls with the same inputs produce identical maps.
func buildPayload(cfg Config, txn transaction) (map[string]string, *Error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	switch txn.kind {
	case KindCharge:
		return chargePayload(cfg, txn), nil
	case KindInquiry:
		return inquiryPayload(cfg, txn), nil
	case KindRefund:
		return refundPayload(cfg, txn), nil
	default:
		return nil, newError(ErrSystemError, "unknown transaction kind: "+string(txn.kind))
	}
}

func chargePayload(cfg Config, txn transaction) map[string]string {
	return map[string]string{
		"pp_Language":          language,
		"pp_MerchantID":        cfg.MerchantID,
		"pp_Password":          cfg.MerchantPassword,
		"pp_TxnRefNo":          txn.refNo,
		"pp_MobileNumber":      txn.customer.PhoneNo,
		"pp_CNIC":              txn.customer.IDCard,
		"pp_Amount":            strconv.FormatInt(txn.amountPaisa, 10),
		"pp_TxnCurrency":       currency,
		"pp_TxnDateTime":       txn.txnDateTime,
		"pp_BillReference":     billReference,
		"pp_Description":       chargeDescription,
		"pp_TxnExpiryDateTime": txn.expiryDateTime,
		"pp_ReturnURL":         cfg.ReturnURL,
		// Schema-required placeholders; transmitted empty, never hashed.
		"pp_SubMerchantID":     "",
		"pp_DiscountedAmount":  "",
		"ppmpf_1":              "",
		"ppmpf_2":              "",
		"ppmpf_3":              "",
		"ppmpf_4":              "",
		"ppmpf_5":              "",
	}
}

func inquiryPayload(cfg Config, txn transaction) map[string]string {
	return map[string]string{
		"pp_Language":             language,
		"pp_MerchantID":           cfg.MerchantID,
		"pp_Password":             cfg.MerchantPassword,
		"pp_TxnRefNo":             txn.refNo,
		"pp_RetreivalReferenceNo": txn.refNo, // gateway's own spelling
		"pp_TxnCurrency":          currency,
		"pp_TxnType":              txnTypeMWallet,
	}
}

func refundPayload(cfg Config, txn transaction) map[string]string {
	return map[string]string{
		"pp_Language":      language,
		"pp_MerchantID":    cfg.MerchantID,
		"pp_Password":      cfg.MerchantPassword,
		"pp_TxnRefNo":      txn.refNo,
		"pp_Amount":        strconv.FormatInt(txn.amountPaisa, 10),
		"pp_TxnDateTime":   txn.txnDateTime,
		"pp_Description":   refundDescription,
		"pp_TxnCurrency":   currency,
		"pp_TxnType":       txnTypeMWallet,
		"pp_TxnRefundType": refundTypeFull,
	}
}
