package jazzcash

import "time"

// Kind selects which gateway operation a transaction performs.
type Kind string

const (
	KindCharge  Kind = "charge"
	KindInquiry Kind = "inquiry"
	KindRefund  Kind = "refund"
)

// Gateway datetime format, e.g. 20240101120000.
const dateTimeLayout = "20060102150405"

// Charge references are "T" + the transaction timestamp. A retried charge
// must therefore be a fresh transaction so it gets a fresh reference.
const refNoPrefix = "T"

// Charge transactions stay payable for two days after creation.
const chargeExpiry = 48 * time.Hour

// Customer is the paying party as the gateway wants to see it: a JazzCash
// wallet (mobile) number and the CNIC it is registered against.
type Customer struct {
	PhoneNo string
	IDCard  string
}

// transaction is the immutable per-call context threaded through payload
// building, hashing and dispatch. Each facade call constructs its own and
// discards it afterwards; nothing about a call lives on the Client.
type transaction struct {
	kind           Kind
	refNo          string
	amountPaisa    int64
	txnDateTime    string
	expiryDateTime string
	customer       Customer
}

func newChargeTransaction(customer Customer, amount float64, now time.Time) transaction {
	return transaction{
		kind:           KindCharge,
		refNo:          refNoPrefix + now.Format(dateTimeLayout),
		amountPaisa:    toPaisa(amount),
		txnDateTime:    now.Format(dateTimeLayout),
		expiryDateTime: now.Add(chargeExpiry).Format(dateTimeLayout),
		customer:       customer,
	}
}

func newInquiryTransaction(referenceID string) transaction {
	return transaction{
		kind:  KindInquiry,
		refNo: referenceID,
	}
}

func newRefundTransaction(referenceID string, amount float64, now time.Time) transaction {
	return transaction{
		kind:        KindRefund,
		refNo:       referenceID,
		amountPaisa: toPaisa(amount),
		txnDateTime: now.Format(dateTimeLayout),
	}
}

// toPaisa converts a rupee amount to paisa (minor units), truncating any
// sub-paisa fraction the way the gateway expects.
func toPaisa(amount float64) int64 {
	return int64(amount * 100)
}
