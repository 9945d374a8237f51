package handlers

import (
	"encoding/json"
	"net/http"

	models "snookerslam/internal/models"
	"snookerslam/internal/payment/jazzcash"
	httpUtil "snookerslam/internal/utility/http"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// PaymentHandlers serves the payments API on top of a shared gateway client.
type PaymentHandlers struct {
	Gateway *jazzcash.Client
}

func NewPaymentHandlers(gateway *jazzcash.Client) *PaymentHandlers {
	return &PaymentHandlers{Gateway: gateway}
}

type ChargeRequest struct {
	User   models.User `json:"user" validate:"required"`
	Amount float64     `json:"amount" validate:"required,gt=0"`
}

type InquiryRequest struct {
	ReferenceID string `json:"reference_id" validate:"required"`
}

type RefundRequest struct {
	ReferenceID string  `json:"reference_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

func (h *PaymentHandlers) Charge(w http.ResponseWriter, r *http.Request) {
	var req ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result := h.Gateway.Charge(jazzcash.Customer{
		PhoneNo: req.User.PhoneNo,
		IDCard:  req.User.IDCard,
	}, req.Amount)
	httpUtil.RespondResult(w, resultStatus(result), result)
}

func (h *PaymentHandlers) Inquiry(w http.ResponseWriter, r *http.Request) {
	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result := h.Gateway.Inquire(req.ReferenceID)
	httpUtil.RespondResult(w, resultStatus(result), result)
}

func (h *PaymentHandlers) Refund(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result := h.Gateway.Refund(req.ReferenceID, req.Amount)
	httpUtil.RespondResult(w, resultStatus(result), result)
}

// resultStatus picks an HTTP status for a gateway result: transport and
// internal faults map to 502/500, business rejections to 422, success to 200.
func resultStatus(result jazzcash.Result) int {
	if result.Success {
		return http.StatusOK
	}
	switch jazzcash.ErrorKind(result.ErrorType) {
	case jazzcash.ErrServiceDown:
		return http.StatusBadGateway
	case jazzcash.ErrConfiguration, jazzcash.ErrSystemError:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}
