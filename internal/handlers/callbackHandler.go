package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	httpUtil "snookerslam/internal/utility/http"
)

// Callback receives the gateway's post back to pp_ReturnURL once the
// customer completes or abandons the wallet prompt. The secure hash on the
// posted fields is verified before anything is trusted.
func (h *PaymentHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	fields, err := callbackFields(r)
	if err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, "invalid callback body", err)
		return
	}

	result := h.Gateway.VerifyCallback(fields)
	httpUtil.RespondResult(w, resultStatus(result), result)
}

// callbackFields reads the posted gateway fields. Sandbox posts JSON; the
// hosted checkout posts a form.
func callbackFields(r *http.Request) (map[string]string, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		fields[key] = r.PostForm.Get(key)
	}
	return fields, nil
}
