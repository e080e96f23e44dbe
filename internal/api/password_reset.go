package api

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/models/dtos"
)

// ForgotPasswordHandler handles POST /api/forgot-password. The response
// is the same whether or not the email exists.
func ForgotPasswordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ForgotPasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		sent, err := deps.Services.PasswordReset.Forgot(r.Context(), req.Email)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		if sent {
			deps.Metrics.ResetEmailsSentTotal.Inc()
		}

		common.RespondSuccess(w, initTime, constants.MsgResetMailSent, nil)
	}
}

// ResetPasswordHandler handles POST /api/reset-password
func ResetPasswordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ResetPasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		name, err := deps.Services.PasswordReset.Reset(r.Context(), req.Token, req.NewPassword)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Password updated", dtos.ResetPasswordResponse{UserName: name})
	}
}
