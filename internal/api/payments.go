package api

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-connect/eventhub/internal/auth"
	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/models/dtos"
)

// CreateOrderHandler handles POST /api/create-order
//
// @Summary      Open a payment gateway order for a paid event
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.CreateOrderReq  true  "Event id"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      404  {object}  dtos.APIResponse
// @Router       /api/create-order [post]
func CreateOrderHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.CreateOrderReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == 0 {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		order, err := deps.Services.Payments.CreateOrder(r.Context(), req.EventID, claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Order created", order)
	}
}

// VerifyPaymentHandler handles POST /api/verify-payment. A valid
// gateway signature registers the payer as a participant; verifying the
// same payment twice is a no-op success.
func VerifyPaymentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.VerifyPaymentReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Payments.VerifyPayment(r.Context(), req, claims.USN()); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		deps.Metrics.PaymentsVerifiedTotal.Inc()

		common.RespondSuccess(w, initTime, "Payment verified", nil)
	}
}
