package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"campus-connect/eventhub/internal/auth"
	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/models/dtos"
)

// JoinEventHandler handles POST /api/events/{eventId}/join
//
// @Summary      Register the session student as a participant
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      404  {object}  dtos.APIResponse
// @Router       /api/events/{eventId}/join [post]
func JoinEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		eventID, ok := eventIDParam(r)
		if !ok {
			common.RespondError(w, initTime, nil, "Invalid event ID", http.StatusBadRequest)
			return
		}

		if err := deps.Services.Participation.Join(r.Context(), eventID, claims.USN()); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		deps.Metrics.RegistrationsTotal.WithLabelValues("participant").Inc()

		common.RespondSuccess(w, initTime, "Registered as participant", nil)
	}
}

// VolunteerEventHandler handles POST /api/events/{eventId}/volunteer
func VolunteerEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		eventID, ok := eventIDParam(r)
		if !ok {
			common.RespondError(w, initTime, nil, "Invalid event ID", http.StatusBadRequest)
			return
		}

		if err := deps.Services.Participation.Volunteer(r.Context(), eventID, claims.USN()); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		deps.Metrics.RegistrationsTotal.WithLabelValues("volunteer").Inc()

		common.RespondSuccess(w, initTime, "Registered as volunteer", nil)
	}
}

// MarkParticipantAttendanceHandler handles POST /api/mark-participant-attendance.
// The QR code only carries the event id; the identity being marked must
// be the scanner's own session.
func MarkParticipantAttendanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.MarkAttendanceReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == 0 || req.USN == "" {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		err := deps.Services.Participation.MarkParticipantAttendance(r.Context(), req.EventID, req.USN, claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		deps.Metrics.AttendanceMarksTotal.WithLabelValues("participant").Inc()

		common.RespondSuccess(w, initTime, "Attendance marked", nil)
	}
}

// MarkVolunteerAttendanceHandler handles POST /api/mark-volunteer-attendance
func MarkVolunteerAttendanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.MarkAttendanceReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == 0 || req.USN == "" {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		err := deps.Services.Participation.MarkVolunteerAttendance(r.Context(), req.EventID, req.USN, claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		deps.Metrics.AttendanceMarksTotal.WithLabelValues("volunteer").Inc()

		common.RespondSuccess(w, initTime, "Attendance marked", nil)
	}
}

// ScanQrHandler handles GET /api/scan-qr?usn=...&eid=...
//
// Deprecated: identity comes from the query string with no session
// check, so anyone holding a USN can mark that student present. Kept
// only for codes printed before the session-bound endpoints shipped.
func ScanQrHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		usn := r.URL.Query().Get("usn")
		eid, err := strconv.ParseUint(r.URL.Query().Get("eid"), 10, 32)
		if usn == "" || err != nil || eid == 0 {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		if err := deps.Services.Participation.ScanQr(r.Context(), uint(eid), usn); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		deps.Metrics.AttendanceMarksTotal.WithLabelValues("participant").Inc()

		common.RespondSuccess(w, initTime, "Attendance marked", nil)
	}
}
