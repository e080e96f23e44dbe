package api

import (
	"errors"
	"net/http"
	"time"

	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
	"campus-connect/eventhub/internal/services"
)

// statusFor maps the service-layer sentinel errors onto an HTTP status
// and user-facing message. Anything unmapped is a storage or upstream
// failure, logged with detail and returned as a generic message.
func statusFor(err error) (int, string) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	switch {
	case errors.Is(err, services.ErrDuplicateStudent):
		return http.StatusBadRequest, constants.MsgDuplicateStudent
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, constants.MsgInvalidCredentials
	case errors.Is(err, services.ErrStudentNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, services.ErrEventNotFound):
		return http.StatusNotFound, constants.MsgEventNotFound
	case errors.Is(err, services.ErrAlreadyJoined):
		return http.StatusBadRequest, constants.MsgAlreadyJoined
	case errors.Is(err, services.ErrAlreadyVolunteered):
		return http.StatusBadRequest, constants.MsgAlreadyVolunteered
	case errors.Is(err, services.ErrParticipantsFull):
		return http.StatusBadRequest, constants.MsgNoParticipantSlots
	case errors.Is(err, services.ErrVolunteersFull):
		return http.StatusBadRequest, constants.MsgNoVolunteerSlots
	case errors.Is(err, services.ErrNotClubMember):
		return http.StatusForbidden, constants.MsgNotClubMember
	case errors.Is(err, services.ErrNotRegistered):
		return http.StatusNotFound, constants.MsgNotRegistered
	case errors.Is(err, services.ErrAlreadyMarked):
		return http.StatusBadRequest, constants.MsgAlreadyCheckedIn
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, constants.MsgAttendanceForbidden
	case errors.Is(err, services.ErrInvalidResetToken):
		return http.StatusBadRequest, constants.MsgInvalidResetToken
	case errors.Is(err, services.ErrExpiredResetToken):
		return http.StatusBadRequest, constants.MsgExpiredResetToken
	case errors.Is(err, services.ErrFreeEvent):
		return http.StatusBadRequest, constants.MsgFreeEventNoOrder
	case errors.Is(err, services.ErrInvalidSignature):
		return http.StatusBadRequest, constants.MsgSignatureMismatch
	}
	return http.StatusInternalServerError, constants.MsgDatabaseError
}

func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	code, msg := statusFor(err)
	common.RespondError(w, initTime, err, msg, code)
}
