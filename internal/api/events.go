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

	"github.com/go-chi/chi/v5"
)

// eventIDParam parses the {eventId} route parameter. A non-numeric id
// is a client error, not a lookup miss.
func eventIDParam(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "eventId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// CreateEventHandler handles POST /api/events/create
//
// @Summary      Create an event with the caller as organizer
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.CreateEventReq  true  "Event form"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      403  {object}  dtos.APIResponse
// @Router       /api/events/create [post]
func CreateEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		var req dtos.CreateEventReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		eventID, err := deps.Services.Events.Create(r.Context(), claims.USN(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Event created", dtos.CreateEventResponse{EventID: eventID}, http.StatusCreated)
	}
}

// ListEventsHandler handles GET /api/events
func ListEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		buckets, err := deps.Services.Events.List(r.Context(), time.Now())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Events fetched", dtos.EventListResponse{
			Events:      *buckets,
			CurrentUser: claims.Name(),
		})
	}
}

// GetEventHandler handles GET /api/events/{eventId}
func GetEventHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		eventID, ok := eventIDParam(r)
		if !ok {
			common.RespondError(w, initTime, nil, "Invalid event ID", http.StatusBadRequest)
			return
		}

		detail, err := deps.Services.Events.Detail(r.Context(), eventID, claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Event fetched", detail)
	}
}

// MyOrganizedEventsHandler handles GET /api/my-organized-events
func MyOrganizedEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		views, err := deps.Services.Events.MyOrganized(r.Context(), claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Organized events fetched", views)
	}
}

// MyParticipantEventsHandler handles GET /api/my-participant-events
func MyParticipantEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		views, err := deps.Services.Events.MyParticipant(r.Context(), claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Participant events fetched", views)
	}
}

// MyVolunteerEventsHandler handles GET /api/my-volunteer-events
func MyVolunteerEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		views, err := deps.Services.Events.MyVolunteer(r.Context(), claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Volunteer events fetched", views)
	}
}

// ParticipantCountHandler handles GET /api/events/{eventId}/participant-count
func ParticipantCountHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, ok := eventIDParam(r)
		if !ok {
			common.RespondError(w, initTime, nil, "Invalid event ID", http.StatusBadRequest)
			return
		}

		count, err := deps.Repo.Ledger.CountParticipants(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Participant count fetched", dtos.CountResponse{Count: count})
	}
}

// VolunteerCountHandler handles GET /api/events/{eventId}/volunteer-count
func VolunteerCountHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, ok := eventIDParam(r)
		if !ok {
			common.RespondError(w, initTime, nil, "Invalid event ID", http.StatusBadRequest)
			return
		}

		count, err := deps.Repo.Ledger.CountVolunteers(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Volunteer count fetched", dtos.CountResponse{Count: count})
	}
}

// ParticipantRosterHandler handles GET /api/events/{eventId}/participants
func ParticipantRosterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, ok := eventIDParam(r)
		if !ok {
			common.RespondError(w, initTime, nil, "Invalid event ID", http.StatusBadRequest)
			return
		}

		rows, err := deps.Repo.Ledger.ParticipantRoster(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Participants fetched", rows)
	}
}

// VolunteerRosterHandler handles GET /api/events/{eventId}/volunteers
func VolunteerRosterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, ok := eventIDParam(r)
		if !ok {
			common.RespondError(w, initTime, nil, "Invalid event ID", http.StatusBadRequest)
			return
		}

		rows, err := deps.Repo.Ledger.VolunteerRoster(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Volunteers fetched", rows)
	}
}
