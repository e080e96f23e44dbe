package api

import (
	"net/http"
	"time"

	"campus-connect/eventhub/internal/auth"
	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/constants"
)

// ClubsHandler handles GET /api/clubs. Clubs are near-static reference
// data, served through the cache.
func ClubsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		clubs, err := deps.Services.Clubs.ListClubs(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Clubs fetched", clubs)
	}
}

// MyClubsHandler handles GET /api/my-clubs
func MyClubsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		claims := auth.GetUserClaims(r.Context())

		clubs, err := deps.Services.Clubs.MyClubs(r.Context(), claims.USN())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Clubs fetched", clubs)
	}
}

// StudentsHandler handles GET /api/students
func StudentsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		students, err := deps.Services.Clubs.ListStudents(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, "Students fetched", students)
	}
}
