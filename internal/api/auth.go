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

func setSessionCookie(w http.ResponseWriter, sessionID string, ttlHours int) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   ttlHours * 3600,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// SignUpHandler handles POST /api/signup
//
// @Summary      Register a new student
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.SignUpReq  true  "Signup form"
// @Success      201  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/signup [post]
func SignUpHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SignUpReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		student, err := deps.Services.Auth.SignUp(r.Context(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		sessionID, err := deps.Sessions.Create(r.Context(), student.USN, student.Name, student.Email)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		setSessionCookie(w, sessionID, deps.Config.SessionTTLHours)
		deps.Metrics.SignupsTotal.Inc()

		common.RespondSuccess(w, initTime, "Signup successful", dtos.AuthResponse{
			UserUSN:  student.USN,
			UserName: student.Name,
		}, http.StatusCreated)
	}
}

// SignInHandler handles POST /api/signin
//
// @Summary      Sign in with USN and password
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.SignInReq  true  "Credentials"
// @Success      200  {object}  dtos.APIResponse
// @Failure      401  {object}  dtos.APIResponse
// @Router       /api/signin [post]
func SignInHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SignInReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.USN == "" || req.Password == "" {
			common.RespondError(w, initTime, err, constants.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}

		student, err := deps.Services.Auth.SignIn(r.Context(), req.USN, req.Password)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		sessionID, err := deps.Sessions.Create(r.Context(), student.USN, student.Name, student.Email)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
			return
		}
		setSessionCookie(w, sessionID, deps.Config.SessionTTLHours)

		common.RespondSuccess(w, initTime, "Signin successful", dtos.AuthResponse{
			UserUSN:  student.USN,
			UserName: student.Name,
		})
	}
}

// SignOutHandler handles POST /api/signout. The cookie is cleared even
// when the store has already dropped the session.
func SignOutHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if cookie, err := r.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
			if err := deps.Sessions.Destroy(r.Context(), cookie.Value); err != nil {
				common.RespondError(w, initTime, err, constants.MsgDatabaseError, http.StatusInternalServerError)
				return
			}
		}
		clearSessionCookie(w)

		common.RespondSuccess(w, initTime, "Signed out", nil)
	}
}

// MeHandler handles GET /api/me
func MeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgNotSignedIn, http.StatusUnauthorized)
			return
		}

		student, err := deps.Services.Auth.Profile(r.Context(), claims.USN())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Profile fetched", dtos.ProfileResponse{
			UserUSN:  student.USN,
			UserName: student.Name,
			Semester: student.Semester,
			Mobile:   student.Mobile,
			Email:    student.Email,
		})
	}
}
