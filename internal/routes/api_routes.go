package routes

import (
	"campus-connect/eventhub/internal/api"
	"campus-connect/eventhub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes mounts the /api tree. Signup, signin and the
// password-reset pair are public and rate limited; scan-qr stays public
// for old printed codes; everything else requires a session.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api", func(root chi.Router) {

		// Signing out without a session is a no-op success, so the
		// route sits outside the auth gate.
		root.Post("/signout", api.SignOutHandler(deps))

		root.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)

			public.Post("/signup", api.SignUpHandler(deps))
			public.Post("/signin", api.SignInHandler(deps))
			public.Post("/forgot-password", api.ForgotPasswordHandler(deps))
			public.Post("/reset-password", api.ResetPasswordHandler(deps))

			// Deprecated, see ScanQrHandler.
			public.Get("/scan-qr", api.ScanQrHandler(deps))
		})

		root.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Sessions))

			authed.Get("/me", api.MeHandler(deps))

			authed.Get("/events", api.ListEventsHandler(deps))
			authed.Post("/events/create", api.CreateEventHandler(deps))
			authed.Get("/events/{eventId}", api.GetEventHandler(deps))
			authed.Post("/events/{eventId}/join", api.JoinEventHandler(deps))
			authed.Post("/events/{eventId}/volunteer", api.VolunteerEventHandler(deps))
			authed.Get("/events/{eventId}/participant-count", api.ParticipantCountHandler(deps))
			authed.Get("/events/{eventId}/volunteer-count", api.VolunteerCountHandler(deps))
			authed.Get("/events/{eventId}/participants", api.ParticipantRosterHandler(deps))
			authed.Get("/events/{eventId}/volunteers", api.VolunteerRosterHandler(deps))

			authed.Get("/my-organized-events", api.MyOrganizedEventsHandler(deps))
			authed.Get("/my-participant-events", api.MyParticipantEventsHandler(deps))
			authed.Get("/my-volunteer-events", api.MyVolunteerEventsHandler(deps))

			authed.Get("/clubs", api.ClubsHandler(deps))
			authed.Get("/my-clubs", api.MyClubsHandler(deps))
			authed.Get("/students", api.StudentsHandler(deps))

			authed.Post("/mark-participant-attendance", api.MarkParticipantAttendanceHandler(deps))
			authed.Post("/mark-volunteer-attendance", api.MarkVolunteerAttendanceHandler(deps))

			authed.Post("/create-order", api.CreateOrderHandler(deps))
			authed.Post("/verify-payment", api.VerifyPaymentHandler(deps))
		})
	})
}
