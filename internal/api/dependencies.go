package api

import (
	"campus-connect/eventhub/internal/common"
	"campus-connect/eventhub/internal/config"
	"campus-connect/eventhub/internal/db"
	"campus-connect/eventhub/internal/db/repositories"
	"campus-connect/eventhub/internal/metrics"
	"campus-connect/eventhub/internal/providers"
	"campus-connect/eventhub/internal/services"
)

type Repositories struct {
	Students       *repositories.StudentRepository
	Clubs          *repositories.ClubRepository
	Events         *repositories.EventRepository
	Participations *repositories.ParticipationRepository
	Ledger         *repositories.LedgerRepository
}

type Services struct {
	Auth          *services.AuthService
	Events        *services.EventService
	Participation *services.ParticipationService
	Payments      *services.PaymentService
	PasswordReset *services.PasswordResetService
	Clubs         *services.ClubService
}

type Dependencies struct {
	Config   config.App
	Repo     *Repositories
	Services *Services
	Sessions common.SessionStore
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories and services on top of the shared
// database handles. External collaborators (session store, mailer,
// payment gateway) are injected so tests can swap them out.
func InitDependencies(
	cfg config.App,
	sessions common.SessionStore,
	mailer common.Mailer,
	gateway providers.PaymentGateway,
	metricsReg *metrics.MetricsRegistry,
) (*Dependencies, error) {

	repos := &Repositories{
		Students:       repositories.NewStudentRepository(db.PgDB),
		Clubs:          repositories.NewClubRepository(db.PgDB),
		Events:         repositories.NewEventRepository(db.PgDB),
		Participations: repositories.NewParticipationRepository(db.PgDB),
		Ledger:         repositories.NewLedgerRepository(db.DB),
	}

	cacheSvc := common.NewCacheService(600, 1200)

	svcs := &Services{
		Auth:          services.NewAuthService(repos.Students),
		Events:        services.NewEventService(repos.Events, repos.Clubs, repos.Participations),
		Participation: services.NewParticipationService(repos.Events, repos.Participations),
		Payments:      services.NewPaymentService(repos.Events, repos.Participations, gateway),
		PasswordReset: services.NewPasswordResetService(repos.Students, mailer, cfg.FrontendOrigin),
		Clubs:         services.NewClubService(repos.Clubs, repos.Students, cacheSvc),
	}

	return &Dependencies{
		Config:   cfg,
		Repo:     repos,
		Services: svcs,
		Sessions: sessions,
		Metrics:  metricsReg,
	}, nil
}
