package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/config"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/mailer"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/metrics"
)

// Store is the data access surface the handlers need. Implemented by
// *repository.Repository and by an in-memory fake in tests.
type Store interface {
	Ping() error
	FindPerson(rs *domain.RoleSchema, term string) (*domain.PersonProfile, error)
	ListPeople(rs *domain.RoleSchema) ([]*domain.PersonProfile, error)
	UpdateStatus(rs *domain.RoleSchema, email string, status int16) error
	ResolveEmail(rs *domain.RoleSchema, term string) (string, error)
	UpdatePasswordHash(rs *domain.RoleSchema, email string, hash string) error
}

type SettingsSource interface {
	GetInstitutionSettings() (*domain.InstitutionSettings, error)
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	store      Store
	settings   SettingsSource
	publisher  mailer.Publisher
	metrics    *metrics.Metrics
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, store Store, settings SettingsSource, publisher mailer.Publisher, m *metrics.Metrics) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		store:      store,
		settings:   settings,
		publisher:  publisher,
		metrics:    m,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.observe)

	h.Mux.Get("/healthz", h.Healthz)
	h.Mux.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// the panel surface; the token is issued by the institution's auth
	// system, this service only verifies it
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.superadmin)

		for _, rs := range domain.RoleSchemas() {
			r.Post("/superadmin-get-"+string(rs.Role), h.GetPerson(rs))
			r.Post("/superadmin-reset-"+string(rs.Role), h.ResetPassword(rs))
			r.Post("/superadmin-update-status-"+string(rs.Role), h.UpdateStatus(rs))
			r.Get("/superadmin-get-all-"+rs.PluralPath, h.GetAllPeople(rs))
		}
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
