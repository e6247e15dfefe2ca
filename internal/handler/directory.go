package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/utils"
)

// GetPerson looks a single person up by a fuzzy search term. The panel sends
// the term as "search"; the applicant page historically sent it as "email",
// so both are accepted.
func (h *Handler) GetPerson(rs *domain.RoleSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Search string `json:"search"`
			Email  string `json:"email"`
		}

		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		term := strings.TrimSpace(req.Search)
		if term == "" {
			term = strings.TrimSpace(req.Email)
		}
		if term == "" {
			h.errorResponse(w, r, http.StatusBadRequest, "Missing search value")
			return
		}

		profile, err := h.store.FindPerson(rs, term)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, rs.Noun+" not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		h.writeJSON(w, r, http.StatusOK, profile)
	}
}

// ResetPassword generates a temporary password, stores its hash and queues
// the notification mail. The hash is committed before the mail is queued; a
// publish failure therefore reports 500 with the new password already in
// effect.
func (h *Handler) ResetPassword(rs *domain.RoleSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email  string `json:"email"`
			Search string `json:"search"`
		}

		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		term := strings.TrimSpace(req.Email)
		if !rs.ResetByEmail {
			term = strings.TrimSpace(req.Search)
		}
		if term == "" {
			h.errorResponse(w, r, http.StatusBadRequest, "Missing search value")
			return
		}

		email, err := h.store.ResolveEmail(rs, term)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, rs.Noun+" not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if email == "" {
			h.errorResponse(w, r, http.StatusBadRequest, "No valid email found")
			return
		}

		password, err := utils.GenerateTempPassword(h.config.TempPassword.Length)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if err := h.store.UpdatePasswordHash(rs, email, string(hash)); err != nil {
			h.internalServerError(w, r, err)
			return
		}

		shortTerm := domain.DefaultShortTerm
		settings, err := h.settings.GetInstitutionSettings()
		switch {
		case err == nil && settings.ShortTerm != "":
			shortTerm = settings.ShortTerm
		case err != nil && !errors.Is(err, sql.ErrNoRows):
			h.internalServerError(w, r, err)
			return
		}

		msg := &domain.MailMessage{
			Type: domain.MailTypeTempPassword,
			To:   email,
			Data: domain.TempPasswordMailData{
				Password:  password,
				ShortTerm: shortTerm,
			},
		}
		if err := h.publisher.Publish(msg); err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.metrics.PasswordResets.WithLabelValues(string(rs.Role)).Inc()
		h.writeJSON(w, r, http.StatusOK, messageResponse{
			Message: "Password reset successfully. Check your email for the new password.",
		})
	}
}

// UpdateStatus flips the account's active flag. 1 is active for every role.
func (h *Handler) UpdateStatus(rs *domain.RoleSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email  string `json:"email" validate:"required,email"`
			Status *int16 `json:"status" validate:"required"`
		}

		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			h.badRequest(w, r, err)
			return
		}
		if *req.Status != domain.StatusActive && *req.Status != domain.StatusInactive {
			h.errorResponse(w, r, http.StatusBadRequest, "Status must be 0 or 1")
			return
		}

		if err := h.store.UpdateStatus(rs, req.Email, *req.Status); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, rs.Noun+" not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		h.metrics.StatusUpdates.WithLabelValues(string(rs.Role)).Inc()
		h.writeJSON(w, r, http.StatusOK, struct {
			Message string `json:"message"`
			Status  int16  `json:"status"`
		}{
			Message: rs.Noun + " status updated successfully",
			Status:  *req.Status,
		})
	}
}

// GetAllPeople returns the complete roster; the panel paginates client-side.
func (h *Handler) GetAllPeople(rs *domain.RoleSchema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.store.ListPeople(rs)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.writeJSON(w, r, http.StatusOK, profiles)
	}
}
