package seed

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/config"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/repository"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/utils"
)

// People inserts n random persons for the role, all sharing the configured
// seed password.
func People(cfg *config.Config, repo *repository.Repository, role domain.Role, n int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		record := utils.GenerateRandomPerson(role, cfg.Seed.EmailDomain)
		record.PasswordHash = string(hash)

		if err := repo.CreatePerson(role, record); err != nil {
			// duplicates from the random generator are skipped, not fatal
			slog.Warn("skipping seed record", "role", role, "email", record.Email, "error", err)
			continue
		}
		slog.Info("seeded person", "role", role, "email", record.Email, "number", record.Number)
	}

	return nil
}

// Settings writes the singleton branding row used by outgoing mail.
func Settings(cfg *config.Config, repo *repository.Repository) error {
	return repo.UpsertInstitutionSettings(cfg.Seed.ShortTerm)
}
