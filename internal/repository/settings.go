package repository

import (
	"database/sql"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

// GetInstitutionSettings reads the singleton branding row. sql.ErrNoRows is
// returned as-is; the caller substitutes the fallback short term.
func (r *Repository) GetInstitutionSettings() (*domain.InstitutionSettings, error) {
	query := `
		SELECT short_term FROM company_settings WHERE id = 1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	var shortTerm sql.NullString
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&shortTerm); err != nil {
		return nil, err
	}

	return &domain.InstitutionSettings{ShortTerm: shortTerm.String}, nil
}

// UpsertInstitutionSettings is used by the seed tool only.
func (r *Repository) UpsertInstitutionSettings(shortTerm string) error {
	query := `
		INSERT INTO company_settings (id, short_term)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET short_term = EXCLUDED.short_term
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, shortTerm)
	return err
}
