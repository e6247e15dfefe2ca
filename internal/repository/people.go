package repository

import (
	"fmt"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

// The insert helpers below back the seed tool. Applicants, students and
// registrars live in user_accounts (students and applicants joined with
// person_table plus a numbering table); faculty has its own prof_table.

func (r *Repository) CreatePerson(role domain.Role, p *domain.PersonRecord) error {
	switch role {
	case domain.RoleApplicant:
		return r.createNumberedPerson(p, "applicant", "applicant_numbering_table", "applicant_number")
	case domain.RoleStudent:
		return r.createNumberedPerson(p, "student", "student_numbering_table", "student_number")
	case domain.RoleRegistrar:
		return r.createRegistrar(p)
	case domain.RoleFaculty:
		return r.createFaculty(p)
	default:
		return fmt.Errorf("unknown role %q", role)
	}
}

func (r *Repository) createNumberedPerson(p *domain.PersonRecord, role string, numberTable string, numberColumn string) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var personID int64
	personQuery := `
		INSERT INTO person_table (first_name, middle_name, last_name, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING person_id
	`
	args := []any{p.FirstName, nullable(p.MiddleName), p.LastName, p.BirthDate}
	if err := tx.QueryRowContext(ctx, personQuery, args...).Scan(&personID); err != nil {
		return err
	}

	accountQuery := `
		INSERT INTO user_accounts (person_id, role, email, password, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, accountQuery, personID, role, p.Email, p.PasswordHash, p.Status); err != nil {
		return err
	}

	numberQuery := fmt.Sprintf(`
		INSERT INTO %s (person_id, %s)
		VALUES ($1, $2)
	`, numberTable, numberColumn)
	if _, err := tx.ExecContext(ctx, numberQuery, personID, p.Number); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) createRegistrar(p *domain.PersonRecord) error {
	query := `
		INSERT INTO user_accounts (role, employee_id, first_name, middle_name, last_name, email, password, status)
		VALUES ('registrar', $1, $2, $3, $4, $5, $6, $7)
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{p.Number, p.FirstName, nullable(p.MiddleName), p.LastName, p.Email, p.PasswordHash, p.Status}
	_, err := r.dbpool.ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) createFaculty(p *domain.PersonRecord) error {
	query := `
		INSERT INTO prof_table (employee_id, fname, mname, lname, email, password, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	args := []any{p.Number, p.FirstName, nullable(p.MiddleName), p.LastName, p.Email, p.PasswordHash, p.Status}
	_, err := r.dbpool.ExecContext(ctx, query, args...)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
