package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

// matchClause builds the fuzzy predicate: a case-insensitive substring match
// of $1 against every match expression of the role.
func matchClause(rs *domain.RoleSchema) string {
	conds := make([]string, 0, len(rs.MatchExprs))
	for _, expr := range rs.MatchExprs {
		conds = append(conds, fmt.Sprintf("%s ILIKE '%%' || $1 || '%%'", expr))
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

func profileColumns(rs *domain.RoleSchema) string {
	birth := "NULL::date"
	if rs.BirthExpr != "" {
		birth = rs.BirthExpr
	}
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		rs.IdentExpr, rs.FirstExpr, rs.MiddleExpr, rs.LastExpr, rs.EmailExpr, birth, rs.StatusExpr)
}

func withRoleFilter(rs *domain.RoleSchema, cond string) string {
	if rs.Where == "" {
		return cond
	}
	if cond == "" {
		return rs.Where
	}
	return rs.Where + " AND " + cond
}

func scanProfile(rs *domain.RoleSchema, scan func(dest ...any) error) (*domain.PersonProfile, error) {
	var ident, middle sql.NullString
	var first, last, email string
	var birth sql.NullTime
	var status int16

	if err := scan(&ident, &first, &middle, &last, &email, &birth, &status); err != nil {
		return nil, err
	}

	profile := &domain.PersonProfile{
		Identifier: ident.String,
		FullName:   domain.FormatFullName(rs.NameOrder, first, middle.String, last),
		Email:      email,
		Status:     status,
	}
	if birth.Valid {
		birthDate := birth.Time
		profile.BirthDate = &birthDate
	}

	return profile, nil
}

// FindPerson returns the first row whose match expressions contain term.
// sql.ErrNoRows when nothing matches.
func (r *Repository) FindPerson(rs *domain.RoleSchema, term string) (*domain.PersonProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE %s
		LIMIT 1
	`, profileColumns(rs), rs.From, withRoleFilter(rs, matchClause(rs)))

	ctx, cancel := r.queryContext()
	defer cancel()

	row := r.dbpool.QueryRowContext(ctx, query, term)
	return scanProfile(rs, row.Scan)
}

// ListPeople returns the complete roster for the role in its natural order.
// Pagination is the caller's concern.
func (r *Repository) ListPeople(rs *domain.RoleSchema) ([]*domain.PersonProfile, error) {
	where := ""
	if rs.Where != "" {
		where = "WHERE " + rs.Where
	}
	query := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		ORDER BY %s
	`, profileColumns(rs), rs.From, where, rs.OrderBy)

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*domain.PersonProfile, 0)
	for rows.Next() {
		profile, err := scanProfile(rs, rows.Scan)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// UpdateStatus flips the active flag for the account keyed by exact email.
// sql.ErrNoRows when no account matched, for every role alike.
func (r *Repository) UpdateStatus(rs *domain.RoleSchema, email string, status int16) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE %s`, rs.StatusTable, rs.StatusWhere)

	ctx, cancel := r.queryContext()
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, status, email)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ResolveEmail turns a reset request's identifier into the exact email the
// write path keys on. Exact-email roles verify the account exists; fuzzy
// roles reuse the lookup match policy.
func (r *Repository) ResolveEmail(rs *domain.RoleSchema, term string) (string, error) {
	var query string
	if rs.ResetByEmail {
		query = fmt.Sprintf(`
			SELECT %s
			%s
			WHERE %s
			LIMIT 1
		`, rs.EmailExpr, rs.From, withRoleFilter(rs, rs.EmailExpr+" = $1"))
	} else {
		query = fmt.Sprintf(`
			SELECT %s
			%s
			WHERE %s
			LIMIT 1
		`, rs.EmailExpr, rs.From, withRoleFilter(rs, matchClause(rs)))
	}

	ctx, cancel := r.queryContext()
	defer cancel()

	var email sql.NullString
	if err := r.dbpool.QueryRowContext(ctx, query, term).Scan(&email); err != nil {
		return "", err
	}

	return email.String, nil
}

// UpdatePasswordHash replaces the stored credential unconditionally;
// concurrent resets are last-write-wins.
func (r *Repository) UpdatePasswordHash(rs *domain.RoleSchema, email string, hash string) error {
	query := fmt.Sprintf(`UPDATE %s SET password = $1 WHERE %s`, rs.CredTable, rs.CredWhere)

	ctx, cancel := r.queryContext()
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, hash, email)
	return err
}
