package repository

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

func TestMatchClause(t *testing.T) {
	rs, ok := domain.SchemaFor(domain.RoleStudent)
	require.True(t, ok)

	clause := matchClause(rs)

	assert.True(t, strings.HasPrefix(clause, "("))
	assert.True(t, strings.HasSuffix(clause, ")"))
	assert.Equal(t, len(rs.MatchExprs), strings.Count(clause, "ILIKE"))
	// one bind parameter reused for every expression
	assert.Contains(t, clause, "ILIKE '%' || $1 || '%'")
	assert.NotContains(t, clause, "$2")
}

func TestWithRoleFilter(t *testing.T) {
	student, _ := domain.SchemaFor(domain.RoleStudent)
	faculty, _ := domain.SchemaFor(domain.RoleFaculty)

	assert.Equal(t, "ua.role = 'student' AND ua.email = $1", withRoleFilter(student, "ua.email = $1"))
	assert.Equal(t, "ua.role = 'student'", withRoleFilter(student, ""))
	// prof_table holds one role, no filter needed
	assert.Equal(t, "pr.email = $1", withRoleFilter(faculty, "pr.email = $1"))
}

func TestProfileColumns(t *testing.T) {
	student, _ := domain.SchemaFor(domain.RoleStudent)
	faculty, _ := domain.SchemaFor(domain.RoleFaculty)

	assert.Contains(t, profileColumns(student), "pt.birth_date")
	assert.Contains(t, profileColumns(faculty), "NULL::date")
}

func fakeScan(ident, first, middle, last, email any, birth any, status int16) func(dest ...any) error {
	return func(dest ...any) error {
		*(dest[0].(*sql.NullString)) = ident.(sql.NullString)
		*(dest[1].(*string)) = first.(string)
		*(dest[2].(*sql.NullString)) = middle.(sql.NullString)
		*(dest[3].(*string)) = last.(string)
		*(dest[4].(*string)) = email.(string)
		*(dest[5].(*sql.NullTime)) = birth.(sql.NullTime)
		*(dest[6].(*int16)) = status
		return nil
	}
}

func TestScanProfile(t *testing.T) {
	student, _ := domain.SchemaFor(domain.RoleStudent)
	applicant, _ := domain.SchemaFor(domain.RoleApplicant)

	born := time.Date(2004, 6, 15, 0, 0, 0, 0, time.UTC)
	profile, err := scanProfile(student, fakeScan(
		sql.NullString{String: "2026-00002", Valid: true},
		"Juan",
		sql.NullString{String: "Santos", Valid: true},
		"Cruz",
		"a@x.com",
		sql.NullTime{Time: born, Valid: true},
		1,
	))
	require.NoError(t, err)
	assert.Equal(t, "2026-00002", profile.Identifier)
	assert.Equal(t, "Juan Santos Cruz", profile.FullName)
	assert.Equal(t, "a@x.com", profile.Email)
	require.NotNil(t, profile.BirthDate)
	assert.Equal(t, born, *profile.BirthDate)
	assert.Equal(t, int16(1), profile.Status)

	// applicant names render Last, First Middle; NULLs become empty/absent
	profile, err = scanProfile(applicant, fakeScan(
		sql.NullString{},
		"Rosa",
		sql.NullString{},
		"Santos",
		"rosa@x.com",
		sql.NullTime{},
		0,
	))
	require.NoError(t, err)
	assert.Empty(t, profile.Identifier)
	assert.Equal(t, "Santos, Rosa", profile.FullName)
	assert.Nil(t, profile.BirthDate)
	assert.Equal(t, int16(0), profile.Status)
}
