package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleSchemasCoverEveryRole(t *testing.T) {
	schemas := RoleSchemas()
	require.Len(t, schemas, 4)

	seenRoles := make(map[Role]bool)
	seenPaths := make(map[string]bool)
	for _, rs := range schemas {
		assert.False(t, seenRoles[rs.Role], "duplicate role %s", rs.Role)
		seenRoles[rs.Role] = true

		assert.False(t, seenPaths[rs.PluralPath], "duplicate path %s", rs.PluralPath)
		seenPaths[rs.PluralPath] = true

		assert.NotEmpty(t, rs.Noun)
		assert.NotEmpty(t, rs.From)
		assert.NotEmpty(t, rs.IdentExpr)
		assert.NotEmpty(t, rs.EmailExpr)
		assert.NotEmpty(t, rs.OrderBy)
		assert.NotEmpty(t, rs.MatchExprs)
		assert.NotEmpty(t, rs.StatusTable)
		assert.NotEmpty(t, rs.CredTable)
	}

	for _, role := range []Role{RoleApplicant, RoleStudent, RoleFaculty, RoleRegistrar} {
		rs, ok := SchemaFor(role)
		require.True(t, ok)
		assert.Equal(t, role, rs.Role)
	}

	_, ok := SchemaFor(Role("janitor"))
	assert.False(t, ok)
}

func TestStudentSchemaMatchesConcatenatedNames(t *testing.T) {
	rs, ok := SchemaFor(RoleStudent)
	require.True(t, ok)

	assert.Contains(t, rs.MatchExprs, "pt.first_name || ' ' || pt.last_name")
	assert.Contains(t, rs.MatchExprs, "pt.last_name || ' ' || pt.first_name")
	assert.False(t, rs.ResetByEmail, "student resets resolve by fuzzy search")
}

func TestFacultySchemaHasNoBirthDate(t *testing.T) {
	rs, ok := SchemaFor(RoleFaculty)
	require.True(t, ok)

	assert.Empty(t, rs.BirthExpr)
	assert.Empty(t, rs.Where, "prof_table holds a single role")
	assert.True(t, rs.ResetByEmail)
}
