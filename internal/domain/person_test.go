package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"applicant", "student", "faculty", "registrar"} {
		role, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), role)
	}

	_, err := ParseRole("janitor")
	assert.Error(t, err)

	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestFormatFullName(t *testing.T) {
	tests := []struct {
		name                string
		order               NameOrder
		first, middle, last string
		want                string
	}{
		{"first middle last", NameFirstMiddleLast, "Juan", "Santos", "Cruz", "Juan Santos Cruz"},
		{"no middle name", NameFirstMiddleLast, "Juan", "", "Cruz", "Juan Cruz"},
		{"whitespace middle name", NameFirstMiddleLast, "Juan", "  ", "Cruz", "Juan Cruz"},
		{"last first middle", NameLastFirstMiddle, "Juan", "Santos", "Cruz", "Cruz, Juan Santos"},
		{"last first no middle", NameLastFirstMiddle, "Juan", "", "Cruz", "Cruz, Juan"},
		{"only last", NameLastFirstMiddle, "", "", "Cruz", "Cruz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFullName(tt.order, tt.first, tt.middle, tt.last))
		})
	}
}
