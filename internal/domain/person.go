package domain

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleRegistrar Role = "registrar"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleApplicant, RoleStudent, RoleFaculty, RoleRegistrar:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Canonical status polarity for every role: 1 means the account is active.
// Legacy sources flipped this for some roles; the flip is not carried over.
const (
	StatusInactive int16 = 0
	StatusActive   int16 = 1
)

// PersonProfile is the normalized projection returned by lookups and
// roster listings, regardless of which tables back the role.
type PersonProfile struct {
	Identifier string     `json:"identifier"`
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	BirthDate  *time.Time `json:"birthdate,omitempty"`
	Status     int16      `json:"status"`
}

// PersonRecord is the write-side shape used by the seed tool. Person rows are
// otherwise created by the registration workflow, outside this service.
type PersonRecord struct {
	FirstName    string
	MiddleName   string
	LastName     string
	BirthDate    *time.Time
	Email        string
	PasswordHash string
	Number       string
	Status       int16
}

type NameOrder int

const (
	// "First Middle Last"
	NameFirstMiddleLast NameOrder = iota
	// "Last, First Middle"
	NameLastFirstMiddle
)

// FormatFullName joins the non-empty name parts in the role's display order.
func FormatFullName(order NameOrder, first, middle, last string) string {
	switch order {
	case NameLastFirstMiddle:
		given := joinNonEmpty(first, middle)
		if last == "" {
			return given
		}
		if given == "" {
			return last
		}
		return last + ", " + given
	default:
		return joinNonEmpty(first, middle, last)
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, " ")
}
