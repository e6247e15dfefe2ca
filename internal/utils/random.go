package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"strings"
	"time"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

const tempPasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateTempPassword draws each character independently and uniformly from
// the 26 uppercase letters, from a cryptographically secure source.
func GenerateTempPassword(length int) (string, error) {
	alphabetSize := big.NewInt(int64(len(tempPasswordAlphabet)))
	password := make([]byte, length)

	for i := range password {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		password[i] = tempPasswordAlphabet[n.Int64()]
	}

	return string(password), nil
}

// Everything below feeds the seed tool only.

var commonFirstNames = []string{
	"Juan", "Maria", "Jose", "Ana", "Pedro", "Rosa", "Carlo", "Liza",
	"Miguel", "Teresa", "Ramon", "Clara", "Andres", "Luz", "Emilio", "Nena",
}

var commonMiddleNames = []string{
	"", "Santos", "Reyes", "Bautista", "Garcia", "Flores", "",
}

var commonLastNames = []string{
	"Cruz", "Dela Cruz", "Reyes", "Santos", "Garcia", "Mendoza", "Torres",
	"Ramos", "Aquino", "Villanueva", "Navarro", "Domingo",
}

func randomName() (first, middle, last string) {
	first = commonFirstNames[mrand.Intn(len(commonFirstNames))]
	middle = commonMiddleNames[mrand.Intn(len(commonMiddleNames))]
	last = commonLastNames[mrand.Intn(len(commonLastNames))]
	return first, middle, last
}

func randomNumber(role domain.Role) string {
	serial := mrand.Intn(90000) + 10000
	switch role {
	case domain.RoleApplicant:
		return fmt.Sprintf("A%d-%05d", time.Now().Year(), serial)
	case domain.RoleStudent:
		return fmt.Sprintf("%d-%05d", time.Now().Year(), serial)
	default:
		return fmt.Sprintf("EMP-%05d", serial)
	}
}

// GenerateRandomPerson builds a plausible person record for the role, minus
// the password hash which the caller supplies.
func GenerateRandomPerson(role domain.Role, emailDomain string) *domain.PersonRecord {
	first, middle, last := randomName()

	localPart := strings.ToLower(strings.ReplaceAll(first+"."+last, " ", ""))
	localPart = fmt.Sprintf("%s%02d", localPart, mrand.Intn(100))

	record := &domain.PersonRecord{
		FirstName:  first,
		MiddleName: middle,
		LastName:   last,
		Email:      localPart + "@" + emailDomain,
		Number:     randomNumber(role),
		Status:     domain.StatusActive,
	}

	if role == domain.RoleApplicant || role == domain.RoleStudent {
		age := mrand.Intn(10) + 16
		birthDate := time.Now().AddDate(-age, -mrand.Intn(12), -mrand.Intn(28))
		record.BirthDate = &birthDate
	}

	return record
}
