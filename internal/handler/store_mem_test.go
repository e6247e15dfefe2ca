package handler

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

// memPerson mirrors one row of a role's backing tables.
type memPerson struct {
	number       string
	first        string
	middle       string
	last         string
	email        string
	birth        *time.Time
	status       int16
	passwordHash string
}

// memStore is an in-memory Store and SettingsSource used by handler tests.
// It reimplements the repository's match policy: case-insensitive substring
// match over the role's match fields.
type memStore struct {
	mu       sync.Mutex
	people   map[domain.Role][]*memPerson
	settings *domain.InstitutionSettings
}

func newMemStore() *memStore {
	return &memStore{people: make(map[domain.Role][]*memPerson)}
}

func (s *memStore) add(role domain.Role, p *memPerson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.people[role] = append(s.people[role], p)
}

func (s *memStore) get(role domain.Role, email string) *memPerson {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.people[role] {
		if p.email == email {
			return p
		}
	}
	return nil
}

func (s *memStore) Ping() error { return nil }

func matchFields(rs *domain.RoleSchema, p *memPerson) []string {
	fields := []string{p.number, p.first, p.middle, p.last, p.email}
	if rs.Role == domain.RoleStudent {
		fields = append(fields, p.first+" "+p.last, p.last+" "+p.first)
	}
	return fields
}

func (s *memStore) match(rs *domain.RoleSchema, term string) *memPerson {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(term)
	for _, p := range s.people[rs.Role] {
		for _, field := range matchFields(rs, p) {
			if field != "" && strings.Contains(strings.ToLower(field), needle) {
				return p
			}
		}
	}
	return nil
}

func (s *memStore) profile(rs *domain.RoleSchema, p *memPerson) *domain.PersonProfile {
	return &domain.PersonProfile{
		Identifier: p.number,
		FullName:   domain.FormatFullName(rs.NameOrder, p.first, p.middle, p.last),
		Email:      p.email,
		BirthDate:  p.birth,
		Status:     p.status,
	}
}

func (s *memStore) FindPerson(rs *domain.RoleSchema, term string) (*domain.PersonProfile, error) {
	p := s.match(rs, term)
	if p == nil {
		return nil, sql.ErrNoRows
	}
	return s.profile(rs, p), nil
}

func (s *memStore) ListPeople(rs *domain.RoleSchema) ([]*domain.PersonProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profiles := make([]*domain.PersonProfile, 0, len(s.people[rs.Role]))
	for _, p := range s.people[rs.Role] {
		profiles = append(profiles, s.profile(rs, p))
	}
	return profiles, nil
}

func (s *memStore) UpdateStatus(rs *domain.RoleSchema, email string, status int16) error {
	p := s.get(rs.Role, email)
	if p == nil {
		return sql.ErrNoRows
	}
	p.status = status
	return nil
}

func (s *memStore) ResolveEmail(rs *domain.RoleSchema, term string) (string, error) {
	if rs.ResetByEmail {
		if p := s.get(rs.Role, term); p != nil {
			return p.email, nil
		}
		return "", sql.ErrNoRows
	}
	p := s.match(rs, term)
	if p == nil {
		return "", sql.ErrNoRows
	}
	return p.email, nil
}

func (s *memStore) UpdatePasswordHash(rs *domain.RoleSchema, email string, hash string) error {
	if p := s.get(rs.Role, email); p != nil {
		p.passwordHash = hash
	}
	return nil
}

func (s *memStore) GetInstitutionSettings() (*domain.InstitutionSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil, sql.ErrNoRows
	}
	return s.settings, nil
}

// memPublisher records queued mail instead of talking to a broker.
type memPublisher struct {
	mu        sync.Mutex
	published []*domain.MailMessage
	fail      error
}

func (p *memPublisher) Publish(msg *domain.MailMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.published = append(p.published, msg)
	return nil
}

func (p *memPublisher) last() *domain.MailMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.published) == 0 {
		return nil
	}
	return p.published[len(p.published)-1]
}
