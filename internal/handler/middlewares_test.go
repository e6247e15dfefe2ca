package handler

import (
	"net/http"
	"testing"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

func TestSuperadminGuard(t *testing.T) {
	store := newMemStore()
	store.add(domain.RoleStudent, &memPerson{
		number: "2026-00001", first: "Anne", last: "Reyes", email: "anne@x.com", status: 1,
	})
	h := newTestHandler(t, store, &memPublisher{})

	rec := doJSON(t, h, http.MethodPost, "/superadmin-get-student", "", map[string]string{"search": "Anne"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/superadmin-get-student", "not-a-token", map[string]string{"search": "Anne"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/superadmin-get-student", signToken(t, "student"), map[string]string{"search": "Anne"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a non-registrar token, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/superadmin-get-student", signToken(t, "registrar"), map[string]string{"search": "Anne"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a registrar token, got %d", rec.Code)
	}
}

func TestHealthzAndMetricsAreOpen(t *testing.T) {
	h := newTestHandler(t, newMemStore(), &memPublisher{})

	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from healthz, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a request id header")
	}

	rec = doJSON(t, h, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics, got %d", rec.Code)
	}
}
