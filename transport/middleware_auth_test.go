package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	authmocks "github.com/rakapradana/place-review/mocks/application/auth"
	utilsContext "github.com/rakapradana/place-review/utils/context"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		authHeader  string
		mockCall    func(m *authmocks.AuthApp)
		wantStatus  int
		wantHandler bool
		wantUserID  uint64
	}{
		{
			name:        "missing header on protected route returns 401",
			path:        "/api/places/search/",
			wantStatus:  http.StatusUnauthorized,
			wantHandler: false,
		},
		{
			name:        "wrong scheme returns 401",
			path:        "/api/places/search/",
			authHeader:  "Bearer sometoken",
			wantStatus:  http.StatusUnauthorized,
			wantHandler: false,
		},
		{
			name:       "invalid token returns 401",
			path:       "/api/places/search/",
			authHeader: "Token badtoken",
			mockCall: func(m *authmocks.AuthApp) {
				m.On("ResolveToken", mock.Anything, "badtoken").
					Return(uint64(0), errors.New("unknown token")).
					Once()
			},
			wantStatus:  http.StatusUnauthorized,
			wantHandler: false,
		},
		{
			name:       "valid token reaches the handler with user id in context",
			path:       "/api/places/search/",
			authHeader: "Token goodtoken",
			mockCall: func(m *authmocks.AuthApp) {
				m.On("ResolveToken", mock.Anything, "goodtoken").
					Return(uint64(7), nil).
					Once()
			},
			wantStatus:  http.StatusOK,
			wantHandler: true,
			wantUserID:  7,
		},
		{
			name:        "public route passes without a token",
			path:        "/api/auth/login/",
			wantStatus:  http.StatusOK,
			wantHandler: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			authApp := authmocks.NewAuthApp(t)
			if tt.mockCall != nil {
				tt.mockCall(authApp)
			}

			handlerCalled := false
			var gotUserID uint64
			probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				gotUserID, _ = utilsContext.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authApp)(probe).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if handlerCalled != tt.wantHandler {
				t.Fatalf("handler called = %v, want %v", handlerCalled, tt.wantHandler)
			}
			if tt.wantHandler && tt.wantUserID != 0 && gotUserID != tt.wantUserID {
				t.Fatalf("user id in context = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}

func TestInternalMiddleware(t *testing.T) {
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/internal/health", nil)
		rec := httptest.NewRecorder()

		InternalMiddleware("secret")(probe).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("rejects when no key is configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/internal/health", nil)
		req.Header.Set("Authorization", "Bearer ")
		rec := httptest.NewRecorder()

		InternalMiddleware("")(probe).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("accepts matching key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/internal/health", nil)
		req.Header.Set("Authorization", "Bearer secret")
		rec := httptest.NewRecorder()

		InternalMiddleware("secret")(probe).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}
