package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
	"github.com/aussiebroadwan/empdir/internal/empdir/graph"
	empdirhttp "github.com/aussiebroadwan/empdir/internal/empdir/http"
	"github.com/aussiebroadwan/empdir/pkg/jwtx"
)

func TestIdentityMiddleware(t *testing.T) {
	tokens := jwtx.NewHS256([]byte("test-secret"), "empdir-test")

	var seen *domain.Identity
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = graph.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	wrapped := empdirhttp.IdentityMiddleware(tokens)(probe)

	issue := func(t *testing.T, at time.Time) string {
		t.Helper()
		token, err := tokens.Sign(jwtx.NewIdentityClaims(
			"user-1", "alice", "alice@x.com", "empdir-test", jwtx.DefaultTokenTTL, at))
		require.NoError(t, err)
		return token
	}

	do := func(authz string) *httptest.ResponseRecorder {
		seen = nil
		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token attaches identity", func(t *testing.T) {
		rec := do("Bearer " + issue(t, time.Now().UTC()))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		require.Equal(t, "user-1", seen.UserID)
		require.Equal(t, "alice", seen.Username)
		require.Equal(t, "alice@x.com", seen.Email)
	})

	t.Run("missing header is anonymous, not rejected", func(t *testing.T) {
		rec := do("")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, seen)
	})

	t.Run("garbage token is anonymous, not rejected", func(t *testing.T) {
		rec := do("Bearer not-a-token")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, seen)
	})

	t.Run("expired token is anonymous, not rejected", func(t *testing.T) {
		rec := do("Bearer " + issue(t, time.Now().UTC().Add(-48*time.Hour)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, seen)
	})

	t.Run("non-bearer scheme is anonymous", func(t *testing.T) {
		rec := do("Basic dXNlcjpwdw==")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, seen)
	})
}
