package session

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/client/repositories/state"
	"github.com/sohaibmughall/crm-panel/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- fakes ----

type memRepo struct {
	mu   sync.Mutex
	data map[string][]byte

	getErr error
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[key], nil
}

func (m *memRepo) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memRepo) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memRepo) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string][]byte{}
	return nil
}

func testLogger() logging.Logger { return logging.NewDefault() }

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func alice() *models.User {
	return &models.User{ID: "u-1", Email: "alice@example.com", Name: "Alice"}
}

// ---- tests ----

func TestLogin_SetsAllFieldsAndInvariant(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMemRepo(), nil, testLogger())

	require.NoError(t, s.Login(ctx, alice(), "tok", models.RoleAdmin))

	cur := s.Current()
	require.True(t, cur.IsAuthenticated)
	require.Equal(t, cur.IsAuthenticated, cur.Authenticated())
	require.Equal(t, "tok", cur.Token)
	require.Equal(t, models.RoleAdmin, cur.Role)

	// idempotent overwrite with different values
	require.NoError(t, s.Login(ctx, &models.User{ID: "u-2"}, "tok2", models.RoleViewer))
	cur = s.Current()
	require.Equal(t, "u-2", cur.User.ID)
	require.Equal(t, models.RoleViewer, cur.Role)
	require.Equal(t, cur.IsAuthenticated, cur.Authenticated())
}

func TestLogin_InvariantHoldsForIncompleteSessions(t *testing.T) {
	ctx := context.Background()

	s := NewStore(newMemRepo(), nil, testLogger())
	require.NoError(t, s.Login(ctx, alice(), "", models.RoleAdmin))
	cur := s.Current()
	require.False(t, cur.IsAuthenticated)
	require.Equal(t, cur.IsAuthenticated, cur.Authenticated())

	require.NoError(t, s.Login(ctx, nil, "tok", models.RoleAdmin))
	cur = s.Current()
	require.False(t, cur.IsAuthenticated)
	require.Equal(t, cur.IsAuthenticated, cur.Authenticated())
}

func TestLogin_DerivesRoleFromTokenClaim(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMemRepo(), nil, testLogger())

	tok := signedToken(t, jwt.MapClaims{"sub": "u-1", "user_metadata": map[string]any{"role": "editor"}})
	require.NoError(t, s.Login(ctx, alice(), tok, ""))

	require.Equal(t, models.RoleEditor, s.Current().Role)
}

func TestLogout_ClearsLocallyAndFiresRemoteSignOut(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var gotToken string
	signOut := func(ctx context.Context, token string) error {
		mu.Lock()
		defer mu.Unlock()
		gotToken = token
		return nil
	}

	repo := newMemRepo()
	s := NewStore(repo, signOut, testLogger())
	require.NoError(t, s.Login(ctx, alice(), "tok", models.RoleAdmin))

	s.Logout(ctx)

	cur := s.Current()
	require.False(t, cur.IsAuthenticated)
	require.Nil(t, cur.User)
	require.Empty(t, cur.Token)
	require.Empty(t, cur.Role)

	// persisted record is gone
	data, err := repo.Get(ctx, StateKey)
	require.NoError(t, err)
	require.Nil(t, data)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return gotToken == "tok"
	}, time.Second, 10*time.Millisecond)
}

func TestLogout_RemoteFailureDoesNotUndoLocalClear(t *testing.T) {
	ctx := context.Background()
	signOut := func(ctx context.Context, token string) error {
		return context.DeadlineExceeded
	}

	s := NewStore(newMemRepo(), signOut, testLogger())
	require.NoError(t, s.Login(ctx, alice(), "tok", models.RoleAdmin))

	s.Logout(ctx)
	require.False(t, s.Current().IsAuthenticated)
}

func TestUpdateRole_OverwritesRoleOnly(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMemRepo(), nil, testLogger())
	require.NoError(t, s.Login(ctx, alice(), "tok", models.RoleViewer))

	require.NoError(t, s.UpdateRole(ctx, models.RoleAdmin))

	cur := s.Current()
	require.Equal(t, models.RoleAdmin, cur.Role)
	require.Equal(t, "u-1", cur.User.ID)
	require.Equal(t, "tok", cur.Token)
	require.True(t, cur.IsAuthenticated)
}

func TestHydrate_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()

	first := NewStore(repo, nil, testLogger())
	require.NoError(t, first.Login(ctx, alice(), "tok", models.RoleEditor))

	// a fresh process start
	second := NewStore(repo, nil, testLogger())
	require.False(t, second.Hydrated())
	require.False(t, second.Current().IsAuthenticated)

	require.NoError(t, second.Hydrate(ctx))
	require.True(t, second.Hydrated())

	cur := second.Current()
	require.True(t, cur.IsAuthenticated)
	require.Equal(t, "u-1", cur.User.ID)
	require.Equal(t, models.RoleEditor, cur.Role)
}

func TestHydrate_EmptyStateLeavesSignedOut(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMemRepo(), nil, testLogger())

	require.NoError(t, s.Hydrate(ctx))
	require.True(t, s.Hydrated())
	require.False(t, s.Current().IsAuthenticated)
}

func TestHydrate_MalformedRecordIsDiscarded(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	require.NoError(t, repo.Set(ctx, StateKey, []byte("{not json")))

	s := NewStore(repo, nil, testLogger())
	require.NoError(t, s.Hydrate(ctx))
	require.False(t, s.Current().IsAuthenticated)
}

func TestHydrate_ExpiredTokenIsDiscarded(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()

	expired := signedToken(t, jwt.MapClaims{"sub": "u-1", "exp": time.Now().Add(-time.Hour).Unix()})
	first := NewStore(repo, nil, testLogger())
	require.NoError(t, first.Login(ctx, alice(), expired, models.RoleAdmin))

	second := NewStore(repo, nil, testLogger())
	require.NoError(t, second.Hydrate(ctx))
	require.False(t, second.Current().IsAuthenticated)

	data, err := repo.Get(ctx, StateKey)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestTokenSource(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMemRepo(), nil, testLogger())

	require.Empty(t, s.AccessToken())
	require.Empty(t, s.UserID())

	require.NoError(t, s.Login(ctx, alice(), "tok", models.RoleAdmin))
	require.Equal(t, "tok", s.AccessToken())
	require.Equal(t, "u-1", s.UserID())
}

// TestHydrate_SQLiteRoundTrip exercises the real repository the session
// persists through.
func TestHydrate_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", "file:sessionstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE app_state (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	repo := state.NewSQLiteRepository(db)

	first := NewStore(repo, nil, testLogger())
	require.NoError(t, first.Login(ctx, alice(), "tok", models.RoleAdmin))

	second := NewStore(repo, nil, testLogger())
	require.NoError(t, second.Hydrate(ctx))
	require.True(t, second.Current().IsAuthenticated)
	require.Equal(t, models.RoleAdmin, second.Current().Role)
}
