package service

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/navigation"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/memory"
)

type failingLocalStorage struct {
	*memory.LocalStorage
	setErr    error
	deleteErr error
}

func (f *failingLocalStorage) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.LocalStorage.Set(ctx, key, value)
}

func (f *failingLocalStorage) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.LocalStorage.Delete(ctx, key)
}

// yieldingLocalStorage gives other goroutines a chance to run inside every
// write so interleavings between Login and Logout actually happen.
type yieldingLocalStorage struct {
	*memory.LocalStorage
}

func (y *yieldingLocalStorage) Set(ctx context.Context, key string, value []byte) error {
	runtime.Gosched()
	err := y.LocalStorage.Set(ctx, key, value)
	runtime.Gosched()
	return err
}

func (y *yieldingLocalStorage) Delete(ctx context.Context, key string) error {
	runtime.Gosched()
	err := y.LocalStorage.Delete(ctx, key)
	runtime.Gosched()
	return err
}

var testUser = domain.User{ID: "7", Name: "Omar Farouk", Email: "omar@example.com"}

func TestSessionManagerDefaults(t *testing.T) {
	m := NewSessionManager(memory.NewLocalStorage(), &spyNavigator{}, SessionManagerConfig{StorageKey: "  "}, nil)
	assert.Equal(t, DefaultSessionStorageKey, m.StorageKey())

	_, ok := m.CurrentUser()
	assert.False(t, ok)
}

func TestSessionManagerLoginThenRestore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLocalStorage()
	m := NewSessionManager(store, &spyNavigator{}, SessionManagerConfig{}, nil)

	require.NoError(t, m.Login(ctx, testUser))

	current, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, testUser, current)

	stored, found, err := store.Get(ctx, DefaultSessionStorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"id":"7","name":"Omar Farouk","email":"omar@example.com"}`, string(stored))

	fresh := NewSessionManager(store, &spyNavigator{}, SessionManagerConfig{}, nil)
	require.NoError(t, fresh.Restore(ctx))
	restored, ok := fresh.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, testUser, restored)
}

func TestSessionManagerLoginOverwrites(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager(memory.NewLocalStorage(), &spyNavigator{}, SessionManagerConfig{}, nil)

	require.NoError(t, m.Login(ctx, testUser))
	second := domain.User{ID: "8", Name: "Nour", Email: "nour@example.com"}
	require.NoError(t, m.Login(ctx, second))

	current, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, second, current)
}

func TestSessionManagerLoginStoreFailureKeepsState(t *testing.T) {
	storeErr := errors.New("disk full")
	store := &failingLocalStorage{LocalStorage: memory.NewLocalStorage(), setErr: storeErr}
	m := NewSessionManager(store, &spyNavigator{}, SessionManagerConfig{}, nil)

	err := m.Login(context.Background(), testUser)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	_, ok := m.CurrentUser()
	assert.False(t, ok)
}

func TestSessionManagerLogoutNavigatesOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLocalStorage()
	nav := &spyNavigator{}
	m := NewSessionManager(store, nav, SessionManagerConfig{}, nil)

	require.NoError(t, m.Login(ctx, testUser))
	require.NoError(t, m.Logout(ctx))

	_, ok := m.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, []string{navigation.RouteLogin}, nav.routes)

	_, found, err := store.Get(ctx, DefaultSessionStorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionManagerDoubleLogout(t *testing.T) {
	ctx := context.Background()
	nav := &spyNavigator{}
	m := NewSessionManager(memory.NewLocalStorage(), nav, SessionManagerConfig{LoginRoute: "/signin"}, nil)

	require.NoError(t, m.Login(ctx, testUser))
	require.NoError(t, m.Logout(ctx))
	require.NoError(t, m.Logout(ctx))

	_, ok := m.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, []string{"/signin", "/signin"}, nav.routes)
}

func TestSessionManagerLogoutStoreFailure(t *testing.T) {
	ctx := context.Background()
	deleteErr := errors.New("permission denied")
	store := &failingLocalStorage{LocalStorage: memory.NewLocalStorage()}
	nav := &spyNavigator{}
	m := NewSessionManager(store, nav, SessionManagerConfig{}, nil)
	require.NoError(t, m.Login(ctx, testUser))

	store.deleteErr = deleteErr
	err := m.Logout(ctx)
	assert.ErrorIs(t, err, deleteErr)
	assert.Empty(t, nav.routes)

	_, ok := m.CurrentUser()
	assert.True(t, ok)
}

func TestSessionManagerRestoreAbsent(t *testing.T) {
	m := NewSessionManager(memory.NewLocalStorage(), &spyNavigator{}, SessionManagerConfig{}, nil)

	require.NoError(t, m.Restore(context.Background()))
	_, ok := m.CurrentUser()
	assert.False(t, ok)
}

func TestSessionManagerRestoreCorruptValue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLocalStorage()
	require.NoError(t, store.Set(ctx, "profile", []byte(`{"id":"7","name":"Omar"}`)))

	m := NewSessionManager(store, &spyNavigator{}, SessionManagerConfig{StorageKey: "profile"}, nil)
	err := m.Restore(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoredUserInvalid)

	var storedErr *StoredUserError
	require.ErrorAs(t, err, &storedErr)
	assert.Equal(t, "profile", storedErr.Key)
	assert.Equal(t, "email", storedErr.Field)

	_, ok := m.CurrentUser()
	assert.False(t, ok)

	// The bad value stays until a login overwrites it.
	raw, found, err := store.Get(ctx, "profile")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"id":"7","name":"Omar"}`, string(raw))
}

func TestSessionFromContextWithoutProvider(t *testing.T) {
	ctx := context.Background()

	m, err := SessionFromContext(ctx)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrSessionProviderMissing)

	_, ok, err := CurrentUserFromContext(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrSessionProviderMissing)
}

func TestSessionFromContextWithProvider(t *testing.T) {
	ctx := context.Background()
	m := NewSessionManager(memory.NewLocalStorage(), &spyNavigator{}, SessionManagerConfig{}, nil)
	require.NoError(t, m.Login(ctx, testUser))

	scoped := WithSessionManager(ctx, m)
	got, err := SessionFromContext(scoped)
	require.NoError(t, err)
	assert.Same(t, m, got)

	user, ok, err := CurrentUserFromContext(scoped)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testUser, user)
}

func TestSessionManagerLogoutThroughRecorder(t *testing.T) {
	ctx, rec := navigation.WithRecorder(context.Background())
	m := NewSessionManager(memory.NewLocalStorage(), navigation.ContextNavigator{}, SessionManagerConfig{}, nil)

	require.NoError(t, m.Logout(ctx))
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, navigation.RouteLogin, last)
}

func TestSessionManagerConcurrentLoginLogoutStayConsistent(t *testing.T) {
	ctx := context.Background()
	store := &yieldingLocalStorage{LocalStorage: memory.NewLocalStorage()}
	nav := navigation.NavigatorFunc(func(ctx context.Context, route string) error { return nil })
	m := NewSessionManager(store, nav, SessionManagerConfig{}, nil)

	for round := 0; round < 200; round++ {
		var wg sync.WaitGroup
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = m.Login(ctx, domain.User{ID: strconv.Itoa(id), Name: "Visitor", Email: "visitor@example.com"})
		}(round)
		go func() {
			defer wg.Done()
			_ = m.Logout(ctx)
		}()
		wg.Wait()

		current, authenticated := m.CurrentUser()
		raw, stored, err := store.Get(ctx, DefaultSessionStorageKey)
		require.NoError(t, err)
		require.Equal(t, authenticated, stored, "round %d: memory and storage disagree", round)
		if stored {
			persisted, err := DecodeStoredUser(raw)
			require.NoError(t, err)
			require.Equal(t, current, persisted, "round %d", round)
		}
	}
}
