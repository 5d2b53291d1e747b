package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/navigation"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

const DefaultSessionStorageKey = "user"

var ErrSessionProviderMissing = errors.New("session manager accessed outside its provider")

type SessionManagerConfig struct {
	StorageKey string
	LoginRoute string
}

// SessionManager is the single process-wide holder of the current user. It is
// built once at start-up and handed to consumers; request code reaches it via
// SessionFromContext.
type SessionManager struct {
	store      ports.LocalStorage
	navigator  navigation.Navigator
	key        string
	loginRoute string
	logger     *zap.Logger

	// writeMu serialises storage writes with the in-memory swap so the
	// persisted value always matches the current user.
	writeMu sync.Mutex
	mu      sync.RWMutex
	user    *domain.User
}

func NewSessionManager(store ports.LocalStorage, navigator navigation.Navigator, cfg SessionManagerConfig, logger *zap.Logger) *SessionManager {
	key := strings.TrimSpace(cfg.StorageKey)
	if key == "" {
		key = DefaultSessionStorageKey
	}
	loginRoute := strings.TrimSpace(cfg.LoginRoute)
	if loginRoute == "" {
		loginRoute = navigation.RouteLogin
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		store:      store,
		navigator:  navigator,
		key:        key,
		loginRoute: loginRoute,
		logger:     logger,
	}
}

func (m *SessionManager) StorageKey() string {
	return m.key
}

func (m *SessionManager) LoginRoute() string {
	return m.loginRoute
}

// Restore rehydrates the current user from storage. A missing value leaves the
// manager anonymous; a value that fails validation also leaves it anonymous
// and is reported as a *StoredUserError.
func (m *SessionManager) Restore(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	data, ok, err := m.store.Get(ctx, m.key)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		m.setUser(nil)
		return nil
	}

	user, err := DecodeStoredUser(data)
	if err != nil {
		m.setUser(nil)
		var storedErr *StoredUserError
		if errors.As(err, &storedErr) {
			storedErr.Key = m.key
		}
		return err
	}

	m.setUser(&user)
	m.logger.Info("session restored", zap.String("user_id", user.ID))
	return nil
}

// Login persists user and makes it current, replacing any previous user.
func (m *SessionManager) Login(ctx context.Context, user domain.User) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	data, err := EncodeStoredUser(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}

	m.setUser(&user)
	m.logger.Info("user logged in", zap.String("user_id", user.ID))
	return nil
}

// Logout forgets the current user and navigates to the login route. Calling it
// while anonymous is allowed.
func (m *SessionManager) Logout(ctx context.Context) error {
	previous, err := m.forget(ctx)
	if err != nil {
		return err
	}
	if previous != nil {
		m.logger.Info("user logged out", zap.String("user_id", previous.ID))
	}

	if err := m.navigator.Navigate(ctx, m.loginRoute); err != nil {
		return fmt.Errorf("navigate to %s: %w", m.loginRoute, err)
	}
	return nil
}

func (m *SessionManager) forget(ctx context.Context) (*domain.User, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if err := m.store.Delete(ctx, m.key); err != nil {
		return nil, fmt.Errorf("clear persisted user: %w", err)
	}
	return m.swapUser(nil), nil
}

func (m *SessionManager) CurrentUser() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return domain.User{}, false
	}
	return *m.user, true
}

func (m *SessionManager) setUser(user *domain.User) {
	m.swapUser(user)
}

func (m *SessionManager) swapUser(user *domain.User) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	previous := m.user
	if user != nil {
		clone := *user
		user = &clone
	}
	m.user = user
	return previous
}

type sessionManagerKey struct{}

// WithSessionManager makes m reachable from ctx.
func WithSessionManager(ctx context.Context, m *SessionManager) context.Context {
	return context.WithValue(ctx, sessionManagerKey{}, m)
}

func SessionFromContext(ctx context.Context) (*SessionManager, error) {
	m, ok := ctx.Value(sessionManagerKey{}).(*SessionManager)
	if !ok || m == nil {
		return nil, ErrSessionProviderMissing
	}
	return m, nil
}

// CurrentUserFromContext is the read accessor for request code.
func CurrentUserFromContext(ctx context.Context) (domain.User, bool, error) {
	m, err := SessionFromContext(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	user, ok := m.CurrentUser()
	return user, ok, nil
}
