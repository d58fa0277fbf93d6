package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"social_backend/internal/feature/auth/domain"
	"social_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a func-field mock of the auth UserRepository interface.
type mockUserRepository struct {
	createFn                func(ctx context.Context, u *entity.User) error
	findByEmailFn           func(ctx context.Context, email string) (*entity.User, error)
	findByEmailOrUsernameFn func(ctx context.Context, email, username string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	if m.findByEmailOrUsernameFn != nil {
		return m.findByEmailOrUsernameFn(ctx, email, username)
	}
	return nil, domain.ErrUserNotFound
}

func TestNewCachingUserRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingUserRepository(nil, 0, &mockUserRepository{}, "")

	if repo.ttl != 5*time.Minute {
		t.Errorf("expected default TTL of 5m, got %v", repo.ttl)
	}
	if repo.namespace != "users" {
		t.Errorf("expected default namespace %q, got %q", "users", repo.namespace)
	}
}

func TestCachingUserRepository_FindByEmail_NilRedis(t *testing.T) {
	t.Parallel()

	expected := &entity.User{ID: "user-1", Email: "test@example.com"}
	inner := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return expected, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingUserRepository(nil, 5*time.Minute, inner, "users")

	u, err := repo.FindByEmail(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != expected.ID {
		t.Errorf("expected user %q, got %q", expected.ID, u.ID)
	}
}

func TestCachingUserRepository_FindByEmail_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := &entity.User{ID: "user-1", Email: "test@example.com", Password: "hashed"}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("users:test@example.com").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	u, err := repo.FindByEmail(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if u.Password != "hashed" {
		t.Error("cached user must round-trip the password hash")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_FindByEmail_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.User{ID: "user-1", Email: "test@example.com", Password: "hashed"}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss
	mock.ExpectGet("users:test@example.com").RedisNil()
	// Set cache after fetching from inner
	mock.ExpectSet("users:test@example.com", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	u, err := repo.FindByEmail(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != expected.ID {
		t.Errorf("expected user %q, got %q", expected.ID, u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_FindByEmail_NotFoundNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	// Cache miss, inner returns not found, no Set expected
	mock.ExpectGet("users:missing@example.com").RedisNil()

	repo := NewCachingUserRepository(rdb, 5*time.Minute, &mockUserRepository{}, "users")
	_, err := repo.FindByEmail(context.Background(), "missing@example.com")

	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_FindByEmailOrUsername_Key(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.User{ID: "user-1", Email: "a@example.com", Username: "user123"}
	expectedJSON, _ := json.Marshal(expected)

	// Key combines email and username
	mock.ExpectGet("users:a@example.com-user123").RedisNil()
	mock.ExpectSet("users:a@example.com-user123", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByEmailOrUsernameFn: func(ctx context.Context, email, username string) (*entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	u, err := repo.FindByEmailOrUsername(context.Background(), "a@example.com", "user123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != expected.ID {
		t.Errorf("expected user %q, got %q", expected.ID, u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := &entity.User{ID: "user-1", Email: "test@example.com"}
	expectedJSON, _ := json.Marshal(expected)

	// Return invalid JSON from cache
	mock.ExpectGet("users:test@example.com").SetVal("invalid json")
	// Delete corrupted cache entry
	mock.ExpectDel("users:test@example.com").SetVal(1)
	// Set new cache after fetching from inner
	mock.ExpectSet("users:test@example.com", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return expected, nil
		},
	}

	repo := NewCachingUserRepository(rdb, 5*time.Minute, inner, "users")
	u, err := repo.FindByEmail(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != expected.ID {
		t.Errorf("expected user %q, got %q", expected.ID, u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

func TestCachingUserRepository_CreatePassesThrough(t *testing.T) {
	t.Parallel()

	created := false
	inner := &mockUserRepository{
		createFn: func(ctx context.Context, u *entity.User) error {
			created = true
			return nil
		},
	}

	repo := NewCachingUserRepository(nil, 5*time.Minute, inner, "users")
	if err := repo.Create(context.Background(), &entity.User{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected inner Create to be called")
	}
}
