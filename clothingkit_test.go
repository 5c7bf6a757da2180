package clothingkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lapiogga/clothing-opencode/internal/core/domain"
)

type memStore struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemStore() *memStore { return &memStore{m: make(map[string]string)} }

func (s *memStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// fakeBackend is a minimal slice of the real API: token-checked /auth
// endpoints plus a cart.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	e := echo.New()

	e.POST("/auth/login", func(c echo.Context) error {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return err
		}
		if body.Password != "valid" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "사용자명 또는 비밀번호가 올바르지 않습니다"})
		}
		return c.JSON(http.StatusOK, map[string]string{"access_token": "tok-live", "token_type": "bearer"})
	})

	requireToken := func(c echo.Context) (bool, error) {
		if c.Request().Header.Get("Authorization") != "Bearer tok-live" {
			return false, c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
		}
		return true, nil
	}

	e.GET("/auth/me", func(c echo.Context) error {
		if ok, err := requireToken(c); !ok {
			return err
		}
		return c.JSON(http.StatusOK, domain.User{ID: 1, Username: "kim", Role: domain.RoleGeneral, IsActive: true})
	})

	e.GET("/cart", func(c echo.Context) error {
		if ok, err := requireToken(c); !ok {
			return err
		}
		return c.JSON(http.StatusOK, []domain.CartItem{
			{ID: 1, Product: domain.CartProduct{ID: 11, Name: "셔츠", Price: 20000}, Quantity: 2},
		})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) *Config {
	return &Config{
		APIBaseURL: baseURL,
		APITimeout: 5 * time.Second,
		Env:        "test",
		LogLevel:   "disabled",
	}
}

func TestKit_LoginFetchAndLogout(t *testing.T) {
	srv := fakeBackend(t)
	kit, err := New(context.Background(), testConfig(srv.URL), WithStorage(newMemStore()))
	if err != nil {
		t.Fatalf("new kit: %v", err)
	}

	result := kit.Session.Login(context.Background(), "kim", "valid")
	if !result.Success {
		t.Fatalf("login failed: %q", result.Message)
	}
	if kit.Session.Role() != domain.RoleGeneral {
		t.Errorf("role = %q", kit.Session.Role())
	}

	// The cart gateway reuses the session token transparently.
	items, err := kit.Cart.FetchCart(context.Background())
	if err != nil {
		t.Fatalf("fetch cart: %v", err)
	}
	if len(items) != 1 || items[0].Product.Name != "셔츠" {
		t.Errorf("cart = %+v", items)
	}

	kit.Session.Logout()
	if kit.Session.IsLoggedIn() {
		t.Error("expected anonymous session after logout")
	}
}

func TestKit_BadPasswordSurfacesServerDetail(t *testing.T) {
	srv := fakeBackend(t)
	kit, err := New(context.Background(), testConfig(srv.URL), WithStorage(newMemStore()))
	if err != nil {
		t.Fatalf("new kit: %v", err)
	}

	result := kit.Session.Login(context.Background(), "kim", "wrong")
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Message != "사용자명 또는 비밀번호가 올바르지 않습니다" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestKit_ExpiredTokenForcesLoginRedirect(t *testing.T) {
	srv := fakeBackend(t)
	store := newMemStore()
	// Simulate a previous run that persisted a token the server no longer
	// accepts.
	store.Set("token", "tok-stale")

	var navigated []string
	kit, err := New(context.Background(), testConfig(srv.URL),
		WithStorage(store),
		WithNavigator(func(path string) { navigated = append(navigated, path) }),
	)
	if err != nil {
		t.Fatalf("new kit: %v", err)
	}
	if !kit.Session.IsLoggedIn() {
		t.Fatal("persisted token must restore a logged-in session")
	}

	// Any authenticated request now meets a 401; the hook must clear the
	// session and request the login redirect.
	if _, err := kit.Cart.FetchCart(context.Background()); err == nil {
		t.Fatal("expected error from stale token")
	}
	if kit.Session.IsLoggedIn() {
		t.Error("session must be cleared after the 401")
	}
	if len(navigated) != 1 || navigated[0] != "/login" {
		t.Errorf("navigations = %v", navigated)
	}

	// The guard now treats protected routes as anonymous traffic.
	if d := kit.Guard.Decide("/user/cart"); d.Allowed || d.RedirectTo != "/login" {
		t.Errorf("guard decision = %+v", d)
	}
}

func TestKit_GuardReflectsSessionRole(t *testing.T) {
	srv := fakeBackend(t)
	kit, err := New(context.Background(), testConfig(srv.URL), WithStorage(newMemStore()))
	if err != nil {
		t.Fatalf("new kit: %v", err)
	}

	if d := kit.Guard.Decide("/user/shop"); d.Allowed {
		t.Error("anonymous user must not enter the shop")
	}

	kit.Session.Login(context.Background(), "kim", "valid")

	if d := kit.Guard.Decide("/user/shop"); !d.Allowed {
		t.Errorf("general user must enter the shop, got %+v", d)
	}
	if d := kit.Guard.Decide("/admin/users"); d.Allowed {
		t.Error("general user must not enter admin routes")
	}
	if d := kit.Guard.Decide("/login"); d.RedirectTo != "/" {
		t.Errorf("authenticated login visit must bounce to the dashboard, got %+v", d)
	}
}

func TestKit_UnknownStorageBackend(t *testing.T) {
	cfg := testConfig("http://unused.invalid")
	cfg.Storage.Backend = "etcd"

	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("unknown storage backend must fail construction")
	}
}
