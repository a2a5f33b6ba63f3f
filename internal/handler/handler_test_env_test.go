package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"auction-admin/internal/handler"
	"auction-admin/internal/repository"
	"auction-admin/internal/server"
	"auction-admin/internal/service"
	"auction-admin/internal/session"
	"auction-admin/internal/testutil"
	"auction-admin/pkg/logger"
)

// testEnv wires the full production router against an in-memory database.
type testEnv struct {
	router   *gin.Engine
	testDB   *testutil.TestDatabase
	sessions *session.Manager

	userRepo     *repository.UserRepository
	categoryRepo *repository.CategoryRepository
	auctionRepo  *repository.AuctionRepository
	itemRepo     *repository.ItemRepository
	bidRepo      *repository.BidRepository

	authService *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	if logger.Log == nil {
		if err := logger.Init(false); err != nil {
			t.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	testDB := testutil.SetupTestDatabase(t)

	userRepo := repository.NewUserRepository(testDB.DB)
	categoryRepo := repository.NewCategoryRepository(testDB.DB)
	auctionRepo := repository.NewAuctionRepository(testDB.DB)
	itemRepo := repository.NewItemRepository(testDB.DB)
	bidRepo := repository.NewBidRepository(testDB.DB)

	authService := service.NewAuthService(userRepo)
	dashboardService := service.NewDashboardService(userRepo, itemRepo, auctionRepo, bidRepo, categoryRepo)

	sessions := session.NewManager("test-secret-key", false)

	handlers := server.Handlers{
		Auth:       handler.NewAuthHandler(authService, sessions),
		Dashboard:  handler.NewDashboardHandler(dashboardService, sessions),
		Users:      handler.NewUserHandler(userRepo, sessions),
		Auctions:   handler.NewAuctionHandler(auctionRepo, categoryRepo, sessions),
		Items:      handler.NewItemHandler(itemRepo, auctionRepo, sessions),
		Categories: handler.NewCategoryHandler(categoryRepo, sessions),
		Bids:       handler.NewBidHandler(bidRepo, sessions),
	}

	router := server.SetupRouter(sessions, handlers, nil, false)

	return &testEnv{
		router:       router,
		testDB:       testDB,
		sessions:     sessions,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		auctionRepo:  auctionRepo,
		itemRepo:     itemRepo,
		bidRepo:      bidRepo,
		authService:  authService,
	}
}

// get performs a GET request carrying the given session cookies.
func (e *testEnv) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// postForm performs a form-encoded POST carrying the given session cookies.
func (e *testEnv) postForm(path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login authenticates and returns the session cookies for later requests.
func (e *testEnv) login(t *testing.T, email, password string) []*http.Cookie {
	w := e.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)

	if w.Code != http.StatusFound {
		t.Fatalf("Login did not redirect: status %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("Login redirected to %q, expected /dashboard", loc)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Login set no session cookie")
	}
	return cookies
}

// seedActiveUser inserts an active user and returns it logged in.
func (e *testEnv) seedActiveUser(t *testing.T, email, password string) []*http.Cookie {
	user, err := testutil.CreateTestUser("Seeded User", email, password, "active", "bidder")
	if err != nil {
		t.Fatalf("Failed to build test user: %v", err)
	}
	if err := e.testDB.DB.Create(user).Error; err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
	return e.login(t, email, password)
}

// mergeCookies overlays newer response cookies onto the carried set so the
// rotated session cookie wins.
func mergeCookies(existing, newer []*http.Cookie) []*http.Cookie {
	merged := map[string]*http.Cookie{}
	for _, c := range existing {
		merged[c.Name] = c
	}
	for _, c := range newer {
		merged[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(merged))
	for _, c := range merged {
		out = append(out, c)
	}
	return out
}
