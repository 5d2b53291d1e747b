package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/njprem/VisitEgypt_BackEnd/internal/content"
	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/navigation"
	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/memory"
	"github.com/njprem/VisitEgypt_BackEnd/internal/service"
)

type testServer struct {
	echo    *echo.Echo
	session *service.SessionManager
	store   *memory.LocalStorage
}

func newTestServer(t *testing.T, withSession bool) *testServer {
	t.Helper()

	catalogRepo := memory.NewCatalogRepo()
	catalog := service.NewCatalogService(catalogRepo, catalogRepo, navigation.ContextNavigator{}, nil)
	store := memory.NewLocalStorage()
	session := service.NewSessionManager(store, navigation.ContextNavigator{}, service.SessionManagerConfig{}, nil)

	opts := RouterOptions{}
	if withSession {
		opts.Session = session
	}
	e := NewRouter(opts)
	RegisterCatalog(e, catalog, nil)
	RegisterSession(e, nil)
	if err := RegisterPages(e, catalog, nil); err != nil {
		t.Fatalf("RegisterPages returned error: %v", err)
	}
	return &testServer{echo: e, session: session, store: store}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, true)
	rec := srv.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatal("expected a request id header")
	}
}

func TestGetListingPage(t *testing.T) {
	srv := newTestServer(t, true)
	rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/pages/beaches", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Page domain.ListingPage `json:"page"`
	}
	decodeBody(t, rec, &body)
	if body.Page.Total != 6 || len(body.Page.Cards) != 6 {
		t.Fatalf("expected 6 beach cards, got total=%d cards=%d", body.Page.Total, len(body.Page.Cards))
	}
	if body.Page.Hero.VideoEmbedURL == nil {
		t.Fatal("expected beaches hero to carry a video embed")
	}
}

func TestGetListingPageUnknown(t *testing.T) {
	srv := newTestServer(t, true)
	rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/pages/museums", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestActivateCardAPI(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(httptest.NewRequest(http.MethodPost, "/api/v1/pages/heritage/cards/1/activate", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var real ActivationResponse
	decodeBody(t, rec, &real)
	if real.Route != "/heritage/pyramids" || real.Placeholder {
		t.Fatalf("unexpected activation response %+v", real)
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/api/v1/pages/heritage/cards/2/activate", nil))
	var placeholder ActivationResponse
	decodeBody(t, rec, &placeholder)
	if placeholder.Route != domain.PlaceholderRoute || !placeholder.Placeholder {
		t.Fatalf("expected placeholder activation, got %+v", placeholder)
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/api/v1/pages/heritage/cards/99/activate", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown card, got %d", rec.Code)
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/api/v1/pages/heritage/cards/abc/activate", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed card id, got %d", rec.Code)
	}
}

func TestSessionLoginLogoutAPI(t *testing.T) {
	srv := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"id":"42","name":"Layla","email":"layla@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := srv.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	var state SessionResponse
	decodeBody(t, rec, &state)
	if !state.Authenticated || state.User == nil || state.User.Name != "Layla" {
		t.Fatalf("expected authenticated session, got %+v", state)
	}
	if _, found, _ := srv.store.Get(req.Context(), service.DefaultSessionStorageKey); !found {
		t.Fatal("expected user to be persisted")
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var logout LogoutResponse
	decodeBody(t, rec, &logout)
	if logout.Redirect != navigation.RouteLogin {
		t.Fatalf("expected redirect to %s, got %q", navigation.RouteLogin, logout.Redirect)
	}

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	decodeBody(t, rec, &state)
	if state.Authenticated || state.User != nil {
		t.Fatalf("expected anonymous session after logout, got %+v", state)
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected second logout to succeed, got %d", rec.Code)
	}
}

func TestSessionWithoutProvider(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), errProviderMessage) {
		t.Fatalf("expected provider error message, got %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"id":"1","name":"A","email":"a@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = srv.do(req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if _, ok := srv.session.CurrentUser(); ok {
		t.Fatal("expected no mutation without provider")
	}
}

func TestListingHTML(t *testing.T) {
	srv := newTestServer(t, true)
	rec := srv.do(httptest.NewRequest(http.MethodGet, "/discounts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if got := strings.Count(body, `class="card"`); got != 4 {
		t.Fatalf("expected 4 discount cards, got %d", got)
	}
	if !strings.Contains(body, `href="/login"`) {
		t.Fatal("expected anonymous navbar with login link")
	}
}

func TestPyramidsHTML(t *testing.T) {
	srv := newTestServer(t, true)
	rec := srv.do(httptest.NewRequest(http.MethodGet, "/heritage/pyramids", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "<iframe") {
		t.Fatal("expected hero video embed")
	}
}

func TestActivateLink(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/go/heritage/1", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/heritage/pyramids" {
		t.Fatalf("expected redirect to pyramids, got %q", loc)
	}

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/go/beaches/3", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for placeholder card, got %d", rec.Code)
	}
}

func TestActivateLinksLeadToServedPages(t *testing.T) {
	srv := newTestServer(t, true)

	for _, kind := range domain.PageKindsOrdered {
		cards, _ := content.Cards(kind)
		for _, card := range cards {
			link := "/go/" + string(kind) + "/" + strconv.Itoa(card.ID)
			rec := srv.do(httptest.NewRequest(http.MethodGet, link, nil))

			if card.IsPlaceholder() {
				if rec.Code != http.StatusNoContent {
					t.Fatalf("%s: expected 204 for placeholder card, got %d", link, rec.Code)
				}
				continue
			}
			if rec.Code != http.StatusSeeOther {
				t.Fatalf("%s: expected 303, got %d", link, rec.Code)
			}
			target := rec.Header().Get(echo.HeaderLocation)
			if target != card.Route {
				t.Fatalf("%s: expected redirect to %q, got %q", link, card.Route, target)
			}
			page := srv.do(httptest.NewRequest(http.MethodGet, target, nil))
			if page.Code != http.StatusOK {
				t.Fatalf("%s: redirect target %s answered %d", link, target, page.Code)
			}
		}
	}
}

func TestLoginLogoutForms(t *testing.T) {
	srv := newTestServer(t, true)

	form := url.Values{"id": {"7"}, "name": {"Omar"}, "email": {"omar@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := srv.do(req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after login, got %d", rec.Code)
	}

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rec.Body.String(), "Hello, Omar") {
		t.Fatal("expected navbar to greet the signed-in user")
	}

	rec = srv.do(httptest.NewRequest(http.MethodPost, "/logout", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after logout, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != navigation.RouteLogin {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
	if _, ok := srv.session.CurrentUser(); ok {
		t.Fatal("expected anonymous session after logout")
	}
}

func TestSanitizeBodyMasksSecrets(t *testing.T) {
	summary := sanitizeBody([]byte(`{"email":"layla@example.com","password":"hunter2","name":"Layla"}`), echo.MIMEApplicationJSON)
	fields, ok := summary.(map[string]any)
	if !ok {
		t.Fatalf("expected map summary, got %T", summary)
	}
	if fields["email"] != "***@example.com" {
		t.Fatalf("expected masked email, got %v", fields["email"])
	}
	if fields["password"] != redacted {
		t.Fatalf("expected redacted password, got %v", fields["password"])
	}
	if fields["name"] != "Layla" {
		t.Fatalf("expected name untouched, got %v", fields["name"])
	}
}
