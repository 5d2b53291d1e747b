package http

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	viewHome     = "home"
	viewListing  = "listing"
	viewPyramids = "pyramids"
	viewLogin    = "login"
)

var templateFuncs = template.FuncMap{
	"rating": func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', 1, 64)
	},
	"price": func(v *float64, currency *string) string {
		if v == nil {
			return ""
		}
		amount := strconv.FormatFloat(*v, 'f', -1, 64)
		if currency == nil || *currency == "" {
			return amount
		}
		return amount + " " + *currency
	},
}

// TemplateRenderer renders each view inside the shared shell layout.
type TemplateRenderer struct {
	views map[string]*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	views := make(map[string]*template.Template)
	for _, name := range []string{viewHome, viewListing, viewPyramids, viewLogin} {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		views[name] = tmpl
	}
	return &TemplateRenderer{views: views}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.views[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

type pageView struct {
	Title   string
	Nav     []domain.Page
	User    *domain.User
	Listing *domain.ListingPage
	Guide   *domain.PyramidsGuide
}

type PageHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

// RegisterPages installs the HTML shell: the home page, one route per listing
// page, the pyramids guide, login/logout forms and card activation links.
func RegisterPages(e *echo.Echo, catalog *service.CatalogService, logger *zap.Logger) error {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e.Renderer = renderer
	h := &PageHandler{catalog: catalog, logger: logger}

	e.GET("/", h.home)
	for _, kind := range domain.PageKindsOrdered {
		e.GET(kind.Route(), h.listing(kind))
	}
	e.GET("/heritage/pyramids", h.pyramids)
	e.GET("/login", h.loginForm)
	e.POST("/login", h.login)
	e.POST("/logout", h.logout)
	e.GET("/go/:page/:id", h.activate)
	return nil
}

func (h *PageHandler) home(c echo.Context) error {
	view, err := h.view(c, "Home")
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Render(http.StatusOK, viewHome, view)
}

func (h *PageHandler) listing(kind domain.PageKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := h.catalog.Page(c.Request().Context(), kind)
		if err != nil {
			return h.writeError(c, err)
		}
		view, err := h.view(c, page.Title)
		if err != nil {
			return h.writeError(c, err)
		}
		view.Listing = page
		return c.Render(http.StatusOK, viewListing, view)
	}
}

func (h *PageHandler) pyramids(c echo.Context) error {
	guide, err := h.catalog.Pyramids(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	view, err := h.view(c, guide.Title)
	if err != nil {
		return h.writeError(c, err)
	}
	view.Guide = guide
	return c.Render(http.StatusOK, viewPyramids, view)
}

func (h *PageHandler) loginForm(c echo.Context) error {
	view, err := h.view(c, "Login")
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Render(http.StatusOK, viewLogin, view)
}

func (h *PageHandler) login(c echo.Context) error {
	manager, err := service.SessionFromContext(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid login form")
	}
	if err := manager.Login(c.Request().Context(), req.toDomain()); err != nil {
		return h.writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) logout(c echo.Context) error {
	manager, err := service.SessionFromContext(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	if err := manager.Logout(c.Request().Context()); err != nil {
		return h.writeError(c, err)
	}
	target, ok := navigatedTo(c)
	if !ok {
		target = manager.LoginRoute()
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// activate follows a card link. Placeholder cards stay on the current page.
func (h *PageHandler) activate(c echo.Context) error {
	kind, id, err := parseCardRef(c)
	if err != nil {
		return h.writeError(c, err)
	}
	route, err := h.catalog.Activate(c.Request().Context(), kind, id)
	if err != nil {
		return h.writeError(c, err)
	}
	if domain.IsPlaceholderRoute(route) {
		return c.NoContent(http.StatusNoContent)
	}
	if target, ok := navigatedTo(c); ok {
		route = target
	}
	return c.Redirect(http.StatusSeeOther, route)
}

func (h *PageHandler) view(c echo.Context, title string) (pageView, error) {
	view := pageView{Title: title, Nav: h.catalog.Pages(c.Request().Context())}
	user, ok, err := CurrentUser(c)
	if err != nil {
		return view, err
	}
	if ok {
		view.User = &user
	}
	return view, nil
}

func (h *PageHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errInvalidCardID):
		return c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPageNotFound), errors.Is(err, service.ErrCardNotFound):
		return c.String(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionProviderMissing):
		h.logger.Error("page rendered without session provider", zap.String("path", c.Path()))
		return c.String(http.StatusInternalServerError, errProviderMessage)
	default:
		h.logger.Error("page request failed", zap.Error(err))
		return c.String(http.StatusInternalServerError, "something went wrong")
	}
}
