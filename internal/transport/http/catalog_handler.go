package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/service"
	"github.com/njprem/VisitEgypt_BackEnd/internal/util"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

func RegisterCatalog(e *echo.Echo, catalog *service.CatalogService, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := &CatalogHandler{catalog: catalog, logger: logger}

	api := e.Group("/api/v1")
	api.GET("/pages", handler.listPages)
	api.GET("/pages/:page", handler.getPage)
	api.POST("/pages/:page/cards/:id/activate", handler.activateCard)
	api.GET("/heritage/pyramids", handler.getPyramids)
}

func (h *CatalogHandler) listPages(c echo.Context) error {
	pages := h.catalog.Pages(c.Request().Context())
	return c.JSON(http.StatusOK, util.Data("pages", pages).With("count", len(pages)))
}

func (h *CatalogHandler) getPage(c echo.Context) error {
	kind, ok := domain.ParsePageKind(c.Param("page"))
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error(service.ErrPageNotFound.Error()))
	}

	page, err := h.catalog.Page(c.Request().Context(), kind)
	if err != nil {
		return h.writeCatalogError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("page", page))
}

func (h *CatalogHandler) activateCard(c echo.Context) error {
	kind, id, err := parseCardRef(c)
	if err != nil {
		return h.writeCatalogError(c, err)
	}

	route, err := h.catalog.Activate(c.Request().Context(), kind, id)
	if err != nil {
		return h.writeCatalogError(c, err)
	}
	return c.JSON(http.StatusOK, ActivationResponse{
		Route:       route,
		Placeholder: domain.IsPlaceholderRoute(route),
	})
}

func (h *CatalogHandler) getPyramids(c echo.Context) error {
	guide, err := h.catalog.Pyramids(c.Request().Context())
	if err != nil {
		return h.writeCatalogError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("guide", guide))
}

var errInvalidCardID = errors.New("invalid card id")

func parseCardRef(c echo.Context) (domain.PageKind, int, error) {
	kind, ok := domain.ParsePageKind(c.Param("page"))
	if !ok {
		return "", 0, service.ErrPageNotFound
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return "", 0, errInvalidCardID
	}
	return kind, id, nil
}

func (h *CatalogHandler) writeCatalogError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errInvalidCardID):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrPageNotFound), errors.Is(err, service.ErrCardNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	default:
		h.logger.Error("catalog request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load content"))
	}
}
