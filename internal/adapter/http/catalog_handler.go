package http

import (
	"net/http"

	mw "github.com/cagb07/gestor-centros-app/internal/adapter/middleware"
	"github.com/cagb07/gestor-centros-app/internal/catalog"
	"github.com/cagb07/gestor-centros-app/internal/session"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	centers  *catalog.Catalog
	sessions session.Store
}

func NewCatalogHandler(centers *catalog.Catalog, sessions session.Store) *CatalogHandler {
	return &CatalogHandler{centers: centers, sessions: sessions}
}

// Search filters the reference dataset by free-text name, province and
// institution type.
func (h *CatalogHandler) Search(c echo.Context) error {
	q := catalog.Query{
		Search:   c.QueryParam("q"),
		Province: c.QueryParam("provincia"),
		Type:     c.QueryParam("tipo"),
	}
	results := h.centers.Filter(q)
	return c.JSON(http.StatusOK, map[string]any{
		"total":   h.centers.Len(),
		"matched": len(results),
		"centers": results,
	})
}

func (h *CatalogHandler) Facets(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"provincias": h.centers.Provinces(),
		"tipos":      h.centers.InstitutionTypes(),
	})
}

type attachReq struct {
	Name string `json:"name" validate:"required"`
}

// Attach pins a center to the session so form rendering pre-fills from
// it.
func (h *CatalogHandler) Attach(c echo.Context) error {
	var req attachReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	rec, ok := h.centers.Get(req.Name)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "center not found"})
	}
	sess := mw.FromContext(c)
	sess.AttachedCenter = rec.Name
	if err := h.sessions.Put(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Detach clears the session's attached center.
func (h *CatalogHandler) Detach(c echo.Context) error {
	sess := mw.FromContext(c)
	sess.AttachedCenter = ""
	if err := h.sessions.Put(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
	}
	return c.NoContent(http.StatusNoContent)
}
