package http

import (
	"encoding/json"
	"net/http"

	mw "github.com/cagb07/gestor-centros-app/internal/adapter/middleware"
	"github.com/cagb07/gestor-centros-app/internal/catalog"
	"github.com/cagb07/gestor-centros-app/internal/formengine"
	templateuc "github.com/cagb07/gestor-centros-app/internal/usecase/template"

	"github.com/labstack/echo/v4"
)

type TemplateHandler struct {
	uc      *templateuc.Usecase
	centers *catalog.Catalog
}

func NewTemplateHandler(uc *templateuc.Usecase, centers *catalog.Catalog) *TemplateHandler {
	return &TemplateHandler{uc: uc, centers: centers}
}

func (h *TemplateHandler) Save(c echo.Context) error {
	var req templateuc.SaveTemplateInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	sess := mw.FromContext(c)
	dto, err := h.uc.Save(c.Request().Context(), req, sess.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TemplateHandler) ListByArea(c echo.Context) error {
	areaID, err := pathID(c, "area_id")
	if err != nil {
		return badRequest(c, "invalid area id")
	}
	list, err := h.uc.ListByArea(c.Request().Context(), areaID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *TemplateHandler) Fields(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid template id")
	}
	fields, err := h.uc.GetFields(c.Request().Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, fields)
}

func (h *TemplateHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid template id")
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RenderForm returns the capture shape an operator starts from,
// pre-filled from the session's attached center when one is set.
func (h *TemplateHandler) RenderForm(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid template id")
	}
	prefill := map[string]formengine.Value{}
	sess := mw.FromContext(c)
	if sess.AttachedCenter != "" {
		if rec, ok := h.centers.Get(sess.AttachedCenter); ok {
			prefill = catalog.Prefill(rec)
		}
	}
	fields, capture, err := h.uc.RenderForm(c.Request().Context(), id, prefill)
	if err != nil {
		return respondErr(c, err)
	}
	values, err := formengine.Serialize(capture)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"template_id": id,
		"fields":      fields,
		"values":      json.RawMessage(values),
	})
}
