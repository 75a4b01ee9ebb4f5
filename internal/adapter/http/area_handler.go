package http

import (
	"net/http"

	areauc "github.com/cagb07/gestor-centros-app/internal/usecase/area"

	"github.com/labstack/echo/v4"
)

type AreaHandler struct{ uc *areauc.Usecase }

func NewAreaHandler(uc *areauc.Usecase) *AreaHandler { return &AreaHandler{uc: uc} }

func (h *AreaHandler) Create(c echo.Context) error {
	var req areauc.CreateAreaInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	a, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AreaHandler) List(c echo.Context) error {
	areas, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, areas)
}

func (h *AreaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid area id")
	}
	var req areauc.UpdateAreaInput
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AreaHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid area id")
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
