package http

import (
	"encoding/json"
	"net/http"

	mw "github.com/cagb07/gestor-centros-app/internal/adapter/middleware"
	subuc "github.com/cagb07/gestor-centros-app/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

type SubmissionHandler struct{ uc *subuc.Usecase }

func NewSubmissionHandler(uc *subuc.Usecase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

type submitReq struct {
	TemplateID uint64          `json:"template_id" validate:"required"`
	Data       json.RawMessage `json:"data" validate:"required"`
}

func (h *SubmissionHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	sess := mw.FromContext(c)
	sub, err := h.uc.Submit(c.Request().Context(), req.TemplateID, sess.UserID, req.Data)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *SubmissionHandler) ListMine(c echo.Context) error {
	sess := mw.FromContext(c)
	list, err := h.uc.ListMine(c.Request().Context(), sess.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SubmissionHandler) ListAll(c echo.Context) error {
	list, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *SubmissionHandler) ListUnreviewed(c echo.Context) error {
	list, err := h.uc.ListUnreviewed(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type reviewReq struct {
	Reviewed bool `json:"reviewed"`
}

func (h *SubmissionHandler) SetReviewed(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid submission id")
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	sess := mw.FromContext(c)
	if err := h.uc.SetReviewed(c.Request().Context(), id, sess.UserID, req.Reviewed); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SubmissionHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
