package http

import (
	"net/http"

	mw "github.com/cagb07/gestor-centros-app/internal/adapter/middleware"
	"github.com/cagb07/gestor-centros-app/internal/session"
	useruc "github.com/cagb07/gestor-centros-app/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	users    *useruc.Usecase
	sessions session.Store
}

func NewAuthHandler(users *useruc.Usecase, sessions session.Store) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token    string `json:"token"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	u, err := h.users.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondErr(c, err)
	}
	sess := session.New(u)
	if err := h.sessions.Put(c.Request().Context(), sess); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Token:    sess.Token,
		UserID:   u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		FullName: u.FullName,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	sess := mw.FromContext(c)
	if err := h.sessions.Delete(c.Request().Context(), sess.Token); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	sess := mw.FromContext(c)
	return c.JSON(http.StatusOK, map[string]any{
		"user_id":         sess.UserID,
		"username":        sess.Username,
		"role":            sess.Role,
		"full_name":       sess.FullName,
		"attached_center": sess.AttachedCenter,
	})
}
