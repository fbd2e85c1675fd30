package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// Sign-up, login and password flows are handled by the identity provider;
// this API only mirrors the user row and its role.
func NewAuthHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/sync", handler.SyncProfile)
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PUT("/users/:id/role", handler.AssignRole)
	}
}

// SyncProfile godoc
// @Summary      Sync the local user
// @Description  Ensures the authenticated user exists locally and returns it
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/sync [post]
// @Security     BearerAuth
func (h *AuthHandler) SyncProfile(c *gin.Context) {
	user, err := h.authUC.EnsureUserExists(c, &domain.User{
		ID:    currentUserID(c),
		Email: c.GetString(string(domain.KeyUserEmail)),
		Role:  c.GetString(string(domain.KeyUserRole)),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile synced", user)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", gin.H{"user": user})
}

// AssignRole godoc
// @Summary      Assign a role
// @Description  Changes a user's role (admin only)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "User ID"
// @Param        body  body      domain.AssignRoleRequest  true  "New role"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /auth/users/{id}/role [put]
// @Security     BearerAuth
func (h *AuthHandler) AssignRole(c *gin.Context) {
	var req domain.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.AssignRole(c, c.Param("id"), req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated", gin.H{"id": c.Param("id"), "role": req.Role})
}
