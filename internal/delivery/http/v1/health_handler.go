package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Check)
}

// Check godoc
// @Summary      Health check
// @Description  Reports database and Redis connectivity
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	result := h.healthUC.Check(c.Request.Context())
	if result["status"] != "ok" {
		response.Error(c, http.StatusServiceUnavailable, "System degraded", result)
		return
	}
	response.Success(c, http.StatusOK, "System operational", result)
}
