package v1

import (
	"strconv"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}

// pageParams reads page and pageSize (page_size is accepted too).
// Out-of-range values are normalised by the usecases.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size := c.Query("pageSize")
	if size == "" {
		size = c.DefaultQuery("page_size", "10")
	}
	pageSize, _ := strconv.Atoi(size)
	return page, pageSize
}
