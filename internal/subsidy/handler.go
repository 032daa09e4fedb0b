package subsidy

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetSubsidies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"subsidies": ForArea(c.Param("area")),
	})
}
