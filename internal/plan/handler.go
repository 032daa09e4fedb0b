package plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 10

type Handler struct {
	service *Service
	log     *logrus.Logger
}

func NewHandler(service *Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// --------------------------------------------------
// Create plan
// --------------------------------------------------
func (h *Handler) CreatePlan(c *gin.Context) {
	var req Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "リクエスト形式が正しくありません"})
		return
	}

	if req.Type == "" || req.Area == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "業態と立地は必須です"})
		return
	}
	if req.Seats <= 0 || req.ATV <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "席数と客単価は1以上である必要があります"})
		return
	}

	detail, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "プラン作成中にエラーが発生しました"})
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// --------------------------------------------------
// Fetch plan by id (persisted fields only)
// --------------------------------------------------
func (h *Handler) GetPlan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("plan_id", id).Error("failed to fetch plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "プラン取得中にエラーが発生しました"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// List plans, newest first
// --------------------------------------------------
func (h *Handler) ListPlans(c *gin.Context) {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", defaultListLimit)

	plans, err := h.service.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list plans")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "プラン一覧の取得中にエラーが発生しました"})
		return
	}

	if plans == nil {
		plans = []*Plan{}
	}
	c.JSON(http.StatusOK, plans)
}

// ListMyPlans backs GET /api/plans/my. The route requires a token but
// still returns the global listing: per-user filtering is a placeholder
// until plans carry an owner column.
func (h *Handler) ListMyPlans(c *gin.Context) {
	h.ListPlans(c)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
