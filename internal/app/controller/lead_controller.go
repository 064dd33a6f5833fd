package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/service"
	"github.com/onnuriprint/onnuriprint-backend/internal/errors"
	"github.com/onnuriprint/onnuriprint-backend/internal/middleware"
)

type LeadController struct {
	leadService service.LeadService
}

func NewLeadController(leadService service.LeadService) *LeadController {
	return &LeadController{leadService: leadService}
}

// ListLeads 리드 목록 (관리자)
// GET /api/v1/leads
func (ctrl *LeadController) ListLeads(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, total, err := ctrl.leadService.ListLeads(limit, offset)
	if err != nil {
		log.Error("리드 목록 조회 실패", err, nil)
		errors.InternalError(c, "고객 정보를 불러오지 못했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"total": total,
	})
}

// TopKeywords 유입 키워드 상위 집계 (관리자)
// GET /api/v1/leads/keywords
func (ctrl *LeadController) TopKeywords(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	keywords, err := ctrl.leadService.TopKeywords(limit)
	if err != nil {
		log.Error("키워드 집계 실패", err, nil)
		errors.InternalError(c, "키워드 통계를 불러오지 못했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keywords": keywords,
	})
}
