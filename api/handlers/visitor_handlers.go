package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpost/services"
)

// ListVisitorsHandler godoc
// @Summary      List visitors
// @Description  Every logged visit, newest first, with total/unique counters (admin only)
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.VisitorSummaryDTO}
// @Router       /visitors [get]
func ListVisitorsHandler(svc *services.VisitorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, summary, "Visitor information fetched successfully")
	}
}

// VisitorStatsHandler godoc
// @Summary      Visitor stats
// @Description  Rolling visit counters (admin only)
// @Tags         visitors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.VisitorStatsDTO}
// @Router       /visitors/stats [get]
func VisitorStatsHandler(svc *services.VisitorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, stats, "Visitor stats fetched successfully")
	}
}
