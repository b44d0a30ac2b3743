package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpost/services"
)

// DashboardStatsHandler godoc
// @Summary      Dashboard stats
// @Description  Totals and monthly view buckets over non-deleted documents (admin only)
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.DashboardStatsDTO}
// @Router       /stats/dashboard [get]
func DashboardStatsHandler(svc *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Dashboard(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, stats, "Stats fetched successfully")
	}
}

// BasicStatsHandler godoc
// @Summary      Basic stats
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.BasicStatsDTO}
// @Router       /stats [get]
func BasicStatsHandler(svc *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Basic(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, stats, "Basic stats fetched successfully")
	}
}

// RecentPostsHandler godoc
// @Summary      Recent posts
// @Description  Five newest non-deleted blogs, trimmed for the dashboard
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=[]dto.RecentPostDTO}
// @Router       /stats/recent [get]
func RecentPostsHandler(svc *services.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.RecentPosts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, posts, "Recent posts fetched successfully")
	}
}
