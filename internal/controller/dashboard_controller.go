package controller

import (
	"strconv"

	"footballpro_backend/internal/service"
	"footballpro_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 获取仪表盘统计
// @Description 当前用户的训练统计：总时长、连续天数、进步率、同位置排名等
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.DashboardStats}
// @Router /api/dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.DashboardService.GetStats(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 前端允许5分钟内的过期数据
	ctx.Header("Cache-Control", "max-age=300, stale-while-revalidate=60")
	util.Success(ctx, stats)
}

// @Summary 获取周趋势
// @Description 最近 N 周的训练次数、时长与平均完成度
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Param weeks query int false "周数，默认8，最大26"
// @Success 200 {object} util.Response
// @Router /api/dashboard/progress [get]
func (c *DashboardController) GetWeeklyProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	weeks, err := strconv.Atoi(ctx.DefaultQuery("weeks", "8"))
	if err != nil || weeks < 1 {
		weeks = 8
	}
	if weeks > 26 {
		weeks = 26
	}

	progress, err := c.DashboardService.GetWeeklyProgress(ctx.Request.Context(), user.UserID, weeks)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
