package controller

import (
	"errors"
	"strconv"

	"footballpro_backend/internal/service"
	"footballpro_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService  *service.ActivityService
	DashboardService *service.DashboardService
}

func NewActivityController(activityService *service.ActivityService, dashboardService *service.DashboardService) *ActivityController {
	return &ActivityController{
		ActivityService:  activityService,
		DashboardService: dashboardService,
	}
}

// @Summary 上报训练进度
// @Description 记录用户对课程/视频的一次交互，同键记录自动合并
// @Tags 训练
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.ProgressUpdate true "进度信息"
// @Success 200 {object} util.Response
// @Router /api/activity/progress [post]
func (c *ActivityController) RecordProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProgressUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.RecordProgress(user.UserID, &req)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// 有新记录后仪表盘缓存作废
	c.DashboardService.InvalidateStats(ctx.Request.Context(), user.UserID)

	util.Success(ctx, activity)
}

// @Summary 最近训练记录
// @Description 按最近访问时间倒序返回训练记录
// @Tags 训练
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数，默认10"
// @Success 200 {object} util.Response
// @Router /api/activity/recent [get]
func (c *ActivityController) RecentActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	activities, err := c.ActivityService.RecentActivity(ctx.Request.Context(), user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}
