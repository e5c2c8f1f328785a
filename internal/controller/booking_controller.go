package controller

import (
	"errors"
	"strconv"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/service"
	"footballpro_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingService   *service.BookingService
	DashboardService *service.DashboardService
}

func NewBookingController(bookingService *service.BookingService, dashboardService *service.DashboardService) *BookingController {
	return &BookingController{
		BookingService:   bookingService,
		DashboardService: dashboardService,
	}
}

// @Summary 创建预约
// @Description 预约一节训练课，初始状态为 PENDING
// @Tags 预约
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.BookingRequest true "预约信息"
// @Success 201 {object} util.Response
// @Router /api/bookings [post]
func (c *BookingController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	booking, err := c.BookingService.CreateBooking(user.UserID, &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	c.DashboardService.InvalidateStats(ctx.Request.Context(), user.UserID)

	util.Created(ctx, booking)
}

// @Summary 我的预约
// @Description 当前用户的预约列表，按上课时间倒序
// @Tags 预约
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/bookings [get]
func (c *BookingController) MyBookings(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	bookings, err := c.BookingService.MyBookings(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, bookings)
}

// @Summary 取消预约
// @Description 取消自己的预约，已完成/已取消的不允许
// @Tags 预约
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "预约ID"
// @Success 200 {object} util.Response
// @Router /api/bookings/{id} [delete]
func (c *BookingController) Cancel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	bookingID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid booking id")
		return
	}

	err = c.BookingService.CancelBooking(user.UserID, uint(bookingID))
	switch {
	case errors.Is(err, util.ErrBookingNotFound):
		util.NotFound(ctx)
		return
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
		return
	case errors.Is(err, util.ErrBookingNotCancelable):
		util.BadRequest(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	c.DashboardService.InvalidateStats(ctx.Request.Context(), user.UserID)

	util.Success(ctx, gin.H{"message": "Booking cancelled"})
}

// @Summary 预约列表（教练/管理员）
// @Description 全部预约，支持状态过滤和分页
// @Tags 预约
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Param status query string false "状态过滤" Enums(PENDING, CONFIRMED, COMPLETED, CANCELLED)
// @Success 200 {object} util.Response
// @Router /api/coach/bookings [get]
func (c *BookingController) List(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	status := model.BookingStatus(ctx.Query("status"))

	bookings, total, err := c.BookingService.ListBookings(page, limit, status)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  bookings,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 更新预约状态（教练/管理员）
// @Description 状态流转：PENDING→CONFIRMED→COMPLETED，非终态可取消
// @Tags 预约
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "预约ID"
// @Param status body string true "目标状态" Enums(CONFIRMED, COMPLETED, CANCELLED)
// @Success 200 {object} util.Response
// @Router /api/coach/bookings/{id}/status [patch]
func (c *BookingController) UpdateStatus(ctx *gin.Context) {
	bookingID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid booking id")
		return
	}

	var req struct {
		Status model.BookingStatus `json:"status" binding:"required,oneof=CONFIRMED COMPLETED CANCELLED"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	booking, err := c.BookingService.UpdateStatus(uint(bookingID), req.Status)
	switch {
	case errors.Is(err, util.ErrBookingNotFound):
		util.NotFound(ctx)
		return
	case errors.Is(err, util.ErrInvalidTransition):
		util.BadRequest(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	// 预约状态影响持有人的仪表盘计数
	c.DashboardService.InvalidateStats(ctx.Request.Context(), booking.UserID)

	util.Success(ctx, booking)
}
