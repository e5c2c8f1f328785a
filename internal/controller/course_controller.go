package controller

import (
	"errors"
	"strconv"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/service"
	"footballpro_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary 课程列表
// @Description 已发布课程，支持按位置和训练水平过滤
// @Tags 课程
// @Produce json
// @Param position query string false "位置过滤" Enums(GOALKEEPER, DEFENDER, MIDFIELDER, FORWARD)
// @Param level query string false "水平过滤" Enums(BEGINNER, INTERMEDIATE, ADVANCED, PROFESSIONAL)
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	position := model.Position(ctx.Query("position"))
	level := model.TrainingLevel(ctx.Query("level"))

	courses, total, err := c.CourseService.ListPublished(position, level, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  courses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 课程详情
// @Description 课程信息及视频列表
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.CourseService.GetCourse(uint(courseID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary 创建课程（管理员）
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.Course true "课程信息"
// @Success 201 {object} util.Response
// @Router /api/admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.CourseService.CreateCourse(&course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// @Summary 更新课程（管理员）
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param request body model.Course true "课程信息"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	existing, err := c.CourseService.GetCourse(uint(courseID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt

	if err := c.CourseService.UpdateCourse(&course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary 删除课程（管理员）
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.DeleteCourse(uint(courseID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Course deleted"})
}

// @Summary 添加课程视频（管理员）
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param request body model.Video true "视频信息"
// @Success 201 {object} util.Response
// @Router /api/admin/courses/{id}/videos [post]
func (c *CourseController) AddVideo(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var video model.Video
	if err := ctx.ShouldBindJSON(&video); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	video.CourseID = uint(courseID)

	if err := c.CourseService.AddVideo(&video); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, video)
}

// @Summary 删除课程视频（管理员）
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "视频ID"
// @Success 200 {object} util.Response
// @Router /api/admin/videos/{id} [delete]
func (c *CourseController) DeleteVideo(ctx *gin.Context) {
	videoID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid video id")
		return
	}

	if err := c.CourseService.DeleteVideo(uint(videoID)); err != nil {
		if errors.Is(err, util.ErrVideoNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Video deleted"})
}

// @Summary 上传课程封面（管理员）
// @Tags 课程
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param file formData file true "封面图片"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id}/cover [post]
func (c *CourseController) UploadCover(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.CourseService.UploadCover(ctx.Request.Context(), uint(courseID), file)
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx)
		return
	case errors.Is(err, util.ErrInvalidFileType):
		util.BadRequest(ctx, err.Error())
		return
	case err != nil:
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
