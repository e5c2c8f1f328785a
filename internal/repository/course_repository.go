package repository

import (
	"footballpro_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// FindPublished 对外课程列表，position/level 为空表示不过滤
func (r *CourseRepository) FindPublished(position model.Position, level model.TrainingLevel, page, limit int) ([]model.Course, int64, error) {
	query := r.DB.Model(&model.Course{}).Where("published = ?", true)
	if position != "" {
		query = query.Where("position = ?", position)
	}
	if level != "" {
		query = query.Where("level = ?", level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("videos.sort_order ASC")
	}).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) CreateVideo(video *model.Video) error {
	return r.DB.Create(video).Error
}

func (r *CourseRepository) FindVideoByID(id uint) (*model.Video, error) {
	var video model.Video
	err := r.DB.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *CourseRepository) DeleteVideo(id uint) error {
	return r.DB.Delete(&model.Video{}, id).Error
}
