package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/repository"
	"footballpro_backend/internal/util"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Storage    *StorageService
}

func NewCourseService(courseRepo *repository.CourseRepository, storage *StorageService) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Storage:    storage,
	}
}

func (s *CourseService) ListPublished(position model.Position, level model.TrainingLevel, page, limit int) ([]model.Course, int64, error) {
	return s.CourseRepo.FindPublished(position, level, page, limit)
}

func (s *CourseService) GetCourse(id uint) (*model.Course, error) {
	return s.CourseRepo.FindByID(id)
}

func (s *CourseService) CreateCourse(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

func (s *CourseService) UpdateCourse(course *model.Course) error {
	return s.CourseRepo.Update(course)
}

func (s *CourseService) DeleteCourse(id uint) error {
	return s.CourseRepo.Delete(id)
}

func (s *CourseService) AddVideo(video *model.Video) error {
	if _, err := s.CourseRepo.FindByID(video.CourseID); err != nil {
		return util.ErrCourseNotFound
	}
	return s.CourseRepo.CreateVideo(video)
}

func (s *CourseService) DeleteVideo(id uint) error {
	if _, err := s.CourseRepo.FindVideoByID(id); err != nil {
		return util.ErrVideoNotFound
	}
	return s.CourseRepo.DeleteVideo(id)
}

// UploadCover 课程封面图上传
func (s *CourseService) UploadCover(ctx context.Context, courseID uint, file *multipart.FileHeader) (string, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return "", util.ErrCourseNotFound
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedImageExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", util.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	filename := "covers/" + model.GenerateUUID() + ext
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, contentType)
	if err != nil {
		return "", err
	}

	course.CoverURL = url
	if err := s.CourseRepo.Update(course); err != nil {
		return "", err
	}
	return url, nil
}
