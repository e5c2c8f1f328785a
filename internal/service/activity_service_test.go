package service

import (
	"context"
	"testing"

	"footballpro_backend/internal/model"
	"footballpro_backend/internal/repository"
	"footballpro_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityService(t *testing.T) (*ActivityService, *model.Course) {
	t.Helper()
	db := newServiceTestDB(t, &model.UserActivity{}, &model.Course{}, &model.Video{})

	course := &model.Course{
		Title:     "传球基础",
		Position:  model.Midfielder,
		Level:     model.Beginner,
		Published: true,
	}
	require.NoError(t, db.Create(course).Error)

	svc := NewActivityService(
		repository.NewActivityRepository(db),
		repository.NewCourseRepository(db),
	)
	return svc, course
}

func TestRecordProgressCreatesNewRecord(t *testing.T) {
	svc, course := newActivityService(t)

	activity, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		CompletionPercentage: 40,
		TimeSpentSeconds:     300,
	})
	require.NoError(t, err)

	assert.Equal(t, 40, activity.CompletionPercentage)
	assert.Equal(t, 300, activity.TimeSpentSeconds)
	assert.False(t, activity.IsCompleted)
	assert.False(t, activity.LastAccessedAt.IsZero())
}

func TestRecordProgressUpsertsExistingRecord(t *testing.T) {
	svc, course := newActivityService(t)

	first, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		CompletionPercentage: 60,
		TimeSpentSeconds:     300,
	})
	require.NoError(t, err)

	second, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		CompletionPercentage: 30, // 低于已有进度，不应回退
		TimeSpentSeconds:     200,
		Rating:               intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "同键只保留一条记录")
	assert.Equal(t, 60, second.CompletionPercentage)
	assert.Equal(t, 500, second.TimeSpentSeconds, "观看时长应累加")
	require.NotNil(t, second.Rating)
	assert.Equal(t, 4, *second.Rating)
}

func TestRecordProgressMarksCompletedAtFull(t *testing.T) {
	svc, course := newActivityService(t)

	activity, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		CompletionPercentage: 100,
		TimeSpentSeconds:     600,
	})
	require.NoError(t, err)
	assert.True(t, activity.IsCompleted)

	// 完成标记不因后续低进度上报而回退
	again, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		CompletionPercentage: 10,
	})
	require.NoError(t, err)
	assert.True(t, again.IsCompleted)
	assert.Equal(t, 100, again.CompletionPercentage)
}

func TestRecordProgressSeparatesVideoDimension(t *testing.T) {
	svc, course := newActivityService(t)
	videoID := uint(5)

	courseLevel, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		CompletionPercentage: 20,
	})
	require.NoError(t, err)

	videoLevel, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		VideoID:              &videoID,
		CompletionPercentage: 80,
	})
	require.NoError(t, err)

	assert.NotEqual(t, courseLevel.ID, videoLevel.ID)
	assert.Equal(t, 20, courseLevel.CompletionPercentage)
	assert.Equal(t, 80, videoLevel.CompletionPercentage)
}

func TestRecordProgressUnknownCourse(t *testing.T) {
	svc, _ := newActivityService(t)

	_, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             999,
		CompletionPercentage: 50,
	})
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestRecentActivityDefaultsBadLimit(t *testing.T) {
	svc, course := newActivityService(t)

	_, err := svc.RecordProgress(1, &ProgressUpdate{
		CourseID:             course.ID,
		CompletionPercentage: 50,
	})
	require.NoError(t, err)

	recent, err := svc.RecentActivity(context.Background(), 1, -3)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
