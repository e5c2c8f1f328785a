package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrCourseNotFound       = errors.New("course not found")
	ErrVideoNotFound        = errors.New("video not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingNotCancelable = errors.New("booking can no longer be cancelled")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrMixedUserRecords     = errors.New("activity records span more than one user")
	ErrInvalidFileType      = errors.New("file type not allowed")
)
