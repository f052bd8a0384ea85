package util

import "errors"

var (
	ErrUserNotFound        = errors.New("사용자를 찾을 수 없습니다")
	ErrEmailRegistered     = errors.New("이미 등록된 이메일입니다")
	ErrInvalidCredentials  = errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrLessonPlanNotFound  = errors.New("lesson plan not found")
	ErrTemplateNotFound    = errors.New("template not found")
	ErrTemplateDisabled    = errors.New("template disabled")
	ErrRunNotFound         = errors.New("evaluation run not found")
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
