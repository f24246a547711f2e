package util

import (
	"fmt"

	"studyhub_backend/pkg/memdb"
)

// 领域层的未找到错误，统一包装memdb.ErrNotFound，
// errors.Is对具体哨兵和底层存储错误都能匹配
var (
	ErrUserNotFound             = fmt.Errorf("user not found: %w", memdb.ErrNotFound)
	ErrCourseNotFound           = fmt.Errorf("course not found: %w", memdb.ErrNotFound)
	ErrNoteNotFound             = fmt.Errorf("note not found: %w", memdb.ErrNotFound)
	ErrEnrollmentNotFound       = fmt.Errorf("enrollment not found: %w", memdb.ErrNotFound)
	ErrNotificationNotFound     = fmt.Errorf("notification not found: %w", memdb.ErrNotFound)
	ErrSubjectProgressNotFound  = fmt.Errorf("subject progress not found: %w", memdb.ErrNotFound)
	ErrMaterialProgressNotFound = fmt.Errorf("material progress not found: %w", memdb.ErrNotFound)
)
