package repository

import (
	"testing"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/memdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDB(t *testing.T) (*DB, model.User) {
	t.Helper()
	db := NewDB()
	user, err := SeedDemo(db)
	require.NoError(t, err)
	return db, user
}

func TestSeedDemo(t *testing.T) {
	db, user := seededDB(t)

	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "alexj", user.Username)
	assert.NotEqual(t, "password123", user.Password) // 密码入库前必须散列

	sizes := db.TableSizes()
	assert.Equal(t, 1, sizes["users"])
	assert.Equal(t, 5, sizes["subjects"])
	assert.Equal(t, 5, sizes["subject_progress"])
	assert.Equal(t, 3, sizes["courses"])
	assert.Equal(t, 3, sizes["enrollments"])
	assert.Equal(t, 3, sizes["study_sessions"])
	assert.Equal(t, 2, sizes["notes"])
	assert.Equal(t, 3, sizes["study_materials"])
	assert.Equal(t, 3, sizes["notifications"])

	count := NewNotificationRepository(db).CountUnread(user.ID)
	assert.Equal(t, 3, count)
}

func TestEnrollmentFindByUserWithCourse(t *testing.T) {
	db, user := seededDB(t)
	repo := NewEnrollmentRepository(db)

	enrolled := repo.FindByUserWithCourse(user.ID)
	require.Len(t, enrolled, 3)

	// 创建顺序
	assert.Equal(t, "MATH 301", enrolled[0].Course.Code)
	assert.Equal(t, "PHYS 202", enrolled[1].Course.Code)
	assert.Equal(t, "CS 315", enrolled[2].Course.Code)
	assert.Equal(t, 75, enrolled[0].Progress)
	assert.Equal(t, "A-", enrolled[0].Grade)
}

func TestEnrollmentUpdateProgressAndGrade(t *testing.T) {
	db, _ := seededDB(t)
	repo := NewEnrollmentRepository(db)

	updated, err := repo.UpdateProgress(1, 90)
	require.NoError(t, err)
	assert.Equal(t, 90, updated.Progress)

	updated, err = repo.UpdateGrade(1, "A+")
	require.NoError(t, err)
	assert.Equal(t, "A+", updated.Grade)
	assert.Equal(t, 90, updated.Progress)

	_, err = repo.UpdateProgress(99, 10)
	assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
}

func TestSessionFindRecentByUser(t *testing.T) {
	db := NewDB()
	user, err := SeedDemo(db)
	require.NoError(t, err)
	repo := NewSessionRepository(db)

	base := time.Now()
	repo.Create(model.StudySession{UserID: user.ID, CourseID: 1, Topic: "Derivatives", Duration: 600, StartTime: base.Add(time.Hour)})
	repo.Create(model.StudySession{UserID: user.ID, CourseID: 2, Topic: "Optics", Duration: 300, StartTime: base.Add(2 * time.Hour)})
	repo.Create(model.StudySession{UserID: 42, CourseID: 1, Topic: "Other", Duration: 100, StartTime: base.Add(3 * time.Hour)})

	recent := repo.FindRecentByUser(user.ID, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "Optics", recent[0].Topic)
	assert.Equal(t, "Derivatives", recent[1].Topic)
	for _, s := range recent {
		assert.Equal(t, user.ID, s.UserID)
	}
	assert.False(t, recent[1].StartTime.After(recent[0].StartTime))
}

func TestSessionFindRecentStableOnTies(t *testing.T) {
	db := NewDB()
	repo := NewSessionRepository(db)

	ts := time.Now()
	first := repo.Create(model.StudySession{UserID: 1, CourseID: 1, Topic: "first", Duration: 60, StartTime: ts})
	second := repo.Create(model.StudySession{UserID: 1, CourseID: 1, Topic: "second", Duration: 60, StartTime: ts})

	recent := repo.FindRecentByUser(1, 10)
	require.Len(t, recent, 2)
	assert.Equal(t, first.ID, recent[0].ID)
	assert.Equal(t, second.ID, recent[1].ID)
}

func TestNoteFindRecentByUser(t *testing.T) {
	db := NewDB()
	repo := NewNoteRepository(db)

	base := time.Now()
	repo.Create(model.Note{UserID: 1, CourseID: 1, Title: "old", Content: "a", CreatedAt: base.Add(-2 * time.Hour)})
	repo.Create(model.Note{UserID: 1, CourseID: 1, Title: "new", Content: "b", CreatedAt: base})
	repo.Create(model.Note{UserID: 1, CourseID: 1, Title: "mid", Content: "c", CreatedAt: base.Add(-time.Hour)})

	recent := repo.FindRecentByUser(1, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].Title)
	assert.Equal(t, "mid", recent[1].Title)
}

func TestRecommendedMaterialsOrdering(t *testing.T) {
	// 种子数据：book/80、assignment/15、video/0 → 进度升序
	db, user := seededDB(t)
	repo := NewMaterialRepository(db)

	recommended := repo.FindRecommendedForUser(user.ID)
	require.Len(t, recommended, 3)
	assert.Equal(t, model.MaterialVideo, recommended[0].Type)
	assert.Equal(t, 0, recommended[0].Progress)
	assert.Equal(t, model.MaterialAssignment, recommended[1].Type)
	assert.Equal(t, 15, recommended[1].Progress)
	assert.Equal(t, model.MaterialBook, recommended[2].Type)
	assert.Equal(t, 80, recommended[2].Progress)

	// 每条都带课程视图
	assert.Equal(t, "Data Structures & Algorithms", recommended[0].Course.Name)
}

func TestRecommendedMaterialsTieBreakByType(t *testing.T) {
	db := NewDB()
	db.Courses.Insert(model.Course{Name: "C1", Code: "C1", Instructor: "i", IconName: "x", IconColor: "y"})
	db.Enrollments.Insert(model.Enrollment{UserID: 1, CourseID: 1})

	db.StudyMaterials.Insert(model.StudyMaterial{CourseID: 1, Title: "v", Type: model.MaterialVideo, Progress: 50})
	db.StudyMaterials.Insert(model.StudyMaterial{CourseID: 1, Title: "a", Type: model.MaterialAssignment, Progress: 50})
	db.StudyMaterials.Insert(model.StudyMaterial{CourseID: 1, Title: "x", Type: model.MaterialType("podcast"), Progress: 50})
	db.StudyMaterials.Insert(model.StudyMaterial{CourseID: 1, Title: "b", Type: model.MaterialBook, Progress: 50})

	recommended := NewMaterialRepository(db).FindRecommendedForUser(1)
	require.Len(t, recommended, 4)
	assert.Equal(t, "a", recommended[0].Title)
	assert.Equal(t, "b", recommended[1].Title)
	assert.Equal(t, "v", recommended[2].Title)
	assert.Equal(t, "x", recommended[3].Title) // 未知类型沉底
}

func TestRecommendedMaterialsLimitedToEnrolledCourses(t *testing.T) {
	db, user := seededDB(t)

	// 未选课程下的资料不进入推荐
	other := db.Courses.Insert(model.Course{Name: "Other", Code: "O 1", Instructor: "i", IconName: "x", IconColor: "y"})
	db.StudyMaterials.Insert(model.StudyMaterial{CourseID: other.ID, Title: "hidden", Type: model.MaterialBook, Progress: 0})

	recommended := NewMaterialRepository(db).FindRecommendedForUser(user.ID)
	for _, m := range recommended {
		assert.NotEqual(t, "hidden", m.Title)
	}
}

func TestMaterialProgressPairLookup(t *testing.T) {
	db := NewDB()
	repo := NewMaterialProgressRepository(db)

	_, ok := repo.FindByUserAndMaterial(1, 2)
	assert.False(t, ok)

	created := repo.Create(model.MaterialProgress{UserID: 1, MaterialID: 2, Progress: 30})
	found, ok := repo.FindByUserAndMaterial(1, 2)
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)

	updated, err := repo.UpdateProgress(created.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Progress)
	assert.Equal(t, 1, db.MaterialProgress.Len())
}

func TestSubjectProgressFindByUserWithSubject(t *testing.T) {
	db, user := seededDB(t)
	repo := NewSubjectProgressRepository(db)

	rows := repo.FindByUserWithSubject(user.ID)
	require.Len(t, rows, 5)
	assert.Equal(t, "Math", rows[0].Subject.Name)
	assert.Equal(t, 85, rows[0].Progress)
	assert.Equal(t, "Computer Science", rows[4].Subject.Name)
	assert.Equal(t, 78, rows[4].Progress)
}

func TestNotificationsSortedNewestFirst(t *testing.T) {
	db, user := seededDB(t)
	repo := NewNotificationRepository(db)

	notifications := repo.FindByUser(user.ID)
	require.Len(t, notifications, 3)

	// 种子通知分别写于10分钟、1小时、1天前
	titles := make([]string, len(notifications))
	for i, n := range notifications {
		titles[i] = n.Title
	}
	assert.Equal(t, []string{"Assignment Graded", "Deadline Reminder", "New Course Material"}, titles)
}

func TestMarkReadDecrementsUnreadCount(t *testing.T) {
	db, user := seededDB(t)
	repo := NewNotificationRepository(db)

	before := repo.CountUnread(user.ID)
	require.Equal(t, 3, before)

	updated, err := repo.MarkRead(1)
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, before-1, repo.CountUnread(user.ID))

	// 重复标记不再变化
	_, err = repo.MarkRead(1)
	require.NoError(t, err)
	assert.Equal(t, before-1, repo.CountUnread(user.ID))

	_, err = repo.MarkRead(99)
	assert.ErrorIs(t, err, util.ErrNotificationNotFound)
}

func TestUserFindByUsername(t *testing.T) {
	db, user := seededDB(t)
	repo := NewUserRepository(db)

	found, err := repo.FindByUsername("alexj")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestNotFoundErrorsWrapStoreSentinel(t *testing.T) {
	db, _ := seededDB(t)

	_, err := NewUserRepository(db).FindByID(99)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
	assert.ErrorIs(t, err, memdb.ErrNotFound)

	_, err = NewCourseRepository(db).FindByID(99)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, err = NewNoteRepository(db).FindByIDWithCourse(99)
	assert.ErrorIs(t, err, util.ErrNoteNotFound)

	_, err = NewSubjectProgressRepository(db).UpdateProgress(99, 10)
	assert.ErrorIs(t, err, util.ErrSubjectProgressNotFound)

	_, err = NewMaterialProgressRepository(db).UpdateProgress(99, 10)
	assert.ErrorIs(t, err, util.ErrMaterialProgressNotFound)
	assert.ErrorIs(t, err, memdb.ErrNotFound)
}
