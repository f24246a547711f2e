package service

import (
	"testing"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{45 * 60, "45m"},
		{3600, "1h 0m"},
		{80 * 60, "1h 20m"},
		{125 * 60, "2h 5m"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestRecentSessionsSummary(t *testing.T) {
	db := repository.NewDB()
	course := db.Courses.Insert(model.Course{Name: "Physics II", Code: "PHYS 202", Instructor: "i", IconName: "atom", IconColor: "warning"})

	svc := NewStudyService(repository.NewSessionRepository(db))
	base := time.Now()
	svc.Record(model.StudySession{UserID: 1, CourseID: course.ID, Topic: "Mechanics", Duration: 45 * 60, StartTime: base.Add(-time.Hour)})
	svc.Record(model.StudySession{UserID: 1, CourseID: course.ID, Topic: "Optics", Duration: 80 * 60, StartTime: base})

	summaries := svc.RecentSessions(1, 5)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Optics", summaries[0].Topic)
	assert.Equal(t, "Physics II", summaries[0].Subject)
	assert.Equal(t, "1h 20m", summaries[0].Duration)
	assert.Equal(t, "45m", summaries[1].Duration)
}

func TestRecentSessionsHonorsLimit(t *testing.T) {
	db := repository.NewDB()
	db.Courses.Insert(model.Course{Name: "C", Code: "C1", Instructor: "i", IconName: "x", IconColor: "y"})
	svc := NewStudyService(repository.NewSessionRepository(db))

	for i := 0; i < 10; i++ {
		svc.Record(model.StudySession{UserID: 1, CourseID: 1, Duration: 60, StartTime: time.Now()})
	}

	assert.Len(t, svc.RecentSessions(1, 3), 3)
}
