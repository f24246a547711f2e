package service

import (
	"strings"
	"testing"
	"time"

	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotePreviewTruncation(t *testing.T) {
	short := strings.Repeat("a", 100)
	long := strings.Repeat("a", 101)

	assert.Equal(t, "abc", notePreview("abc"))
	assert.Equal(t, short, notePreview(short)) // 恰好100字符不截断
	assert.Equal(t, short+"...", notePreview(long))
}

func TestRecentNotesSummary(t *testing.T) {
	db := repository.NewDB()
	db.Courses.Insert(model.Course{Name: "Math", Code: "M1", Instructor: "i", IconName: "x", IconColor: "y"})

	svc := NewNoteService(repository.NewNoteRepository(db))
	svc.Create(model.Note{
		UserID:    1,
		CourseID:  1,
		Title:     "Integration",
		Content:   strings.Repeat("x", 150),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	})

	summaries := svc.RecentNotes(1, 5)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Integration", summaries[0].Title)
	assert.Len(t, summaries[0].Preview, 153) // 100字符 + "..."
	assert.NotEmpty(t, summaries[0].Date)
}

func TestCreateNoteDefaultsCreatedAt(t *testing.T) {
	db := repository.NewDB()
	svc := NewNoteService(repository.NewNoteRepository(db))

	created := svc.Create(model.Note{UserID: 1, CourseID: 1, Title: "t", Content: "c"})
	assert.False(t, created.CreatedAt.IsZero())
}
