package service

import (
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
)

type DashboardService struct {
	UserRepo            *repository.UserRepository
	CourseRepo          *repository.CourseRepository
	EnrollmentRepo      *repository.EnrollmentRepository
	SubjectRepo         *repository.SubjectRepository
	SubjectProgressRepo *repository.SubjectProgressRepository
	StudyService        *StudyService
	NoteService         *NoteService
	MaterialService     *MaterialService
	NotificationService *NotificationService
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	subjectRepo *repository.SubjectRepository,
	subjectProgressRepo *repository.SubjectProgressRepository,
	studyService *StudyService,
	noteService *NoteService,
	materialService *MaterialService,
	notificationService *NotificationService,
) *DashboardService {
	return &DashboardService{
		UserRepo:            userRepo,
		CourseRepo:          courseRepo,
		EnrollmentRepo:      enrollmentRepo,
		SubjectRepo:         subjectRepo,
		SubjectProgressRepo: subjectProgressRepo,
		StudyService:        studyService,
		NoteService:         noteService,
		MaterialService:     materialService,
		NotificationService: notificationService,
	}
}

// Overview 仪表盘聚合视图，一次返回各卡片所需数据
type Overview struct {
	User            model.User                  `json:"user"`
	SubjectProgress []model.SubjectProgressInfo `json:"subjectProgress"`
	Courses         []model.EnrolledCourse      `json:"courses"`
	RecentSessions  []SessionSummary            `json:"recentSessions"`
	RecentNotes     []NoteSummary               `json:"recentNotes"`
	Recommended     []model.MaterialWithCourse  `json:"recommendedMaterials"`
	UnreadCount     int                         `json:"unreadNotifications"`
}

func (s *DashboardService) GetOverview(userID int) (*Overview, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &Overview{
		User:            user,
		SubjectProgress: s.SubjectProgressRepo.FindByUserWithSubject(userID),
		Courses:         s.EnrollmentRepo.FindByUserWithCourse(userID),
		RecentSessions:  s.StudyService.RecentSessions(userID, 3),
		RecentNotes:     s.NoteService.RecentNotes(userID, 2),
		Recommended:     s.MaterialService.Recommended(userID),
		UnreadCount:     s.NotificationService.UnreadCount(userID),
	}, nil
}

func (s *DashboardService) SubjectProgress(userID int) []model.SubjectProgressInfo {
	return s.SubjectProgressRepo.FindByUserWithSubject(userID)
}

func (s *DashboardService) Courses(userID int) []model.EnrolledCourse {
	return s.EnrollmentRepo.FindByUserWithCourse(userID)
}

func (s *DashboardService) AllCourses() []model.Course {
	return s.CourseRepo.FindAll()
}

func (s *DashboardService) AllSubjects() []model.Subject {
	return s.SubjectRepo.FindAll()
}

func (s *DashboardService) UpdateCourseProgress(enrollmentID, progress int) (model.Enrollment, error) {
	return s.EnrollmentRepo.UpdateProgress(enrollmentID, progress)
}

func (s *DashboardService) UpdateCourseGrade(enrollmentID int, grade string) (model.Enrollment, error) {
	return s.EnrollmentRepo.UpdateGrade(enrollmentID, grade)
}

func (s *DashboardService) UpdateSubjectProgress(progressID, progress int) (model.SubjectProgress, error) {
	return s.SubjectProgressRepo.UpdateProgress(progressID, progress)
}
