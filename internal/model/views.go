package model

// 以下为查询层返回的拼接视图，实体记录与视图形态分离，
// 关联查询假定引用完整性成立（当前范围内没有删除操作）。

// swagger:model EnrolledCourse
type EnrolledCourse struct {
	Enrollment
	Course Course `json:"course"`
}

// swagger:model SessionWithCourse
type SessionWithCourse struct {
	StudySession
	Course Course `json:"course"`
}

// swagger:model NoteWithCourse
type NoteWithCourse struct {
	Note
	Course Course `json:"course"`
}

// swagger:model MaterialWithCourse
type MaterialWithCourse struct {
	StudyMaterial
	Course Course `json:"course"`
}

// swagger:model SubjectProgressInfo
type SubjectProgressInfo struct {
	SubjectProgress
	Subject Subject `json:"subject"`
}
