package model

// LessonPlanTemplate 예시/템플릿 지도안 카탈로그. 시드 데이터로 제공된다.
type LessonPlanTemplate struct {
	BaseModel
	Name               string            `gorm:"size:100;not null" json:"name"`
	Description        string            `gorm:"type:text" json:"description"`
	Subject            string            `gorm:"size:50" json:"subject"`
	Grade              string            `gorm:"size:50" json:"grade"`
	Duration           int               `gorm:"default:40" json:"duration"`
	LearningObjectives StringList        `gorm:"type:json" json:"learningObjectives"`
	TargetStudents     TargetStudentList `gorm:"type:json" json:"targetStudents"`
	TeachingMethods    StringList        `gorm:"type:json" json:"teachingMethods"`
	Materials          StringList        `gorm:"type:json" json:"materials"`
	AssessmentMethods  StringList        `gorm:"type:json" json:"assessmentMethods"`
	Accommodations     StringList        `gorm:"type:json" json:"accommodations"`
	Activities         ActivityList      `gorm:"type:json" json:"activities"`
	Notes              string            `gorm:"type:text" json:"notes"`
	Enabled            bool              `gorm:"default:true" json:"enabled"`
}

func (LessonPlanTemplate) TableName() string {
	return "lesson_plan_templates"
}
