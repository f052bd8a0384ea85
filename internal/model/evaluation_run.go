package model

import "encoding/json"

type RunKind string

const (
	RunChecklist  RunKind = "checklist"
	RunEvaluation RunKind = "evaluation"
)

// EvaluationRun 점검/평가 실행 기록. 엔진 결과 자체는 값 객체이고,
// 이력 조회를 위해 실행 시점의 결과를 JSON으로 남긴다.
type EvaluationRun struct {
	BaseModel
	LessonPlanID string          `gorm:"index;type:varchar(36);not null" json:"lessonPlanId"`
	UserID       uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	Kind         RunKind         `gorm:"size:20;not null" json:"kind"`
	Score        int             `gorm:"default:0" json:"score"` // checklist: 완성도(%), evaluation: 백분율
	Grade        string          `gorm:"size:2" json:"grade,omitempty"`
	Payload      json.RawMessage `gorm:"type:json" json:"payload"`
}

func (EvaluationRun) TableName() string {
	return "evaluation_runs"
}
