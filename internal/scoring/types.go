// Package scoring 수업지도안 규칙 기반 점검/평가 엔진.
//
// 두 엔진(Checker, Evaluator) 모두 순수 함수다: 입력 지도안과 불변 카탈로그만
// 읽고, 매 호출마다 새 결과 객체를 만들며, I/O가 없다. 동시 호출에 안전하다.
package scoring

import (
	"time"

	"sped_lesson_backend/internal/model"
)

// ItemID 점검 항목 식별자. 카탈로그와 술어 레지스트리가 이 닫힌 집합을 공유한다.
type ItemID string

const (
	ItemBasicTitle    ItemID = "basic-title"
	ItemBasicSubject  ItemID = "basic-subject"
	ItemBasicGrade    ItemID = "basic-grade"
	ItemBasicDuration ItemID = "basic-duration"

	ItemObjectivesExist       ItemID = "objectives-exist"
	ItemObjectivesSpecific    ItemID = "objectives-specific"
	ItemObjectivesAppropriate ItemID = "objectives-appropriate"

	ItemStudentsInfo       ItemID = "students-info"
	ItemStudentsDisability ItemID = "students-disability"
	ItemStudentsLevel      ItemID = "students-level"
	ItemStudentsGoals      ItemID = "students-goals"

	ItemMethodsAppropriate ItemID = "methods-appropriate"
	ItemMethodsMultiple    ItemID = "methods-multiple"
	ItemMethodsEvidence    ItemID = "methods-evidence"

	ItemMaterialsList        ItemID = "materials-list"
	ItemMaterialsAppropriate ItemID = "materials-appropriate"
	ItemMaterialsAccessible  ItemID = "materials-accessible"

	ItemActivitiesStructure  ItemID = "activities-structure"
	ItemActivitiesTime       ItemID = "activities-time"
	ItemActivitiesDetailed   ItemID = "activities-detailed"
	ItemActivitiesEngagement ItemID = "activities-engagement"

	ItemAssessmentMethods  ItemID = "assessment-methods"
	ItemAssessmentCriteria ItemID = "assessment-criteria"
	ItemAssessmentMultiple ItemID = "assessment-multiple"

	ItemAccommodationsList           ItemID = "accommodations-list"
	ItemAccommodationsSpecific       ItemID = "accommodations-specific"
	ItemAccommodationsIndividualized ItemID = "accommodations-individualized"

	ItemSafetyConsiderations ItemID = "safety-considerations"
	ItemGeneralization       ItemID = "generalization"
	ItemParentInvolvement    ItemID = "parent-involvement"
)

// ChecklistItem 고정 점검 항목. Weight는 데이터로만 보존되고 집계에는 쓰이지
// 않는다(완성도는 항목 수 기준 균등 집계).
type ChecklistItem struct {
	ID          ItemID `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Weight      int    `json:"weight"`
}

// ChecklistResult 항목별 점검 결과. 미완료일 때만 Notes에 보완 안내가 붙는다.
type ChecklistResult struct {
	ItemID    ItemID `json:"itemId"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

// LessonPlanChecklist 점검 실행 1회의 집계 결과
type LessonPlanChecklist struct {
	LessonPlanID           string            `json:"lessonPlanId"`
	Results                []ChecklistResult `json:"results"`
	CompletionRate         int               `json:"completionRate"` // 0~100, 전체 항목 기준
	RequiredItemsCompleted int               `json:"requiredItemsCompleted"`
	TotalRequiredItems     int               `json:"totalRequiredItems"`
	AllRequiredCompleted   bool              `json:"allRequiredCompleted"`
	CheckedAt              time.Time         `json:"checkedAt"`
}

// CategoryGroup 카테고리별 점검 항목 묶음. 맵 대신 슬라이스를 써서
// 카탈로그 정의 순서를 유지한다.
type CategoryGroup struct {
	Category string          `json:"category"`
	Items    []ChecklistItem `json:"items"`
}

// CriterionID 평가 기준 식별자
type CriterionID string

const (
	CriterionLearningObjectives CriterionID = "learning-objectives"
	CriterionStudentAnalysis    CriterionID = "student-analysis"
	CriterionTeachingMethods    CriterionID = "teaching-methods"
	CriterionMaterials          CriterionID = "materials"
	CriterionActivities         CriterionID = "activities"
	CriterionAssessment         CriterionID = "assessment"
	CriterionAccommodations     CriterionID = "accommodations"
)

// EvaluationCriterion 가중 평가 기준. Weight는 백분율 기여도이고 7개 합이 100이다.
type EvaluationCriterion struct {
	ID          CriterionID `json:"id"`
	Category    string      `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Weight      int         `json:"weight"`
	MaxScore    int         `json:"maxScore"`
}

// EvaluationResult 기준별 평가 결과. 점수 4 이상이면 Suggestions는 비어 있다.
type EvaluationResult struct {
	CriteriaID  CriterionID `json:"criteriaId"`
	Score       int         `json:"score"` // 1~5
	Feedback    string      `json:"feedback"`
	Suggestions []string    `json:"suggestions"`
}

// LessonPlanEvaluation 평가 실행 1회의 집계 결과
type LessonPlanEvaluation struct {
	LessonPlanID           string             `json:"lessonPlanId"`
	OverallScore           int                `json:"overallScore"`
	MaxPossibleScore       int                `json:"maxPossibleScore"`
	Percentage             int                `json:"percentage"` // 0~100
	Grade                  string             `json:"grade"`      // A~F
	Results                []EvaluationResult `json:"results"`
	OverallFeedback        string             `json:"overallFeedback"`
	ImprovementSuggestions []string           `json:"improvementSuggestions"`
	EvaluatedAt            time.Time          `json:"evaluatedAt"`
}

// Predicate 점검 항목 하나의 판정 함수
type Predicate func(plan *model.LessonPlan) bool

// ScoreFunc 평가 기준 하나의 채점 함수. 1~5 범위의 값을 돌려준다.
type ScoreFunc func(plan *model.LessonPlan) int

// GradeFor 백분율을 등급으로 변환한다
func GradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}
