package scoring

import (
	"math"
	"time"

	"sped_lesson_backend/internal/model"
)

// Checker 필수 점검 엔진. 카탈로그와 술어 레지스트리를 주입받으며,
// 생성 후에는 읽기만 하므로 동시 사용에 안전하다.
type Checker struct {
	items      []ChecklistItem
	predicates map[ItemID]Predicate
	notes      map[ItemID]string
	now        func() time.Time
}

// NewChecker 기본 카탈로그로 점검 엔진을 만든다
func NewChecker() *Checker {
	return NewCheckerWithCatalog(mandatoryChecklist, defaultPredicates, improvementNotes)
}

// NewCheckerWithCatalog 대체 카탈로그를 주입한다. 테스트용.
func NewCheckerWithCatalog(items []ChecklistItem, predicates map[ItemID]Predicate, notes map[ItemID]string) *Checker {
	return &Checker{
		items:      items,
		predicates: predicates,
		notes:      notes,
		now:        time.Now,
	}
}

// Items 카탈로그 복사본
func (c *Checker) Items() []ChecklistItem {
	items := make([]ChecklistItem, len(c.items))
	copy(items, c.items)
	return items
}

// ItemsByCategory 카탈로그를 정의 순서로 카테고리별 묶음
func (c *Checker) ItemsByCategory() []CategoryGroup {
	return groupByCategory(c.items)
}

// Check 지도안을 카탈로그 전 항목에 대해 점검한다. 순수 함수이며 plan을
// 수정하지 않는다. 등록되지 않은 항목 id는 미완료로 처리한다(알 수 없는
// 항목은 오류가 아니다).
func (c *Checker) Check(plan *model.LessonPlan) *LessonPlanChecklist {
	results := make([]ChecklistResult, 0, len(c.items))

	completed := 0
	requiredCompleted := 0
	totalRequired := 0

	for _, item := range c.items {
		passed := false
		if pred, ok := c.predicates[item.ID]; ok {
			passed = pred(plan)
		}

		result := ChecklistResult{ItemID: item.ID, Completed: passed}
		if !passed {
			note, ok := c.notes[item.ID]
			if !ok {
				note = genericImprovementNote
			}
			result.Notes = note
		}
		results = append(results, result)

		if passed {
			completed++
		}
		if item.Required {
			totalRequired++
			if passed {
				requiredCompleted++
			}
		}
	}

	rate := 0
	if len(c.items) > 0 {
		rate = int(math.Round(float64(completed) / float64(len(c.items)) * 100))
	}

	return &LessonPlanChecklist{
		LessonPlanID:           plan.ID,
		Results:                results,
		CompletionRate:         rate,
		RequiredItemsCompleted: requiredCompleted,
		TotalRequiredItems:     totalRequired,
		AllRequiredCompleted:   requiredCompleted == totalRequired,
		CheckedAt:              c.now(),
	}
}
