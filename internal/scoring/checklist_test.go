package scoring

import (
	"reflect"
	"testing"

	"sped_lesson_backend/internal/model"
)

// completePlan 모든 점검 항목과 평가 기준을 충족하는 지도안
func completePlan() *model.LessonPlan {
	plan := &model.LessonPlan{
		Title:    "수와 연산: 10까지의 덧셈 지도",
		Subject:  "수학",
		Grade:    "초등 3학년",
		Duration: 40,
		LearningObjectives: model.StringList{
			"학생은 물건의 개수를 세어 말할 수 있다",
			"학생은 구체물을 이용해 더하기를 할 수 있다",
			"학생은 10 이하의 덧셈식을 읽고 쓸 수 있다",
		},
		TargetStudents: model.TargetStudentList{
			{
				Name:           "김민준",
				Disability:     "지적장애",
				CurrentLevel:   "5까지의 수를 셀 수 있음",
				Goals:          "10까지의 덧셈 해결",
				Accommodations: "시각적 단서 제공",
			},
		},
		TeachingMethods: model.StringList{
			"개별화 교수 전략 적용",
			"구체물 활용 수업",
			"단계적 촉진 제공",
		},
		Materials: model.StringList{
			"수 세기 구체물 바구니",
			"숫자 카드",
			"덧셈 활동지",
			"보상 스티커",
			"그림 자료",
		},
		AssessmentMethods: model.StringList{
			"관찰평가",
			"수행평가",
			"학습 목표 도달 체크리스트",
		},
		Accommodations: model.StringList{
			"개별 학습 속도에 맞춘 과제 제공",
			"시각적 단서와 구체물 지원",
			"주의집중을 위한 자리 배치",
			"가정 연계 과제 안내",
		},
		Activities: model.ActivityList{
			{Phase: "도입", Time: 5, Activity: "지난 시간 복습과 동기 유발 노래 활동", Materials: "그림 자료"},
			{Phase: "전개", Time: 15, Activity: "구체물을 조작하며 덧셈 원리 탐색하기", Materials: "수 세기 구체물"},
			{Phase: "전개", Time: 15, Activity: "짝과 함께 덧셈 문제 해결하고 발표하기", Materials: "덧셈 활동지"},
			{Phase: "정리", Time: 5, Activity: "배운 내용 정리하고 스스로 평가하기", Materials: "체크리스트"},
		},
		Notes: "안전에 유의하며 구체물을 다룬다. 배운 내용은 가정에서 일반화하도록 부모 안내문을 보낸다.",
	}
	plan.ID = "plan-001"
	return plan
}

func emptyPlan() *model.LessonPlan {
	plan := &model.LessonPlan{}
	plan.ID = "plan-empty"
	return plan
}

func resultFor(t *testing.T, checklist *LessonPlanChecklist, id ItemID) ChecklistResult {
	t.Helper()
	for _, r := range checklist.Results {
		if r.ItemID == id {
			return r
		}
	}
	t.Fatalf("no result for item %q", id)
	return ChecklistResult{}
}

func TestCheck_CompletePlan(t *testing.T) {
	checklist := NewChecker().Check(completePlan())

	if checklist.LessonPlanID != "plan-001" {
		t.Errorf("LessonPlanID = %q, want plan-001", checklist.LessonPlanID)
	}
	if checklist.CompletionRate != 100 {
		for _, r := range checklist.Results {
			if !r.Completed {
				t.Logf("incomplete: %s", r.ItemID)
			}
		}
		t.Errorf("CompletionRate = %d, want 100", checklist.CompletionRate)
	}
	if !checklist.AllRequiredCompleted {
		t.Error("AllRequiredCompleted = false, want true")
	}
	if checklist.RequiredItemsCompleted != checklist.TotalRequiredItems {
		t.Errorf("RequiredItemsCompleted = %d, TotalRequiredItems = %d",
			checklist.RequiredItemsCompleted, checklist.TotalRequiredItems)
	}
	for _, r := range checklist.Results {
		if r.Completed && r.Notes != "" {
			t.Errorf("item %s completed but has notes %q", r.ItemID, r.Notes)
		}
	}
}

func TestCheck_EmptyPlan(t *testing.T) {
	checklist := NewChecker().Check(emptyPlan())

	if checklist.AllRequiredCompleted {
		t.Error("AllRequiredCompleted = true, want false")
	}
	if checklist.TotalRequiredItems != 25 {
		t.Errorf("TotalRequiredItems = %d, want 25", checklist.TotalRequiredItems)
	}

	// 빈 지도안에서도 공허하게 참인 항목과 시간 일치(0분=0분) 항목은 통과한다
	vacuous := []ItemID{
		ItemObjectivesAppropriate,
		ItemMaterialsAppropriate,
		ItemActivitiesTime,
		ItemActivitiesDetailed,
		ItemAccommodationsSpecific,
	}
	for _, id := range vacuous {
		if r := resultFor(t, checklist, id); !r.Completed {
			t.Errorf("item %s = not completed, want completed on empty plan", id)
		}
	}

	failing := []ItemID{ItemBasicTitle, ItemObjectivesExist, ItemStudentsInfo, ItemActivitiesStructure}
	for _, id := range failing {
		r := resultFor(t, checklist, id)
		if r.Completed {
			t.Errorf("item %s = completed, want not completed on empty plan", id)
		}
		if r.Notes == "" {
			t.Errorf("item %s has no improvement note", id)
		}
	}

	// 통과 5건 / 전체 30건
	if checklist.CompletionRate != 17 {
		t.Errorf("CompletionRate = %d, want 17", checklist.CompletionRate)
	}
}

func TestCheck_Deterministic(t *testing.T) {
	checker := NewChecker()
	plan := completePlan()

	first := checker.Check(plan)
	second := checker.Check(plan)

	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Error("repeated checks produced different results")
	}
	if first.CompletionRate != second.CompletionRate {
		t.Errorf("CompletionRate differs: %d vs %d", first.CompletionRate, second.CompletionRate)
	}
}

func TestCheck_DoesNotMutatePlan(t *testing.T) {
	plan := completePlan()
	before := *plan
	beforeObjectives := append(model.StringList{}, plan.LearningObjectives...)

	NewChecker().Check(plan)

	if plan.Title != before.Title || plan.Duration != before.Duration {
		t.Error("plan scalar fields mutated")
	}
	if !reflect.DeepEqual(plan.LearningObjectives, beforeObjectives) {
		t.Error("plan objectives mutated")
	}
}

func TestCheck_ObjectivePredicates(t *testing.T) {
	plan := emptyPlan()
	plan.LearningObjectives = model.StringList{
		"학생은 물건의 개수를 세어 말할 수 있다",
		"학생은 구체물을 이용해 더하기를 할 수 있다",
	}

	checklist := NewChecker().Check(plan)

	for _, id := range []ItemID{ItemObjectivesExist, ItemObjectivesSpecific, ItemObjectivesAppropriate} {
		if r := resultFor(t, checklist, id); !r.Completed {
			t.Errorf("item %s = not completed, want completed", id)
		}
	}
}

func TestCheck_ObjectiveMonotonicity(t *testing.T) {
	plan := emptyPlan()
	plan.LearningObjectives = model.StringList{"학생은 물건의 개수를 세어 말할 수 있다"}

	checker := NewChecker()
	before := checker.Check(plan)
	if resultFor(t, before, ItemObjectivesExist).Completed {
		t.Fatal("objectives-exist completed with a single objective")
	}

	plan.LearningObjectives = append(plan.LearningObjectives, "학생은 구체물을 이용해 더하기를 할 수 있다")
	after := checker.Check(plan)

	if !resultFor(t, after, ItemObjectivesExist).Completed {
		t.Error("objectives-exist = not completed after adding second objective")
	}
	if after.CompletionRate < before.CompletionRate {
		t.Errorf("CompletionRate decreased: %d -> %d", before.CompletionRate, after.CompletionRate)
	}
}

func TestCheck_ActivityTimeTolerance(t *testing.T) {
	plan := emptyPlan()
	plan.Duration = 40
	plan.Activities = model.ActivityList{
		{Phase: "도입", Time: 10, Activity: "동기 유발 활동"},
		{Phase: "전개", Time: 20, Activity: "본 활동"},
		{Phase: "정리", Time: 10, Activity: "정리 활동"},
	}

	checker := NewChecker()
	if r := resultFor(t, checker.Check(plan), ItemActivitiesTime); !r.Completed {
		t.Error("activities-time = not completed at |40-40| = 0")
	}

	plan.Duration = 50
	if r := resultFor(t, checker.Check(plan), ItemActivitiesTime); r.Completed {
		t.Error("activities-time = completed at |40-50| = 10")
	}
}

func TestCheck_SafetyFromAccommodations(t *testing.T) {
	plan := emptyPlan()
	plan.Accommodations = model.StringList{"활동 중 안전 지도 실시"}

	checklist := NewChecker().Check(plan)
	if r := resultFor(t, checklist, ItemSafetyConsiderations); !r.Completed {
		t.Error("safety-considerations = not completed with safety keyword in accommodations")
	}
}

func TestCheck_GeneralizationFromActivityNotes(t *testing.T) {
	plan := emptyPlan()
	plan.Activities = model.ActivityList{
		{Phase: "정리", Time: 5, Activity: "마무리 활동하기", Notes: "가정에서 일반화 연습"},
	}

	checklist := NewChecker().Check(plan)
	if r := resultFor(t, checklist, ItemGeneralization); !r.Completed {
		t.Error("generalization = not completed with keyword in activity notes")
	}
}

func TestCheck_UnknownItemFallsBack(t *testing.T) {
	items := []ChecklistItem{
		{ID: ItemID("custom-item"), Category: "기타", Title: "사용자 항목", Required: true},
	}
	checker := NewCheckerWithCatalog(items, map[ItemID]Predicate{}, map[ItemID]string{})

	checklist := checker.Check(emptyPlan())
	r := resultFor(t, checklist, ItemID("custom-item"))
	if r.Completed {
		t.Error("unregistered item = completed, want not completed")
	}
	if r.Notes != genericImprovementNote {
		t.Errorf("Notes = %q, want generic fallback", r.Notes)
	}
}

func TestCheck_CompletionRateRange(t *testing.T) {
	plans := []*model.LessonPlan{emptyPlan(), completePlan()}
	checker := NewChecker()
	for _, plan := range plans {
		checklist := checker.Check(plan)
		if checklist.CompletionRate < 0 || checklist.CompletionRate > 100 {
			t.Errorf("CompletionRate = %d, want within [0,100]", checklist.CompletionRate)
		}
	}
}
