package scoring

import (
	"reflect"
	"testing"

	"sped_lesson_backend/internal/model"
)

func evalResultFor(t *testing.T, eval *LessonPlanEvaluation, id CriterionID) EvaluationResult {
	t.Helper()
	for _, r := range eval.Results {
		if r.CriteriaID == id {
			return r
		}
	}
	t.Fatalf("no result for criterion %q", id)
	return EvaluationResult{}
}

func TestEvaluate_CompletePlan(t *testing.T) {
	eval := NewEvaluator().Evaluate(completePlan())

	if eval.MaxPossibleScore != 500 {
		t.Errorf("MaxPossibleScore = %d, want 500", eval.MaxPossibleScore)
	}
	if eval.OverallScore != 500 {
		for _, r := range eval.Results {
			t.Logf("%s: %d", r.CriteriaID, r.Score)
		}
		t.Errorf("OverallScore = %d, want 500", eval.OverallScore)
	}
	if eval.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", eval.Percentage)
	}
	if eval.Grade != "A" {
		t.Errorf("Grade = %q, want A", eval.Grade)
	}
	if got := eval.ImprovementSuggestions; len(got) != 1 || got[0] != maintainSuggestion {
		t.Errorf("ImprovementSuggestions = %v, want single maintain message", got)
	}
	for _, r := range eval.Results {
		if len(r.Suggestions) != 0 {
			t.Errorf("criterion %s score %d has suggestions %v", r.CriteriaID, r.Score, r.Suggestions)
		}
	}
}

func TestEvaluate_EmptyPlan(t *testing.T) {
	eval := NewEvaluator().Evaluate(emptyPlan())

	for _, r := range eval.Results {
		if r.Score < 1 || r.Score > 5 {
			t.Errorf("criterion %s score = %d, want within [1,5]", r.CriteriaID, r.Score)
		}
	}
	if eval.Grade != "F" {
		t.Errorf("Grade = %q, want F (percentage %d)", eval.Grade, eval.Percentage)
	}
	if len(eval.ImprovementSuggestions) == 0 {
		t.Error("ImprovementSuggestions empty, want collected suggestions")
	}
	if len(eval.ImprovementSuggestions) > 5 {
		t.Errorf("ImprovementSuggestions = %d entries, want at most 5", len(eval.ImprovementSuggestions))
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	evaluator := NewEvaluator()
	plan := completePlan()

	first := evaluator.Evaluate(plan)
	second := evaluator.Evaluate(plan)

	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Error("repeated evaluations produced different results")
	}
	if first.Percentage != second.Percentage || first.Grade != second.Grade {
		t.Error("aggregate values differ between runs")
	}
}

func TestScoreAssessment_TwoMethods(t *testing.T) {
	plan := emptyPlan()
	plan.AssessmentMethods = model.StringList{"관찰평가", "수행평가"}

	// 기본 1 + 2개 이상 1 + 유형 2종(관찰, 수행) 1
	if got := scoreAssessment(plan); got != 3 {
		t.Errorf("scoreAssessment = %d, want 3", got)
	}
}

func TestScoreAssessment_ThreeMethodsBonus(t *testing.T) {
	plan := emptyPlan()
	plan.AssessmentMethods = model.StringList{"지필평가", "면담평가", "과제평가"}

	// 3개 이상은 +2 일괄 가점, 유형 키워드는 "평가"뿐이라 유형 가점 없음
	if got := scoreAssessment(plan); got != 4 {
		t.Errorf("scoreAssessment = %d, want 4", got)
	}
}

func TestScoreLearningObjectives_ComboBonus(t *testing.T) {
	plan := emptyPlan()
	plan.LearningObjectives = model.StringList{
		"학생은 물건의 개수를 세어 말할 수 있다",
		"학생은 구체물을 이용해 더하기를 할 수 있다",
	}

	// 2개 이상 +1, 측정 가능 +1, 15자 초과 +1, 3개 미만이라 결합 가점 없음
	if got := scoreLearningObjectives(plan); got != 4 {
		t.Errorf("scoreLearningObjectives = %d, want 4", got)
	}

	plan.LearningObjectives = append(plan.LearningObjectives, "학생은 10 이하의 덧셈식을 읽고 쓸 수 있다")
	if got := scoreLearningObjectives(plan); got != 5 {
		t.Errorf("scoreLearningObjectives = %d, want 5 with combo bonus", got)
	}
}

func TestScoreStudentAnalysis_FirstStudentOnly(t *testing.T) {
	plan := emptyPlan()
	plan.TargetStudents = model.TargetStudentList{
		{Name: "김민준"},
		{
			Name:           "이서연",
			Disability:     "자폐성장애",
			CurrentLevel:   "두 단어 문장으로 요구하기 가능",
			Goals:          "세 단어 문장 사용",
			Accommodations: "그림 교환 의사소통",
		},
	}

	// 두 번째 학생이 아무리 충실해도 첫 번째 학생만 본다
	if got := scoreStudentAnalysis(plan); got != 2 {
		t.Errorf("scoreStudentAnalysis = %d, want 2 (first student only)", got)
	}
}

func TestScoreMaterials_LengthBonusIsDouble(t *testing.T) {
	plan := emptyPlan()
	plan.Materials = model.StringList{"수 세기 구체물 바구니"}

	// 개수 가점 없음, 6자 이상 자료 +2
	if got := scoreMaterials(plan); got != 3 {
		t.Errorf("scoreMaterials = %d, want 3", got)
	}
}

func TestScoreActivities_TimeAndDetail(t *testing.T) {
	plan := emptyPlan()
	plan.Duration = 40
	plan.Activities = model.ActivityList{
		{Phase: "도입", Time: 10, Activity: "동기 유발과 전시 학습 상기 활동", Materials: "그림 자료"},
		{Phase: "전개", Time: 20, Activity: "구체물을 조작하며 원리 탐색하기", Materials: "구체물"},
		{Phase: "정리", Time: 10, Activity: "배운 내용 정리하고 평가하기", Materials: "활동지"},
	}

	// 3개 이상 +1, 시간 일치 +1, 전 활동 상세+자료 +1
	if got := scoreActivities(plan); got != 4 {
		t.Errorf("scoreActivities = %d, want 4", got)
	}

	plan.Activities[1].Materials = ""
	if got := scoreActivities(plan); got != 3 {
		t.Errorf("scoreActivities = %d, want 3 when an activity lacks materials", got)
	}
}

func TestEvaluate_SuggestionsOnlyBelowFour(t *testing.T) {
	plan := completePlan()
	plan.AssessmentMethods = model.StringList{"관찰평가", "수행평가"} // score 3

	eval := NewEvaluator().Evaluate(plan)

	r := evalResultFor(t, eval, CriterionAssessment)
	if r.Score != 3 {
		t.Fatalf("assessment score = %d, want 3", r.Score)
	}
	if len(r.Suggestions) != 3 {
		t.Errorf("assessment suggestions = %d, want 3", len(r.Suggestions))
	}

	for _, other := range eval.Results {
		if other.CriteriaID == CriterionAssessment {
			continue
		}
		if other.Score >= 4 && len(other.Suggestions) != 0 {
			t.Errorf("criterion %s score %d has suggestions", other.CriteriaID, other.Score)
		}
	}
}

func TestEvaluate_SuggestionsEmptyWithoutTableEntry(t *testing.T) {
	criteria := []EvaluationCriterion{
		{ID: CriterionID("custom"), Title: "사용자 기준", Weight: 100, MaxScore: 5},
	}
	scorers := map[CriterionID]ScoreFunc{
		CriterionID("custom"): func(*model.LessonPlan) int { return 2 },
	}
	evaluator := NewEvaluatorWithCatalog(criteria, scorers, nil, nil)

	eval := evaluator.Evaluate(emptyPlan())
	r := evalResultFor(t, eval, CriterionID("custom"))
	if r.Score != 2 {
		t.Fatalf("score = %d, want 2", r.Score)
	}
	if len(r.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want empty without table entry", r.Suggestions)
	}
	if r.Feedback != genericFeedback {
		t.Errorf("Feedback = %q, want generic fallback", r.Feedback)
	}
}

func TestEvaluate_ImprovementSuggestionsDedupAndCap(t *testing.T) {
	shared := "공통 개선 제안입니다."
	criteria := []EvaluationCriterion{}
	scorers := map[CriterionID]ScoreFunc{}
	suggestions := map[CriterionID][]string{}
	for _, id := range []CriterionID{"c1", "c2", "c3"} {
		criteria = append(criteria, EvaluationCriterion{ID: id, Title: string(id), Weight: 10, MaxScore: 5})
		scorers[id] = func(*model.LessonPlan) int { return 1 }
		suggestions[id] = []string{shared, "제안 " + string(id) + "-1", "제안 " + string(id) + "-2"}
	}
	evaluator := NewEvaluatorWithCatalog(criteria, scorers, nil, suggestions)

	eval := evaluator.Evaluate(emptyPlan())

	if len(eval.ImprovementSuggestions) > 5 {
		t.Errorf("ImprovementSuggestions = %d entries, want at most 5", len(eval.ImprovementSuggestions))
	}
	seen := map[string]int{}
	for _, s := range eval.ImprovementSuggestions {
		seen[s]++
	}
	if seen[shared] != 1 {
		t.Errorf("shared suggestion appears %d times, want 1", seen[shared])
	}
	if eval.ImprovementSuggestions[0] != shared {
		t.Errorf("first suggestion = %q, want first-seen order preserved", eval.ImprovementSuggestions[0])
	}
}

func TestGradeFor_Bands(t *testing.T) {
	cases := []struct {
		percentage int
		want       string
	}{
		{100, "A"}, {90, "A"}, {89, "B"}, {80, "B"},
		{79, "C"}, {70, "C"}, {69, "D"}, {60, "D"},
		{59, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		if got := GradeFor(tc.percentage); got != tc.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tc.percentage, got, tc.want)
		}
	}
}

func TestGradeFor_Monotonic(t *testing.T) {
	order := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4}
	prev := "F"
	for p := 0; p <= 100; p++ {
		grade := GradeFor(p)
		if order[grade] < order[prev] {
			t.Fatalf("grade decreased from %q to %q at %d%%", prev, grade, p)
		}
		prev = grade
	}
}
