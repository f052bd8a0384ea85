package scoring

import (
	"math"
	"time"

	"sped_lesson_backend/internal/model"
)

// Evaluator 가중 평가 엔진
type Evaluator struct {
	criteria    []EvaluationCriterion
	scorers     map[CriterionID]ScoreFunc
	feedback    map[CriterionID][5]string
	suggestions map[CriterionID][]string
	now         func() time.Time
}

// NewEvaluator 기본 기준 카탈로그로 평가 엔진을 만든다
func NewEvaluator() *Evaluator {
	return NewEvaluatorWithCatalog(evaluationCriteria, defaultScorers, criterionFeedback, criterionSuggestions)
}

// NewEvaluatorWithCatalog 대체 카탈로그를 주입한다. 테스트용.
func NewEvaluatorWithCatalog(
	criteria []EvaluationCriterion,
	scorers map[CriterionID]ScoreFunc,
	feedback map[CriterionID][5]string,
	suggestions map[CriterionID][]string,
) *Evaluator {
	return &Evaluator{
		criteria:    criteria,
		scorers:     scorers,
		feedback:    feedback,
		suggestions: suggestions,
		now:         time.Now,
	}
}

// Criteria 기준 카탈로그 복사본
func (e *Evaluator) Criteria() []EvaluationCriterion {
	criteria := make([]EvaluationCriterion, len(e.criteria))
	copy(criteria, e.criteria)
	return criteria
}

// Evaluate 지도안을 7개 기준으로 평가한다. 순수 함수이며 plan을 수정하지 않는다.
func (e *Evaluator) Evaluate(plan *model.LessonPlan) *LessonPlanEvaluation {
	results := make([]EvaluationResult, 0, len(e.criteria))

	overall := 0
	maxPossible := 0

	for _, criterion := range e.criteria {
		score := 1
		if scorer, ok := e.scorers[criterion.ID]; ok {
			score = clampScore(scorer(plan))
		}

		result := EvaluationResult{
			CriteriaID:  criterion.ID,
			Score:       score,
			Feedback:    e.feedbackFor(criterion.ID, score),
			Suggestions: []string{},
		}
		if score < 4 {
			if sugg, ok := e.suggestions[criterion.ID]; ok {
				result.Suggestions = append(result.Suggestions, sugg...)
			}
		}
		results = append(results, result)

		overall += score * criterion.Weight
		maxPossible += criterion.MaxScore * criterion.Weight
	}

	percentage := 0
	if maxPossible > 0 {
		percentage = int(math.Round(float64(overall) / float64(maxPossible) * 100))
	}

	return &LessonPlanEvaluation{
		LessonPlanID:           plan.ID,
		OverallScore:           overall,
		MaxPossibleScore:       maxPossible,
		Percentage:             percentage,
		Grade:                  GradeFor(percentage),
		Results:                results,
		OverallFeedback:        overallFeedbackFor(percentage),
		ImprovementSuggestions: collectSuggestions(results),
		EvaluatedAt:            e.now(),
	}
}

func (e *Evaluator) feedbackFor(id CriterionID, score int) string {
	table, ok := e.feedback[id]
	if !ok || score < 1 || score > 5 {
		return genericFeedback
	}
	return table[score-1]
}

// collectSuggestions 점수 3 이하 기준의 제안을 모아 중복 제거(첫 등장 순서 유지)
// 후 5개로 자른다. 비었으면 유지 안내 한 건을 돌려준다.
func collectSuggestions(results []EvaluationResult) []string {
	seen := make(map[string]bool)
	collected := []string{}
	for _, r := range results {
		if r.Score > 3 {
			continue
		}
		for _, s := range r.Suggestions {
			if seen[s] {
				continue
			}
			seen[s] = true
			collected = append(collected, s)
			if len(collected) == 5 {
				return collected
			}
		}
	}
	if len(collected) == 0 {
		return []string{maintainSuggestion}
	}
	return collected
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}

// defaultScorers 기준별 채점 규칙. 모두 기본 1점에서 조건 충족 시 가점하고
// 5점으로 상한을 둔다. 대상 학생은 첫 번째 학생만 본다.
var defaultScorers = map[CriterionID]ScoreFunc{
	CriterionLearningObjectives: scoreLearningObjectives,
	CriterionStudentAnalysis:    scoreStudentAnalysis,
	CriterionTeachingMethods:    scoreTeachingMethods,
	CriterionMaterials:          scoreMaterials,
	CriterionActivities:         scoreActivities,
	CriterionAssessment:         scoreAssessment,
	CriterionAccommodations:     scoreAccommodations,
}

func scoreLearningObjectives(p *model.LessonPlan) int {
	score := 1

	if len(p.LearningObjectives) >= 2 {
		score++
	}

	hasCanDo := anyContains(p.LearningObjectives, canDoKeywordsExtended)
	if hasCanDo {
		score++
	}

	hasDetailed := false
	for _, obj := range p.LearningObjectives {
		if textLen(obj) > 15 {
			hasDetailed = true
			break
		}
	}
	if hasDetailed {
		score++
	}

	if len(p.LearningObjectives) >= 3 && hasCanDo && hasDetailed {
		score++
	}

	return score
}

func scoreStudentAnalysis(p *model.LessonPlan) int {
	score := 1

	if len(p.TargetStudents) == 0 {
		return score
	}
	score++

	first := p.TargetStudents[0]
	if textLen(first.Disability) > 0 {
		score++
	}
	if textLen(first.CurrentLevel) > 5 {
		score++
	}
	if textLen(first.Goals) > 0 && textLen(first.Accommodations) > 0 {
		score++
	}

	return score
}

func scoreTeachingMethods(p *model.LessonPlan) int {
	score := 1

	if len(p.TeachingMethods) >= 2 {
		score++
	}
	if len(p.TeachingMethods) >= 3 {
		score++
	}

	if anyContains(p.TeachingMethods, specialEdMethodKeywords) {
		score++
	}

	for _, m := range p.TeachingMethods {
		if textLen(m) > 8 {
			score++
			break
		}
	}

	return score
}

func scoreMaterials(p *model.LessonPlan) int {
	score := 1

	if len(p.Materials) >= 3 {
		score++
	}
	if len(p.Materials) >= 5 {
		score++
	}

	for _, m := range p.Materials {
		if textLen(m) > 5 {
			score += 2
			break
		}
	}

	return score
}

func scoreActivities(p *model.LessonPlan) int {
	score := 1

	if len(p.Activities) >= 3 {
		score++
	}
	if len(p.Activities) >= 4 {
		score++
	}

	if abs(p.TotalActivityTime()-p.Duration) <= 5 {
		score++
	}

	allDetailed := true
	for _, a := range p.Activities {
		if textLen(a.Activity) <= 10 || textLen(a.Materials) == 0 {
			allDetailed = false
			break
		}
	}
	if allDetailed {
		score++
	}

	return score
}

func scoreAssessment(p *model.LessonPlan) int {
	score := 1

	if len(p.AssessmentMethods) >= 2 {
		score++
	}
	// 3개 이상이면 단계 누적이 아니라 한 번에 +2
	if len(p.AssessmentMethods) >= 3 {
		score += 2
	}

	if countMatchedKeywords(p.AssessmentMethods, assessmentTypeKeywords) >= 2 {
		score++
	}

	return score
}

func scoreAccommodations(p *model.LessonPlan) int {
	score := 1

	if len(p.Accommodations) >= 2 {
		score++
	}
	if len(p.Accommodations) >= 4 {
		score++
	}

	for _, a := range p.Accommodations {
		if textLen(a) > 10 {
			score += 2
			break
		}
	}

	return score
}
