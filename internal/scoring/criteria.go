package scoring

// evaluationCriteria 가중 평가 기준 카탈로그. Weight 합은 100, MaxScore는 모두 5.
var evaluationCriteria = []EvaluationCriterion{
	{ID: CriterionLearningObjectives, Category: CategoryObjectives, Title: "학습 목표의 적절성", Description: "측정 가능하고 구체적인 학습 목표가 충분히 제시되었는가", Weight: 20, MaxScore: 5},
	{ID: CriterionStudentAnalysis, Category: CategoryStudents, Title: "대상 학생 분석", Description: "학생의 장애 특성과 현재 수준, 개별 목표가 충실히 분석되었는가", Weight: 15, MaxScore: 5},
	{ID: CriterionTeachingMethods, Category: CategoryMethods, Title: "교수 방법의 적절성", Description: "특수교육적 교수 방법이 다양하고 구체적으로 계획되었는가", Weight: 15, MaxScore: 5},
	{ID: CriterionMaterials, Category: CategoryMaterials, Title: "학습 자료의 충실성", Description: "학습 자료가 충분하고 구체적으로 준비되었는가", Weight: 10, MaxScore: 5},
	{ID: CriterionActivities, Category: CategoryActivities, Title: "수업 활동 구성", Description: "수업 단계가 체계적이고 시간 배분이 적절한가", Weight: 20, MaxScore: 5},
	{ID: CriterionAssessment, Category: CategoryAssessment, Title: "평가 계획", Description: "다양한 방법으로 학습 목표 도달을 확인하는가", Weight: 10, MaxScore: 5},
	{ID: CriterionAccommodations, Category: CategoryAccommodations, Title: "학습 지원 방안", Description: "학생에게 필요한 지원이 구체적으로 계획되었는가", Weight: 10, MaxScore: 5},
}

// criterionFeedback 기준별·점수별 피드백. 인덱스는 score-1.
var criterionFeedback = map[CriterionID][5]string{
	CriterionLearningObjectives: {
		"학습 목표가 거의 제시되지 않았습니다. 목표부터 작성해 주세요.",
		"학습 목표가 부족합니다. 측정 가능한 형태로 2개 이상 작성해 주세요.",
		"학습 목표가 기본 요건은 갖추었으나 구체성이 부족합니다.",
		"학습 목표가 측정 가능하고 구체적으로 잘 제시되었습니다.",
		"학습 목표가 수와 질 모두에서 매우 우수합니다.",
	},
	CriterionStudentAnalysis: {
		"대상 학생 정보가 없습니다. 학생 분석부터 시작해 주세요.",
		"대상 학생 분석이 미흡합니다. 장애 유형과 현재 수준을 보완해 주세요.",
		"대상 학생 분석이 기본 수준입니다. 개별 목표와 지원 요구를 보완해 주세요.",
		"대상 학생의 특성과 수준이 충실히 분석되었습니다.",
		"대상 학생 분석이 매우 상세하고 개별화되어 있습니다.",
	},
	CriterionTeachingMethods: {
		"교수 방법이 제시되지 않았습니다.",
		"교수 방법이 단조롭습니다. 특수교육적 접근을 추가해 주세요.",
		"교수 방법이 기본 수준입니다. 다감각·구체물 활용 등을 고려해 보세요.",
		"특수교육적 교수 방법이 적절하게 계획되었습니다.",
		"교수 방법이 다양하고 학생 특성에 맞게 매우 잘 계획되었습니다.",
	},
	CriterionMaterials: {
		"학습 자료가 준비되지 않았습니다.",
		"학습 자료가 부족합니다. 3개 이상 준비해 주세요.",
		"학습 자료가 기본 수준입니다. 자료명을 구체화해 보세요.",
		"학습 자료가 충분하고 구체적으로 준비되었습니다.",
		"학습 자료가 풍부하고 수업 내용과 잘 연계되어 있습니다.",
	},
	CriterionActivities: {
		"수업 활동이 구성되지 않았습니다.",
		"수업 활동 구성이 미흡합니다. 도입-전개-정리 단계를 갖춰 주세요.",
		"수업 단계는 갖추었으나 시간 배분이나 활동 상세가 부족합니다.",
		"수업 활동이 체계적으로 구성되고 시간 배분이 적절합니다.",
		"수업 활동이 단계·시간·내용 모두에서 매우 충실합니다.",
	},
	CriterionAssessment: {
		"평가 계획이 없습니다.",
		"평가 방법이 부족합니다. 2가지 이상 계획해 주세요.",
		"평가 계획이 기본 수준입니다. 평가 유형을 다양화해 보세요.",
		"평가 계획이 적절하게 수립되었습니다.",
		"다양한 평가 방법으로 목표 도달을 충실히 확인합니다.",
	},
	CriterionAccommodations: {
		"학습 지원 방안이 없습니다.",
		"지원 방안이 부족합니다. 학생에게 필요한 지원을 추가해 주세요.",
		"지원 방안이 기본 수준입니다. 구체적인 지원 내용을 보완해 주세요.",
		"학습 지원 방안이 구체적으로 계획되었습니다.",
		"개별 학생에게 꼭 맞는 지원이 매우 상세하게 계획되었습니다.",
	},
}

const genericFeedback = "평가 결과를 확인해 주세요."

// criterionSuggestions 점수 3 이하일 때 제공되는 개선 제안(기준당 3개)
var criterionSuggestions = map[CriterionID][]string{
	CriterionLearningObjectives: {
		"'~할 수 있다' 형태의 측정 가능한 목표를 작성하세요.",
		"학습 목표를 3개 이상으로 늘려 보세요.",
		"각 목표를 행동·조건·기준이 드러나게 구체화하세요.",
	},
	CriterionStudentAnalysis: {
		"대상 학생의 장애 유형을 기록하세요.",
		"현재 수행 수준을 관찰 가능한 행동으로 서술하세요.",
		"개별 목표와 필요한 지원을 함께 기록하세요.",
	},
	CriterionTeachingMethods: {
		"개별화 교수, 구체물 활용 등 증거 기반 방법을 포함하세요.",
		"교수 방법을 3개 이상 계획해 보세요.",
		"각 방법을 어떤 장면에서 쓸지 구체적으로 서술하세요.",
	},
	CriterionMaterials: {
		"학습 자료를 3개 이상 준비하세요.",
		"조작 가능한 구체물·실물 교구를 포함하세요.",
		"자료명을 수업 장면과 연결해 구체적으로 쓰세요.",
	},
	CriterionActivities: {
		"도입-전개-정리 단계를 모두 구성하세요.",
		"활동 시간 합계를 수업 시간에 맞추세요.",
		"각 활동의 내용과 사용 자료를 구체적으로 쓰세요.",
	},
	CriterionAssessment: {
		"평가 방법을 2가지 이상 계획하세요.",
		"관찰·수행·포트폴리오 등 평가 유형을 다양화하세요.",
		"평가 내용을 학습 목표와 연계하세요.",
	},
	CriterionAccommodations: {
		"지원 방안을 2개 이상 계획하세요.",
		"지원 내용을 10자 이상으로 구체화하세요.",
		"학생 개인의 요구에 맞춘 개별화 지원을 포함하세요.",
	},
}

// overallFeedbackFor 등급 구간과 같은 90/80/70/60 경계로 총평을 고른다
func overallFeedbackFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "매우 우수한 수업지도안입니다. 현재 수준을 유지하세요."
	case percentage >= 80:
		return "전반적으로 잘 작성된 지도안입니다. 일부 항목만 보완하면 됩니다."
	case percentage >= 70:
		return "기본 요건은 갖추었습니다. 개선 제안을 참고해 보완해 주세요."
	case percentage >= 60:
		return "보완이 필요한 지도안입니다. 낮은 점수의 기준부터 수정해 주세요."
	default:
		return "지도안을 전반적으로 다시 작성해 주세요. 필수 요소부터 채워 나가세요."
	}
}

const maintainSuggestion = "현재 수준을 잘 유지하세요."

// DefaultCriteria 기본 평가 기준 카탈로그의 복사본을 돌려준다
func DefaultCriteria() []EvaluationCriterion {
	criteria := make([]EvaluationCriterion, len(evaluationCriteria))
	copy(criteria, evaluationCriteria)
	return criteria
}
