package scoring

// 점검 카테고리. 카탈로그 정의 순서가 화면 표시 순서다.
const (
	CategoryBasics         = "기본 정보"
	CategoryObjectives     = "학습 목표"
	CategoryStudents       = "대상 학생"
	CategoryMethods        = "교수 방법"
	CategoryMaterials      = "학습 자료"
	CategoryActivities     = "수업 활동"
	CategoryAssessment     = "평가 계획"
	CategoryAccommodations = "지원 방안"
	CategoryExtras         = "추가 고려사항"
)

// mandatoryChecklist 필수 점검 카탈로그. Weight는 항목 중요도 메타데이터로만
// 보존한다(완성도 집계는 균등).
var mandatoryChecklist = []ChecklistItem{
	{ID: ItemBasicTitle, Category: CategoryBasics, Title: "수업 제목", Description: "수업 내용을 알 수 있는 구체적인 제목이 있다", Required: true, Weight: 2},
	{ID: ItemBasicSubject, Category: CategoryBasics, Title: "교과", Description: "교과(과목)가 선택되어 있다", Required: true, Weight: 2},
	{ID: ItemBasicGrade, Category: CategoryBasics, Title: "학년", Description: "대상 학년이 선택되어 있다", Required: true, Weight: 2},
	{ID: ItemBasicDuration, Category: CategoryBasics, Title: "수업 시간", Description: "수업 시간(분)이 입력되어 있다", Required: true, Weight: 2},

	{ID: ItemObjectivesExist, Category: CategoryObjectives, Title: "학습 목표 수", Description: "학습 목표가 2개 이상 작성되어 있다", Required: true, Weight: 5},
	{ID: ItemObjectivesSpecific, Category: CategoryObjectives, Title: "측정 가능한 목표", Description: "'~할 수 있다' 형태의 측정 가능한 목표가 있다", Required: true, Weight: 5},
	{ID: ItemObjectivesAppropriate, Category: CategoryObjectives, Title: "목표 구체성", Description: "모든 학습 목표가 충분히 구체적으로 서술되어 있다", Required: true, Weight: 4},

	{ID: ItemStudentsInfo, Category: CategoryStudents, Title: "대상 학생 정보", Description: "대상 학생이 1명 이상 입력되어 있다", Required: true, Weight: 5},
	{ID: ItemStudentsDisability, Category: CategoryStudents, Title: "장애 유형", Description: "대상 학생의 장애 유형이 기록되어 있다", Required: true, Weight: 4},
	{ID: ItemStudentsLevel, Category: CategoryStudents, Title: "현재 수행 수준", Description: "대상 학생의 현재 수행 수준이 구체적으로 기록되어 있다", Required: true, Weight: 5},
	{ID: ItemStudentsGoals, Category: CategoryStudents, Title: "개별 목표", Description: "대상 학생의 개별 목표가 기록되어 있다", Required: true, Weight: 4},

	{ID: ItemMethodsAppropriate, Category: CategoryMethods, Title: "교수 방법", Description: "교수 방법이 1개 이상 제시되어 있다", Required: true, Weight: 4},
	{ID: ItemMethodsMultiple, Category: CategoryMethods, Title: "다양한 교수 방법", Description: "2개 이상의 교수 방법을 병행한다", Required: false, Weight: 2},
	{ID: ItemMethodsEvidence, Category: CategoryMethods, Title: "증거 기반 방법", Description: "개별화·구체물·다감각 등 증거 기반 접근이 포함되어 있다", Required: true, Weight: 5},

	{ID: ItemMaterialsList, Category: CategoryMaterials, Title: "자료 목록", Description: "학습 자료가 3개 이상 준비되어 있다", Required: true, Weight: 3},
	{ID: ItemMaterialsAppropriate, Category: CategoryMaterials, Title: "자료 구체성", Description: "자료명이 구체적으로 기재되어 있다", Required: true, Weight: 3},
	{ID: ItemMaterialsAccessible, Category: CategoryMaterials, Title: "조작 가능한 교구", Description: "구체물·실물 등 조작 가능한 교구가 포함되어 있다", Required: true, Weight: 4},

	{ID: ItemActivitiesStructure, Category: CategoryActivities, Title: "수업 단계 구성", Description: "도입-전개-정리의 3단계 이상으로 구성되어 있다", Required: true, Weight: 5},
	{ID: ItemActivitiesTime, Category: CategoryActivities, Title: "시간 배분", Description: "활동 시간 합계가 전체 수업 시간과 일치한다(±5분)", Required: true, Weight: 4},
	{ID: ItemActivitiesDetailed, Category: CategoryActivities, Title: "활동 상세", Description: "각 활동 내용이 구체적으로 서술되어 있다", Required: true, Weight: 4},
	{ID: ItemActivitiesEngagement, Category: CategoryActivities, Title: "학생 참여", Description: "학생이 직접 참여·조작하는 활동이 포함되어 있다", Required: true, Weight: 4},

	{ID: ItemAssessmentMethods, Category: CategoryAssessment, Title: "평가 방법", Description: "평가 방법이 1개 이상 제시되어 있다", Required: true, Weight: 4},
	{ID: ItemAssessmentCriteria, Category: CategoryAssessment, Title: "평가 기준", Description: "목표·기준과 연계된 평가 내용이 있다", Required: true, Weight: 4},
	{ID: ItemAssessmentMultiple, Category: CategoryAssessment, Title: "다양한 평가", Description: "2가지 이상의 평가 방법을 사용한다", Required: false, Weight: 2},

	{ID: ItemAccommodationsList, Category: CategoryAccommodations, Title: "지원 방안", Description: "학습 지원 방안이 1개 이상 제시되어 있다", Required: true, Weight: 5},
	{ID: ItemAccommodationsSpecific, Category: CategoryAccommodations, Title: "지원 구체성", Description: "지원 방안이 구체적으로 서술되어 있다", Required: true, Weight: 4},
	{ID: ItemAccommodationsIndividualized, Category: CategoryAccommodations, Title: "개별화 지원", Description: "학생 개인에 맞춘 개별화 지원이 포함되어 있다", Required: true, Weight: 5},

	{ID: ItemSafetyConsiderations, Category: CategoryExtras, Title: "안전 고려", Description: "안전에 대한 고려사항이 기록되어 있다", Required: false, Weight: 2},
	{ID: ItemGeneralization, Category: CategoryExtras, Title: "일반화 계획", Description: "배운 내용의 일반화·적용 계획이 있다", Required: false, Weight: 2},
	{ID: ItemParentInvolvement, Category: CategoryExtras, Title: "가정 연계", Description: "가정·부모와의 연계 방안이 있다", Required: false, Weight: 2},
}

// improvementNotes 미완료 항목에 붙는 보완 안내문
var improvementNotes = map[ItemID]string{
	ItemBasicTitle:    "수업 내용이 드러나도록 제목을 6자 이상으로 구체화해 주세요.",
	ItemBasicSubject:  "교과를 선택해 주세요.",
	ItemBasicGrade:    "대상 학년을 선택해 주세요.",
	ItemBasicDuration: "수업 시간(분)을 입력해 주세요.",

	ItemObjectivesExist:       "학습 목표를 2개 이상 작성해 주세요.",
	ItemObjectivesSpecific:    "'~할 수 있다' 형태로 측정 가능한 목표를 작성해 주세요.",
	ItemObjectivesAppropriate: "각 학습 목표를 10자 이상으로 구체적으로 서술해 주세요.",

	ItemStudentsInfo:       "대상 학생 정보를 입력해 주세요.",
	ItemStudentsDisability: "대상 학생의 장애 유형을 기록해 주세요.",
	ItemStudentsLevel:      "대상 학생의 현재 수행 수준을 구체적으로 기록해 주세요.",
	ItemStudentsGoals:      "대상 학생의 개별 목표를 기록해 주세요.",

	ItemMethodsAppropriate: "교수 방법을 1개 이상 제시해 주세요.",
	ItemMethodsMultiple:    "2개 이상의 교수 방법을 병행하면 효과적입니다.",
	ItemMethodsEvidence:    "개별화, 구체물 활용, 다감각 접근 등 증거 기반 방법을 포함해 주세요.",

	ItemMaterialsList:        "학습 자료를 3개 이상 준비해 주세요.",
	ItemMaterialsAppropriate: "자료명을 구체적으로 기재해 주세요.",
	ItemMaterialsAccessible:  "구체물, 실물 등 조작 가능한 교구를 포함해 주세요.",

	ItemActivitiesStructure:  "도입-전개-정리의 3단계 이상으로 활동을 구성해 주세요.",
	ItemActivitiesTime:       "활동 시간 합계를 전체 수업 시간에 맞춰 주세요(±5분).",
	ItemActivitiesDetailed:   "각 활동 내용을 10자 이상으로 구체적으로 서술해 주세요.",
	ItemActivitiesEngagement: "학생이 직접 참여하거나 조작하는 활동을 포함해 주세요.",

	ItemAssessmentMethods:  "평가 방법을 1개 이상 제시해 주세요.",
	ItemAssessmentCriteria: "학습 목표·기준과 연계된 평가 내용을 작성해 주세요.",
	ItemAssessmentMultiple: "관찰, 수행 등 2가지 이상의 평가 방법을 사용해 보세요.",

	ItemAccommodationsList:           "학습 지원 방안을 1개 이상 제시해 주세요.",
	ItemAccommodationsSpecific:       "지원 방안을 5자 이상으로 구체적으로 서술해 주세요.",
	ItemAccommodationsIndividualized: "학생 개인에 맞춘 개별화 지원을 포함해 주세요.",

	ItemSafetyConsiderations: "안전에 대한 고려사항을 기록해 보세요.",
	ItemGeneralization:       "배운 내용을 일상에 일반화·적용하는 계획을 세워 보세요.",
	ItemParentInvolvement:    "가정·부모와 연계하는 방안을 추가해 보세요.",
}

const genericImprovementNote = "이 항목을 다시 확인해 주세요."

// DefaultChecklist 기본 점검 카탈로그의 복사본을 돌려준다
func DefaultChecklist() []ChecklistItem {
	items := make([]ChecklistItem, len(mandatoryChecklist))
	copy(items, mandatoryChecklist)
	return items
}

// ChecklistByCategory 카탈로그를 카테고리별로 묶는다. 카탈로그 정의 순서를 유지한다.
func ChecklistByCategory() []CategoryGroup {
	return groupByCategory(mandatoryChecklist)
}

func groupByCategory(items []ChecklistItem) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
