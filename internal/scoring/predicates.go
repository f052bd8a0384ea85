package scoring

import (
	"unicode/utf8"

	"sped_lesson_backend/internal/model"
)

// textLen 글자 수. 원 제품은 브라우저에서 글자 단위로 길이를 쟀으므로
// 바이트 길이가 아니라 룬 수를 센다.
func textLen(s string) int {
	return utf8.RuneCountInString(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// defaultPredicates 항목별 판정 규칙. 카탈로그의 모든 항목이 여기 등록되어야
// 하며, 테스트가 1:1 대응을 검증한다. 모든 술어는 빈 목록/빈 문자열을
// "미작성"으로 처리할 뿐 패닉하지 않는다.
var defaultPredicates = map[ItemID]Predicate{
	ItemBasicTitle: func(p *model.LessonPlan) bool {
		return textLen(p.Title) > 5
	},
	ItemBasicSubject: func(p *model.LessonPlan) bool {
		return textLen(p.Subject) > 0
	},
	ItemBasicGrade: func(p *model.LessonPlan) bool {
		return textLen(p.Grade) > 0
	},
	ItemBasicDuration: func(p *model.LessonPlan) bool {
		return p.Duration > 0
	},

	ItemObjectivesExist: func(p *model.LessonPlan) bool {
		return len(p.LearningObjectives) >= 2
	},
	ItemObjectivesSpecific: func(p *model.LessonPlan) bool {
		return anyContains(p.LearningObjectives, canDoKeywords)
	},
	// 전체 항목 조건(objectives-appropriate 등)은 빈 목록에서 공허하게 참이다.
	ItemObjectivesAppropriate: func(p *model.LessonPlan) bool {
		for _, obj := range p.LearningObjectives {
			if textLen(obj) <= 10 {
				return false
			}
		}
		return true
	},

	ItemStudentsInfo: func(p *model.LessonPlan) bool {
		return len(p.TargetStudents) > 0
	},
	ItemStudentsDisability: func(p *model.LessonPlan) bool {
		return len(p.TargetStudents) > 0 && textLen(p.TargetStudents[0].Disability) > 0
	},
	ItemStudentsLevel: func(p *model.LessonPlan) bool {
		return len(p.TargetStudents) > 0 && textLen(p.TargetStudents[0].CurrentLevel) > 5
	},
	ItemStudentsGoals: func(p *model.LessonPlan) bool {
		return len(p.TargetStudents) > 0 && textLen(p.TargetStudents[0].Goals) > 0
	},

	ItemMethodsAppropriate: func(p *model.LessonPlan) bool {
		return len(p.TeachingMethods) > 0
	},
	ItemMethodsMultiple: func(p *model.LessonPlan) bool {
		return len(p.TeachingMethods) >= 2
	},
	ItemMethodsEvidence: func(p *model.LessonPlan) bool {
		return anyContains(p.TeachingMethods, evidenceBasedKeywords)
	},

	ItemMaterialsList: func(p *model.LessonPlan) bool {
		return len(p.Materials) >= 3
	},
	ItemMaterialsAppropriate: func(p *model.LessonPlan) bool {
		for _, m := range p.Materials {
			if textLen(m) <= 2 {
				return false
			}
		}
		return true
	},
	ItemMaterialsAccessible: func(p *model.LessonPlan) bool {
		return anyContains(p.Materials, accessibleMaterialKeywords)
	},

	ItemActivitiesStructure: func(p *model.LessonPlan) bool {
		return len(p.Activities) >= 3
	},
	ItemActivitiesTime: func(p *model.LessonPlan) bool {
		return abs(p.TotalActivityTime()-p.Duration) <= 5
	},
	ItemActivitiesDetailed: func(p *model.LessonPlan) bool {
		for _, a := range p.Activities {
			if textLen(a.Activity) <= 10 {
				return false
			}
		}
		return true
	},
	ItemActivitiesEngagement: func(p *model.LessonPlan) bool {
		for _, a := range p.Activities {
			if containsAnyKeyword(a.Activity, engagementKeywords) {
				return true
			}
		}
		return false
	},

	ItemAssessmentMethods: func(p *model.LessonPlan) bool {
		return len(p.AssessmentMethods) > 0
	},
	ItemAssessmentCriteria: func(p *model.LessonPlan) bool {
		return anyContains(p.AssessmentMethods, assessmentCriteriaKeywords)
	},
	ItemAssessmentMultiple: func(p *model.LessonPlan) bool {
		return len(p.AssessmentMethods) >= 2
	},

	ItemAccommodationsList: func(p *model.LessonPlan) bool {
		return len(p.Accommodations) > 0
	},
	ItemAccommodationsSpecific: func(p *model.LessonPlan) bool {
		for _, a := range p.Accommodations {
			if textLen(a) <= 5 {
				return false
			}
		}
		return true
	},
	ItemAccommodationsIndividualized: func(p *model.LessonPlan) bool {
		return anyContains(p.Accommodations, individualizationKeywords)
	},

	ItemSafetyConsiderations: func(p *model.LessonPlan) bool {
		if containsAnyKeyword(p.Notes, []string{safetyKeyword}) {
			return true
		}
		return anyContains(p.Accommodations, []string{safetyKeyword})
	},
	ItemGeneralization: func(p *model.LessonPlan) bool {
		if containsAnyKeyword(p.Notes, generalizationKeywords) {
			return true
		}
		for _, a := range p.Activities {
			if containsAnyKeyword(a.Notes, []string{"일반화"}) {
				return true
			}
		}
		return false
	},
	ItemParentInvolvement: func(p *model.LessonPlan) bool {
		if containsAnyKeyword(p.Notes, parentKeywords) {
			return true
		}
		return anyContains(p.Accommodations, parentKeywords)
	},
}
