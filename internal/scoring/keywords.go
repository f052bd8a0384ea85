package scoring

import "strings"

// 술어에 쓰이는 키워드 집합. 휴리스틱 문자열 매칭은 원 제품의 설계이며,
// 교체/검증이 가능하도록 이름 있는 상수로 분리해 둔다.
var (
	// 측정 가능한 목표 진술("~할 수 있다")
	canDoKeywords = []string{"할 수 있다", "수 있다"}

	// 평가 엔진이 쓰는 확장 집합
	canDoKeywordsExtended = []string{"할 수 있다", "수 있다", "할 수 있도록"}

	// 증거 기반 교수 방법
	evidenceBasedKeywords = []string{"개별화", "구체물", "다감각", "단계적", "체계적", "반복"}

	// 특수교육 교수 방법(평가 엔진, 확장 집합)
	specialEdMethodKeywords = []string{"개별화", "구체물", "다감각", "단계적", "체계적", "반복", "시각적"}

	// 조작 가능한 구체적 교구
	accessibleMaterialKeywords = []string{"구체물", "조작", "실물", "교구"}

	// 학생 참여 활동
	engagementKeywords = []string{"참여", "활동", "조작", "발표"}

	// 평가 기준 명시
	assessmentCriteriaKeywords = []string{"목표", "기준", "평가"}

	// 평가 방법 유형(관찰/수행/포트폴리오/체크리스트/자기평가)
	assessmentTypeKeywords = []string{"관찰", "수행", "포트폴리오", "체크리스트", "자기평가"}

	// 개별화 지원
	individualizationKeywords = []string{"개별", "개인", "맞춤"}

	safetyKeyword = "안전"

	generalizationKeywords = []string{"일반화", "적용"}

	parentKeywords = []string{"가정", "부모"}
)

func containsAnyKeyword(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func anyContains(values []string, keywords []string) bool {
	for _, v := range values {
		if containsAnyKeyword(v, keywords) {
			return true
		}
	}
	return false
}

// countMatchedKeywords 각 키워드가 목록의 어느 한 항목에라도 나타나면 1로 센다
func countMatchedKeywords(values []string, keywords []string) int {
	matched := 0
	for _, k := range keywords {
		for _, v := range values {
			if strings.Contains(v, k) {
				matched++
				break
			}
		}
	}
	return matched
}
