package scoring

import "testing"

// 카탈로그와 레지스트리의 1:1 대응을 검증한다. 항목 추가 시 술어나 안내문을
// 빠뜨리면 여기서 잡힌다.
func TestChecklistCatalog_RegistryComplete(t *testing.T) {
	for _, item := range mandatoryChecklist {
		if _, ok := defaultPredicates[item.ID]; !ok {
			t.Errorf("item %s has no predicate", item.ID)
		}
		if _, ok := improvementNotes[item.ID]; !ok {
			t.Errorf("item %s has no improvement note", item.ID)
		}
	}
	for id := range defaultPredicates {
		found := false
		for _, item := range mandatoryChecklist {
			if item.ID == id {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("predicate %s has no catalog item", id)
		}
	}
}

func TestChecklistCatalog_Counts(t *testing.T) {
	if len(mandatoryChecklist) != 30 {
		t.Errorf("catalog size = %d, want 30", len(mandatoryChecklist))
	}

	required := 0
	optional := map[ItemID]bool{}
	for _, item := range mandatoryChecklist {
		if item.Required {
			required++
		} else {
			optional[item.ID] = true
		}
	}
	if required != 25 {
		t.Errorf("required items = %d, want 25", required)
	}

	wantOptional := []ItemID{
		ItemMethodsMultiple,
		ItemAssessmentMultiple,
		ItemSafetyConsiderations,
		ItemGeneralization,
		ItemParentInvolvement,
	}
	if len(optional) != len(wantOptional) {
		t.Errorf("optional items = %d, want %d", len(optional), len(wantOptional))
	}
	for _, id := range wantOptional {
		if !optional[id] {
			t.Errorf("item %s should be optional", id)
		}
	}
}

func TestChecklistCatalog_UniqueIDs(t *testing.T) {
	seen := map[ItemID]bool{}
	for _, item := range mandatoryChecklist {
		if seen[item.ID] {
			t.Errorf("duplicate item id %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestChecklistByCategory_PreservesOrder(t *testing.T) {
	groups := ChecklistByCategory()

	wantOrder := []string{
		CategoryBasics, CategoryObjectives, CategoryStudents,
		CategoryMethods, CategoryMaterials, CategoryActivities,
		CategoryAssessment, CategoryAccommodations, CategoryExtras,
	}
	if len(groups) != len(wantOrder) {
		t.Fatalf("groups = %d, want %d", len(groups), len(wantOrder))
	}
	total := 0
	for i, g := range groups {
		if g.Category != wantOrder[i] {
			t.Errorf("group[%d] = %q, want %q", i, g.Category, wantOrder[i])
		}
		total += len(g.Items)
	}
	if total != len(mandatoryChecklist) {
		t.Errorf("grouped items = %d, want %d", total, len(mandatoryChecklist))
	}
}

func TestEvaluationCatalog_RegistryComplete(t *testing.T) {
	for _, criterion := range evaluationCriteria {
		if _, ok := defaultScorers[criterion.ID]; !ok {
			t.Errorf("criterion %s has no scorer", criterion.ID)
		}
		if _, ok := criterionFeedback[criterion.ID]; !ok {
			t.Errorf("criterion %s has no feedback table", criterion.ID)
		}
		if sugg, ok := criterionSuggestions[criterion.ID]; !ok || len(sugg) != 3 {
			t.Errorf("criterion %s suggestions = %d entries, want 3", criterion.ID, len(sugg))
		}
	}
}

func TestEvaluationCatalog_WeightsAndMaxScore(t *testing.T) {
	if len(evaluationCriteria) != 7 {
		t.Errorf("criteria = %d, want 7", len(evaluationCriteria))
	}

	totalWeight := 0
	for _, criterion := range evaluationCriteria {
		totalWeight += criterion.Weight
		if criterion.MaxScore != 5 {
			t.Errorf("criterion %s MaxScore = %d, want 5", criterion.ID, criterion.MaxScore)
		}
	}
	if totalWeight != 100 {
		t.Errorf("total weight = %d, want 100", totalWeight)
	}
}

func TestDefaultCatalogs_ReturnCopies(t *testing.T) {
	items := DefaultChecklist()
	items[0].Title = "변경됨"
	if mandatoryChecklist[0].Title == "변경됨" {
		t.Error("DefaultChecklist returned the backing array")
	}

	criteria := DefaultCriteria()
	criteria[0].Weight = 0
	if evaluationCriteria[0].Weight == 0 {
		t.Error("DefaultCriteria returned the backing array")
	}
}
