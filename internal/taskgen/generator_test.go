package taskgen

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cases := []PromptCase{
		{
			Category:  "Testing",
			Prompt:    "Which answer is better?",
			ResponseA: "first stored response",
			ResponseB: "second stored response",
		},
	}
	projects := []Project{
		{
			ID:               "PROJ_TEST_001",
			Name:             "Test Evaluation",
			PayPerTask:       0.75,
			QualityThreshold: 95,
		},
	}
	c, err := NewCatalog(cases, projects)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestGenerateUnknownProject(t *testing.T) {
	g := NewGenerator(testCatalog(t), rand.New(rand.NewSource(1)))

	task, err := g.Generate("PROJ_DOES_NOT_EXIST")
	if task != nil {
		t.Fatalf("expected no task, got %+v", task)
	}
	if !errors.Is(err, ErrUnknownProject) {
		t.Fatalf("expected ErrUnknownProject, got %v", err)
	}
}

func TestGenerateTaskShape(t *testing.T) {
	g := NewGenerator(testCatalog(t), rand.New(rand.NewSource(42)))

	task, err := g.Generate("PROJ_TEST_001")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(task.ID, "TASK_PROJ_TEST_001_") {
		t.Errorf("unexpected task id %q", task.ID)
	}
	if task.Category != "Testing" || task.Prompt != "Which answer is better?" {
		t.Errorf("task does not carry the corpus case: %+v", task)
	}

	// 两个回答必须各占一个槽位
	got := map[string]bool{task.ResponseA: true, task.ResponseB: true}
	if !got["first stored response"] || !got["second stored response"] {
		t.Errorf("responses lost in swap: A=%q B=%q", task.ResponseA, task.ResponseB)
	}
}

func TestGenerateRubricFixedOrder(t *testing.T) {
	g := NewGenerator(testCatalog(t), rand.New(rand.NewSource(7)))
	want := []string{"accuracy", "completeness", "clarity", "safety", "legal", "helpfulness", "preferred", "explanation"}

	for i := 0; i < 10; i++ {
		task, err := g.Generate("PROJ_TEST_001")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(task.Criteria) != len(want) {
			t.Fatalf("expected %d criteria, got %d", len(want), len(task.Criteria))
		}
		for j, cr := range task.Criteria {
			if cr.ID != want[j] {
				t.Fatalf("criterion %d = %q, want %q", j, cr.ID, want[j])
			}
			if !cr.Required {
				t.Errorf("criterion %q must be required", cr.ID)
			}
		}
	}
}

func TestGenerateSwapIsUnbiased(t *testing.T) {
	g := NewGenerator(testCatalog(t), rand.New(rand.NewSource(99)))

	const n = 10000
	firstStoredShownAsA := 0
	for i := 0; i < n; i++ {
		task, err := g.Generate("PROJ_TEST_001")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if task.ResponseA == "first stored response" {
			firstStoredShownAsA++
		}
	}

	// 统计性质：应接近50%，给±3%容差
	ratio := float64(firstStoredShownAsA) / n
	if ratio < 0.47 || ratio > 0.53 {
		t.Errorf("first stored response shown as A in %.1f%% of tasks, want ~50%%", ratio*100)
	}
}

func TestGenerateRatingCriteriaScale(t *testing.T) {
	g := NewGenerator(testCatalog(t), rand.New(rand.NewSource(3)))
	task, err := g.Generate("PROJ_TEST_001")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, cr := range task.Criteria {
		if cr.Kind != KindRating {
			continue
		}
		if len(cr.Options) != 10 || cr.Options[0] != "1" || cr.Options[9] != "10" {
			t.Errorf("rating criterion %q has options %v, want 1..10", cr.ID, cr.Options)
		}
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if c.caseCount() == 0 {
		t.Fatal("default corpus is empty")
	}
	projects := c.Projects()
	if len(projects) == 0 {
		t.Fatal("default catalog has no projects")
	}
	for _, p := range projects {
		if p.PayPerTask <= 0 {
			t.Errorf("project %s has non-positive pay %v", p.ID, p.PayPerTask)
		}
		if p.QualityThreshold <= 0 || p.QualityThreshold > 100 {
			t.Errorf("project %s has invalid threshold %d", p.ID, p.QualityThreshold)
		}
	}
}
