package taskgen

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func generatedTask(t *testing.T) (*Task, Project) {
	t.Helper()
	c := testCatalog(t)
	g := NewGenerator(c, rand.New(rand.NewSource(5)))
	task, err := g.Generate("PROJ_TEST_001")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	p, _ := c.Project("PROJ_TEST_001")
	return task, p
}

// completeAnswers 为任务的每个评估项填上合法答案，
// explanation 使用给定文本
func completeAnswers(task *Task, explanation string) Answers {
	answers := Answers{}
	for _, cr := range task.Criteria {
		switch cr.Kind {
		case KindRating:
			answers[cr.ID] = Answer{Ratings: map[string]string{"A": "8", "B": "5"}}
		case KindText:
			answers[cr.ID] = Answer{Value: explanation}
		default:
			answers[cr.ID] = Answer{Value: cr.Options[0]}
		}
	}
	return answers
}

const detailedExplanation = "Response A cites concrete examples and walks through each step clearly." // 60+ chars with room to spare

func TestValidateAccepted(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, detailedExplanation)

	outcome, err := Validate(task, answers, project, 137)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if outcome.Amount != 0.75 {
		t.Errorf("amount = %v, want exactly 0.75", outcome.Amount)
	}
	if outcome.TaskID != task.ID || outcome.Title != project.Name {
		t.Errorf("outcome does not reference task/project: %+v", outcome)
	}
	if outcome.TimeSpentSeconds != 137 {
		t.Errorf("time spent = %d, want 137", outcome.TimeSpentSeconds)
	}
	if outcome.QualityScore != 100 {
		t.Errorf("quality score = %d, want 100", outcome.QualityScore)
	}
}

func TestValidateShortExplanationRejected(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, "too short to count") // 20字符以内

	outcome, err := Validate(task, answers, project, 60)
	if outcome != nil {
		t.Fatalf("expected rejection, got %+v", outcome)
	}

	var qe *QualityError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QualityError, got %v", err)
	}
	if qe.Score != 50 || qe.Threshold != 95 {
		t.Errorf("score/threshold = %d/%d, want 50/95", qe.Score, qe.Threshold)
	}
}

func TestValidateExactly50CharsIsDetailed(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, strings.Repeat("x", 50))

	if _, err := Validate(task, answers, project, 10); err != nil {
		t.Fatalf("50-char explanation must score 100: %v", err)
	}

	answers = completeAnswers(task, strings.Repeat("x", 49))
	if _, err := Validate(task, answers, project, 10); err == nil {
		t.Fatal("49-char explanation must be rejected at threshold 95")
	}
}

func TestValidateMissingCriterion(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, detailedExplanation)
	delete(answers, "safety")

	_, err := Validate(task, answers, project, 60)
	var ie *IncompleteError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
	if !reflect.DeepEqual(ie.Missing, []string{"safety"}) {
		t.Errorf("missing = %v, want [safety]", ie.Missing)
	}
}

func TestValidateMissingRatingHalf(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, detailedExplanation)
	answers["accuracy"] = Answer{Ratings: map[string]string{"A": "7"}}

	_, err := Validate(task, answers, project, 60)
	var ie *IncompleteError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
	if !reflect.DeepEqual(ie.Missing, []string{"accuracy.B"}) {
		t.Errorf("missing = %v, want [accuracy.B]", ie.Missing)
	}
}

func TestValidateChoiceOutsideOptions(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, detailedExplanation)
	answers["preferred"] = Answer{Value: "Neither, honestly"}

	_, err := Validate(task, answers, project, 60)
	var ie *IncompleteError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
}

func TestValidateIsPure(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, detailedExplanation)

	first, err1 := Validate(task, answers, project, 42)
	second, err2 := Validate(task, answers, project, 42)
	if err1 != nil || err2 != nil {
		t.Fatalf("Validate: %v / %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation differs: %+v vs %+v", first, second)
	}
}

func TestValidateRepeatedAcceptanceNoDrift(t *testing.T) {
	task, project := generatedTask(t)
	answers := completeAnswers(task, detailedExplanation)

	for i := 0; i < 100; i++ {
		outcome, err := Validate(task, answers, project, 30)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if outcome.Amount != project.PayPerTask {
			t.Fatalf("iteration %d: amount %v != payPerTask %v", i, outcome.Amount, project.PayPerTask)
		}
	}
}

// 对应生产配置的验收场景：60字符通过、20字符拒绝
func TestValidateProductionScenarios(t *testing.T) {
	c := DefaultCatalog()
	g := NewGenerator(c, rand.New(rand.NewSource(11)))
	task, err := g.Generate("PROJ_OPENAI_001")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	project, _ := c.Project("PROJ_OPENAI_001")

	outcome, err := Validate(task, completeAnswers(task, strings.Repeat("y", 60)), project, 90)
	if err != nil {
		t.Fatalf("60-char justification should be accepted: %v", err)
	}
	if outcome.Amount != 0.75 {
		t.Errorf("amount = %v, want 0.75", outcome.Amount)
	}

	_, err = Validate(task, completeAnswers(task, strings.Repeat("y", 20)), project, 90)
	var qe *QualityError
	if !errors.As(err, &qe) {
		t.Fatalf("20-char justification should fail quality gate, got %v", err)
	}
}
