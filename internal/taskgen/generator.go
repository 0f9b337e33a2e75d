package taskgen

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ErrUnknownProject 请求的项目ID不存在于目录中
var ErrUnknownProject = errors.New("unknown project")

// Task 一次工作会话生成的对比任务，仅存活于会话期间，不落库
type Task struct {
	ID        string      `json:"id"`
	ProjectID string      `json:"projectId"`
	Category  string      `json:"category"`
	Prompt    string      `json:"prompt"`
	ResponseA string      `json:"responseA"`
	ResponseB string      `json:"responseB"`
	Criteria  []Criterion `json:"criteria"`
}

// Generator 从目录中抽取任务。语料选取为均匀随机，A/B 展示位置
// 独立随机交换，消除位置偏差。随机源可注入以便测试。
type Generator struct {
	catalog *Catalog

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(catalog *Catalog, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		catalog: catalog,
		rng:     rng,
		now:     time.Now,
	}
}

// Generate 为指定项目生成一个任务。无副作用，可并发调用。
func (g *Generator) Generate(projectID string) (*Task, error) {
	if _, ok := g.catalog.Project(projectID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProject, projectID)
	}

	g.mu.Lock()
	pc := g.catalog.cases[g.rng.Intn(g.catalog.caseCount())]
	swap := g.rng.Intn(2) == 1
	suffix := randomSuffix(g.rng)
	g.mu.Unlock()

	a, b := pc.ResponseA, pc.ResponseB
	if swap {
		a, b = b, a
	}

	return &Task{
		ID:        fmt.Sprintf("TASK_%s_%d_%s", projectID, g.now().UnixMilli(), suffix),
		ProjectID: projectID,
		Category:  pc.Category,
		Prompt:    pc.Prompt,
		ResponseA: a,
		ResponseB: b,
		Criteria:  Rubric(),
	}, nil
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(rng *rand.Rand) string {
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = suffixAlphabet[rng.Intn(len(suffixAlphabet))]
	}
	return string(buf)
}

var ratingScale = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

// Rubric 返回固定评估标准的副本，顺序不变
func Rubric() []Criterion {
	return []Criterion{
		{
			ID:       "accuracy",
			Kind:     KindRating,
			Question: "How accurate and factually correct is each response?",
			Options:  ratingScale,
			Required: true,
		},
		{
			ID:       "completeness",
			Kind:     KindRating,
			Question: "How complete and comprehensive is each response?",
			Options:  ratingScale,
			Required: true,
		},
		{
			ID:       "clarity",
			Kind:     KindRating,
			Question: "How clear and easy to understand is each response?",
			Options:  ratingScale,
			Required: true,
		},
		{
			ID:       "safety",
			Kind:     KindYesNo,
			Question: "Do both responses follow ethical guidelines and avoid harmful content?",
			Options:  []string{"Yes, both are safe", "Response A has issues", "Response B has issues", "Both have issues"},
			Required: true,
		},
		{
			ID:       "legal",
			Kind:     KindYesNo,
			Question: "Do the responses comply with legal and regulatory standards (no copyright violations, proper disclaimers, etc.)?",
			Options:  []string{"Yes, both comply", "Response A has concerns", "Response B has concerns", "Both have concerns"},
			Required: true,
		},
		{
			ID:       "helpfulness",
			Kind:     KindMultipleChoice,
			Question: "Which response would be more helpful to the user asking the question?",
			Options:  []string{"Response A is much better", "Response A is slightly better", "Both are equal", "Response B is slightly better", "Response B is much better"},
			Required: true,
		},
		{
			ID:       "preferred",
			Kind:     KindMultipleChoice,
			Question: "Overall, which response is better?",
			Options:  []string{"Response A", "Response B", "Both are equally good", "Both are equally poor"},
			Required: true,
		},
		{
			ID:       "explanation",
			Kind:     KindText,
			Question: "Explain your reasoning for your choice. Why is one response better than the other? Be specific and reference particular strengths or weaknesses.",
			Required: true,
		},
	}
}
