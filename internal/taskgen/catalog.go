package taskgen

import (
	"errors"
	"fmt"
)

// CriterionKind 评估项类型
type CriterionKind string

const (
	KindRating         CriterionKind = "rating"
	KindYesNo          CriterionKind = "yes-no"
	KindMultipleChoice CriterionKind = "multiple-choice"
	KindText           CriterionKind = "text"
)

// Criterion 单个评估项。Rating 类型对两个回答分别打分（按 "A"/"B" 记录）。
type Criterion struct {
	ID       string        `json:"id"`
	Kind     CriterionKind `json:"kind"`
	Question string        `json:"question"`
	Options  []string      `json:"options,omitempty"`
	Required bool          `json:"required"`
}

// PromptCase 语料库中的一条对比用例，固定两个候选回答
type PromptCase struct {
	Category  string `json:"category"`
	Prompt    string `json:"prompt"`
	ResponseA string `json:"responseA"`
	ResponseB string `json:"responseB"`
}

// Project 项目配置，项目生命周期内不可变
type Project struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Client                  string   `json:"client"`
	Category                string   `json:"category"`
	Description             string   `json:"description"`
	LongDescription         string   `json:"longDescription"`
	PayPerTask              float64  `json:"payPerTask"`
	EstimatedTasksAvailable int      `json:"estimatedTasksAvailable"`
	EstimatedTimePerTask    string   `json:"estimatedTimePerTask"`
	Difficulty              string   `json:"difficulty"`
	Requirements            []string `json:"requirements"`
	QualityThreshold        int      `json:"qualityThreshold"`
	TrainingRequired        bool     `json:"trainingRequired"`
}

// Catalog 只读的语料与项目集合，构造后注入 Generator
type Catalog struct {
	cases    []PromptCase
	projects map[string]Project
	ordered  []string
}

func NewCatalog(cases []PromptCase, projects []Project) (*Catalog, error) {
	if len(cases) == 0 {
		return nil, errors.New("catalog requires at least one prompt case")
	}

	byID := make(map[string]Project, len(projects))
	ordered := make([]string, 0, len(projects))
	for _, p := range projects {
		if p.ID == "" {
			return nil, errors.New("project id must not be empty")
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate project id: %s", p.ID)
		}
		byID[p.ID] = p
		ordered = append(ordered, p.ID)
	}

	return &Catalog{
		cases:    cases,
		projects: byID,
		ordered:  ordered,
	}, nil
}

// Project 按ID查找项目配置
func (c *Catalog) Project(id string) (Project, bool) {
	p, ok := c.projects[id]
	return p, ok
}

// Projects 按注册顺序返回所有项目
func (c *Catalog) Projects() []Project {
	out := make([]Project, 0, len(c.ordered))
	for _, id := range c.ordered {
		out = append(out, c.projects[id])
	}
	return out
}

func (c *Catalog) caseCount() int {
	return len(c.cases)
}
