package taskgen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// 自由文本达到该字符数视为"详尽"，质量分 100，否则 50
const (
	detailedTextMinLength = 50
	detailedTextScore     = 100
	briefTextScore        = 50
)

// Answer 对单个评估项的回答。Rating 类型填 Ratings（按回答标签 "A"/"B"），
// 其余类型填 Value。
type Answer struct {
	Value   string            `json:"value,omitempty"`
	Ratings map[string]string `json:"ratings,omitempty"`
}

// Answers 按评估项ID索引的提交内容
type Answers map[string]Answer

// IncompleteError 提交缺少必填评估项
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return "incomplete submission: missing " + strings.Join(e.Missing, ", ")
}

// QualityError 质量分未达到项目阈值
type QualityError struct {
	Score     int
	Threshold int
}

func (e *QualityError) Error() string {
	return fmt.Sprintf("quality score %d below threshold %d: explanation must be at least %d characters", e.Score, e.Threshold, detailedTextMinLength)
}

// Outcome 通过校验后的结算结果，由调用方负责原子地入账
type Outcome struct {
	TaskID           string  `json:"taskId"`
	Title            string  `json:"title"`
	Amount           float64 `json:"amount"`
	QualityScore     int     `json:"qualityScore"`
	TimeSpentSeconds int     `json:"timeSpentSeconds"`
}

// Validate 校验提交并计算结算结果。纯函数：相同输入必得相同输出，
// 不做任何I/O，重试策略由调用方决定。
func Validate(task *Task, answers Answers, project Project, timeSpentSeconds int) (*Outcome, error) {
	var missing []string
	for _, cr := range task.Criteria {
		ans, ok := answers[cr.ID]
		if !ok {
			missing = append(missing, cr.ID)
			continue
		}

		switch cr.Kind {
		case KindRating:
			// 两个回答都要打分
			for _, label := range []string{"A", "B"} {
				if ans.Ratings[label] == "" {
					missing = append(missing, cr.ID+"."+label)
				}
			}
		case KindText:
			if ans.Value == "" {
				missing = append(missing, cr.ID)
			}
		default:
			// 选项类答案必须是给定选项之一，客户端不可信
			if ans.Value == "" || !containsOption(cr.Options, ans.Value) {
				missing = append(missing, cr.ID)
			}
		}
	}
	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}

	score := qualityScore(task, answers)
	if score < project.QualityThreshold {
		return nil, &QualityError{Score: score, Threshold: project.QualityThreshold}
	}

	return &Outcome{
		TaskID:           task.ID,
		Title:            project.Name,
		Amount:           project.PayPerTask,
		QualityScore:     score,
		TimeSpentSeconds: timeSpentSeconds,
	}, nil
}

// qualityScore 按自由文本长度打分。粗粒度的二档评分，
// 与历史行为保持一致：50字符以上算详尽。
func qualityScore(task *Task, answers Answers) int {
	score := briefTextScore
	for _, cr := range task.Criteria {
		if cr.Kind != KindText {
			continue
		}
		if utf8.RuneCountInString(answers[cr.ID].Value) >= detailedTextMinLength {
			score = detailedTextScore
		}
	}
	return score
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
