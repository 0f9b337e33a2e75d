package service

import (
	"taskforge_backend/internal/model"
	"taskforge_backend/internal/repository"
	"taskforge_backend/internal/taskgen"
	"time"

	"gorm.io/gorm"
)

// TaskService 将纯函数的任务生成/验收核心接到用户档案存储上。
// 核心本身不做任何I/O，入账由这里在事务中完成。
type TaskService struct {
	UserRepo     *repository.UserRepository
	ActivityRepo *repository.ActivityRepository
	Catalog      *taskgen.Catalog
	Generator    *taskgen.Generator
	DB           *gorm.DB
}

func NewTaskService(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository, catalog *taskgen.Catalog, db *gorm.DB) *TaskService {
	return &TaskService{
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
		Catalog:      catalog,
		Generator:    taskgen.NewGenerator(catalog, nil),
		DB:           db,
	}
}

func (s *TaskService) GenerateTask(projectID string) (*taskgen.Task, error) {
	return s.Generator.Generate(projectID)
}

// SubmitTask 校验提交；通过则在一个事务里给余额入账并追加完成记录。
// 客户端回传的评估标准不可信，这里统一替换为服务端的标准集。
func (s *TaskService) SubmitTask(userID uint, task *taskgen.Task, answers taskgen.Answers, timeSpentSeconds int) (*model.ActivityRecord, error) {
	project, ok := s.Catalog.Project(task.ProjectID)
	if !ok {
		return nil, taskgen.ErrUnknownProject
	}

	task.Criteria = taskgen.Rubric()

	outcome, err := taskgen.Validate(task, answers, project, timeSpentSeconds)
	if err != nil {
		return nil, err
	}

	record := &model.ActivityRecord{
		UserID:           userID,
		TaskID:           outcome.TaskID,
		ProjectID:        task.ProjectID,
		Title:            outcome.Title,
		Category:         task.Category,
		Amount:           outcome.Amount,
		QualityScore:     outcome.QualityScore,
		TimeSpentSeconds: outcome.TimeSpentSeconds,
		CompletedAt:      time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.CreditEarnings(tx, userID, outcome.Amount); err != nil {
			return err
		}
		return s.ActivityRepo.Create(tx, record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
