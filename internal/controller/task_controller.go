package controller

import (
	"errors"
	"taskforge_backend/internal/service"
	"taskforge_backend/internal/taskgen"
	"taskforge_backend/internal/util"
	"taskforge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// GenerateTask godoc
// @Summary 生成对比任务
// @Description 为指定项目随机抽取一条语料并生成评估任务
// @Tags 任务
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "项目ID"
// @Success 200 {object} util.Response{data=taskgen.Task} "成功"
// @Failure 404 {object} util.Response "项目不存在"
// @Router /api/projects/{id}/tasks [post]
func (c *TaskController) GenerateTask(ctx *gin.Context) {
	projectID := ctx.Param("id")

	task, err := c.TaskService.GenerateTask(projectID)
	if err != nil {
		if errors.Is(err, taskgen.ErrUnknownProject) {
			util.Error(ctx, 404, "项目不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, task)
}

type SubmitTaskRequest struct {
	Task             taskgen.Task    `json:"task" binding:"required"`
	Answers          taskgen.Answers `json:"answers" binding:"required"`
	TimeSpentSeconds int             `json:"timeSpentSeconds"`
}

// SubmitTask godoc
// @Summary 提交任务答卷
// @Description 校验答卷完整性与质量，通过后入账并记录完成历史
// @Tags 任务
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitTaskRequest true "任务提交"
// @Success 200 {object} util.Response{data=object} "提交通过"
// @Failure 400 {object} util.Response "答卷不完整"
// @Failure 404 {object} util.Response "项目不存在"
// @Failure 422 {object} util.Response "质量未达标"
// @Router /api/tasks/submit [post]
func (c *TaskController) SubmitTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.TaskService.SubmitTask(claims.UserID, &req.Task, req.Answers, req.TimeSpentSeconds)
	if err != nil {
		var incomplete *taskgen.IncompleteError
		var quality *taskgen.QualityError
		switch {
		case errors.Is(err, taskgen.ErrUnknownProject):
			monitoring.SubmissionCounter.WithLabelValues(req.Task.ProjectID, "unknown_project").Inc()
			util.Error(ctx, 404, "项目不存在")
		case errors.As(err, &incomplete):
			monitoring.SubmissionCounter.WithLabelValues(req.Task.ProjectID, "incomplete").Inc()
			util.Error(ctx, 400, err.Error())
		case errors.As(err, &quality):
			monitoring.SubmissionCounter.WithLabelValues(req.Task.ProjectID, "rejected_quality").Inc()
			util.Error(ctx, 422, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.SubmissionCounter.WithLabelValues(req.Task.ProjectID, "accepted").Inc()
	util.Success(ctx, gin.H{
		"taskId":       record.TaskID,
		"amount":       record.Amount,
		"qualityScore": record.QualityScore,
		"completedAt":  record.CompletedAt,
	})
}
