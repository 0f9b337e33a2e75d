package controller

import (
	"taskforge_backend/internal/service"
	"taskforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// ListProjects godoc
// @Summary 项目列表
// @Description 返回所有可接单的标注项目
// @Tags 项目
// @Produce  json
// @Success 200 {object} util.Response{data=[]taskgen.Project} "成功"
// @Router /api/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	util.Success(ctx, c.ProjectService.ListProjects())
}

// GetProject godoc
// @Summary 项目详情
// @Description 返回单个项目的计费与质量门槛
// @Tags 项目
// @Produce  json
// @Param   id path string true "项目ID"
// @Success 200 {object} util.Response{data=taskgen.Project} "成功"
// @Failure 404 {object} util.Response "项目不存在"
// @Router /api/projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, ok := c.ProjectService.GetProject(ctx.Param("id"))
	if !ok {
		util.Error(ctx, 404, "项目不存在")
		return
	}
	util.Success(ctx, project)
}
