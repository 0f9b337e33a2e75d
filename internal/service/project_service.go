package service

import (
	"taskforge_backend/internal/taskgen"
)

type ProjectService struct {
	Catalog *taskgen.Catalog
}

func NewProjectService(catalog *taskgen.Catalog) *ProjectService {
	return &ProjectService{Catalog: catalog}
}

// ListProjects 返回目录中的所有项目，顺序与目录注册顺序一致
func (s *ProjectService) ListProjects() []taskgen.Project {
	return s.Catalog.Projects()
}

func (s *ProjectService) GetProject(id string) (taskgen.Project, bool) {
	return s.Catalog.Project(id)
}
