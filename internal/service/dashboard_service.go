package service

import (
	"taskforge_backend/internal/model"
	"taskforge_backend/internal/repository"
)

const recentActivityLimit = 10

type DashboardService struct {
	UserRepo     *repository.UserRepository
	ActivityRepo *repository.ActivityRepository
}

func NewDashboardService(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
	}
}

type DashboardStats struct {
	Balance        float64                `json:"balance"`
	TotalEarned    float64                `json:"totalEarned"`
	CompletedTasks int                    `json:"completedTasks"`
	Rank           string                 `json:"rank"`
	RecentActivity []model.ActivityRecord `json:"recentActivity"`
}

// RankFor 按累计完成数划分等级
func RankFor(completedTasks int) string {
	switch {
	case completedTasks >= 50:
		return "Elite"
	case completedTasks >= 20:
		return "Gold"
	default:
		return "Silver"
	}
}

func (s *DashboardService) GetDashboard(userID uint) (*DashboardStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.ActivityRepo.ListRecent(userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []model.ActivityRecord{}
	}

	return &DashboardStats{
		Balance:        user.Balance,
		TotalEarned:    user.TotalEarned,
		CompletedTasks: user.CompletedTasks,
		Rank:           RankFor(user.CompletedTasks),
		RecentActivity: recent,
	}, nil
}

// ListActivity 分页返回完成记录
func (s *DashboardService) ListActivity(userID uint, page, limit int) ([]model.ActivityRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ActivityRepo.ListByUser(userID, page, limit)
}
