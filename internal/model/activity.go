package model

import "time"

// ActivityRecord 一次通过验收并已付款的任务完成记录，按用户追加写入
// swagger:model ActivityRecord
type ActivityRecord struct {
	BaseModel
	UserID           uint      `gorm:"index;type:bigint unsigned" json:"userId"`
	User             *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TaskID           string    `gorm:"size:128;index" json:"taskId"`
	ProjectID        string    `gorm:"size:64;index" json:"projectId"`
	Title            string    `gorm:"size:200" json:"title"`
	Category         string    `gorm:"size:64" json:"category"`
	Amount           float64   `gorm:"type:decimal(10,2)" json:"amount"`
	QualityScore     int       `json:"qualityScore"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
	CompletedAt      time.Time `json:"completedAt"`
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}
