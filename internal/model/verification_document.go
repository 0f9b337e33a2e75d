package model

// DocumentStatus 证件审核状态
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// VerificationDocument 用户上传的身份证明文件，文件本体存于对象存储
// swagger:model VerificationDocument
type VerificationDocument struct {
	BaseModel
	UserID      uint           `gorm:"index;type:bigint unsigned" json:"userId"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ObjectKey   string         `gorm:"size:255" json:"objectKey"`
	ContentType string         `gorm:"size:100" json:"contentType"`
	Status      DocumentStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (VerificationDocument) TableName() string {
	return "verification_documents"
}
