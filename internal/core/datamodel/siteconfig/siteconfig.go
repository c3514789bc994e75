package siteconfig

import "time"

// Entry is one display label. The computation core never reads these; they
// exist so the UI can rename people and cards without a redeploy.
type Entry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Value     string    `json:"value" gorm:"not null"`
	Label     string    `json:"label"`
	Category  string    `json:"category"`
	Type      string    `json:"type" gorm:"default:text"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Entry) TableName() string {
	return "site_config"
}
