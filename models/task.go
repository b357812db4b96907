package models

import (
	"time"
)

const MaxTitleLength = 200

type Task struct {
	ID        int32     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// EventData is the payload carried by task events.
func (t Task) EventData() map[string]interface{} {
	return map[string]interface{}{
		"task_id":    t.ID,
		"title":      t.Title,
		"completed":  t.Completed,
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}
