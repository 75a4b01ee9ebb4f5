package submission

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var ErrNotFound = errors.New("submission not found")

// Submission's data payload is write-once; only the review triple is
// mutable after creation.
type Submission struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"id"`
	TemplateID uint64         `gorm:"column:template_id;index" json:"template_id"`
	UserID     uint64         `gorm:"column:user_id;index" json:"user_id"`
	Data       datatypes.JSON `gorm:"column:data;not null" json:"data"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Reviewed   bool           `gorm:"column:reviewed;default:false" json:"reviewed"`
	ReviewedBy *uint64        `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time     `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
}

func (Submission) TableName() string { return "form_submissions" }

// OwnItem is one row of an operator's own submission list.
type OwnItem struct {
	ID           uint64         `json:"id"`
	TemplateName string         `json:"template_name"`
	CreatedAt    time.Time      `json:"created_at"`
	Data         datatypes.JSON `json:"data"`
}

// Detail is one row of the admin listing, denormalized across
// author/template/area/reviewer.
type Detail struct {
	ID             uint64         `json:"id"`
	UserName       string         `json:"user_name"`
	TemplateName   string         `json:"template_name"`
	AreaName       string         `json:"area_name"`
	Data           datatypes.JSON `json:"data"`
	CreatedAt      time.Time      `json:"created_at"`
	Reviewed       bool           `json:"reviewed"`
	ReviewedAt     *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedByName *string        `json:"reviewed_by_name,omitempty"`
}

type AreaCount struct {
	AreaName string `json:"area_name"`
	Count    int64  `json:"submission_count"`
}

type UserCount struct {
	UserName string `json:"user_name"`
	Count    int64  `json:"submission_count"`
}
