package template

import (
	"errors"

	"gorm.io/datatypes"
)

var (
	ErrNotFound    = errors.New("template not found")
	ErrInvalidName = errors.New("template name is required and must not exceed 100 characters")
	ErrInUse       = errors.New("template still has submissions")
)

const MaxNameLength = 100

// Template stores its ordered field list as an opaque JSON array in the
// structure column, never normalized into rows.
type Template struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"id"`
	Name            string         `gorm:"column:name;size:100;not null" json:"name"`
	Structure       datatypes.JSON `gorm:"column:structure;not null" json:"structure"`
	CreatedByUserID uint64         `gorm:"column:created_by_user_id;index" json:"created_by_user_id"`
	AreaID          uint64         `gorm:"column:area_id;index" json:"area_id"`
}

func (Template) TableName() string { return "form_templates" }

// Summary is the id/name pair listings return.
type Summary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
