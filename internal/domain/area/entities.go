package area

import "errors"

var (
	ErrNotFound      = errors.New("area not found")
	ErrInvalidName   = errors.New("area name is required and must not exceed 100 characters")
	ErrDuplicateName = errors.New("area name already exists")
	ErrInUse         = errors.New("area still has templates")
)

const MaxNameLength = 100

type Area struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"id"`
	AreaName    string `gorm:"column:area_name;size:100;uniqueIndex:ux_form_areas_name;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

func (Area) TableName() string { return "form_areas" }
