package sqlstore

import (
	"github.com/cagb07/gestor-centros-app/internal/domain/area"
	"github.com/cagb07/gestor-centros-app/internal/domain/submission"
	"github.com/cagb07/gestor-centros-app/internal/domain/template"
	"github.com/cagb07/gestor-centros-app/internal/domain/user"

	"gorm.io/gorm"
)

// Migrate creates the four application tables if they do not exist.
// Referenced tables first so the FK columns resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&area.Area{},
		&user.User{},
		&template.Template{},
		&submission.Submission{},
	)
}
