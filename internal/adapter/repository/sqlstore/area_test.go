package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	areaDomain "github.com/cagb07/gestor-centros-app/internal/domain/area"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return gdb, mock
}

func TestAreaRepository_GetByID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAreaRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "area_name", "description"}).
		AddRow(1, "Infraestructura", "Estado físico")
	mock.ExpectQuery("SELECT \\* FROM `form_areas`").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AreaName != "Infraestructura" {
		t.Fatalf("unexpected area: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAreaRepository_GetByID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAreaRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `form_areas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "area_name", "description"}))

	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, areaDomain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAreaRepository_Delete_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAreaRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `form_areas`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 99); !errors.Is(err, areaDomain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAreaRepository_Count(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAreaRepository(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `form_areas`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}
