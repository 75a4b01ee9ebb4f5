package area

import (
	"context"
	"errors"
	"strings"
	"testing"

	areadomain "github.com/cagb07/gestor-centros-app/internal/domain/area"
	"github.com/cagb07/gestor-centros-app/internal/domain/uow"
	"github.com/cagb07/gestor-centros-app/internal/testutil/areamock"
	"github.com/cagb07/gestor-centros-app/internal/testutil/templatemock"
	"github.com/cagb07/gestor-centros-app/internal/testutil/uowmock"
)

func newUsecase(areas *areamock.Repo, templates *templatemock.Repo) *Usecase {
	if areas == nil {
		areas = &areamock.Repo{}
	}
	if templates == nil {
		templates = &templatemock.Repo{}
	}
	u := uowmock.New(uow.Repos{Areas: areas, Templates: templates})
	return NewUsecase(u, areas)
}

func TestCreate_Success(t *testing.T) {
	created := false
	areas := &areamock.Repo{
		CreateFn: func(_ context.Context, a *areadomain.Area) error {
			created = true
			a.ID = 1
			return nil
		},
	}
	uc := newUsecase(areas, nil)

	got, err := uc.Create(context.Background(), CreateAreaInput{Name: "  Infraestructura ", Description: " Estado físico "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created {
		t.Fatal("repository Create was not called")
	}
	if got.AreaName != "Infraestructura" || got.Description != "Estado físico" {
		t.Fatalf("input was not trimmed: %+v", got)
	}
}

func TestCreate_InvalidName(t *testing.T) {
	uc := newUsecase(nil, nil)
	for _, name := range []string{"", "   ", strings.Repeat("x", 101), strings.Repeat("á", 101)} {
		if _, err := uc.Create(context.Background(), CreateAreaInput{Name: name}); !errors.Is(err, areadomain.ErrInvalidName) {
			t.Fatalf("name %q: got %v, want ErrInvalidName", name, err)
		}
	}
}

func TestCreate_AccentedNameCountsRunes(t *testing.T) {
	uc := newUsecase(&areamock.Repo{}, nil)
	// 60 accented characters exceed 100 bytes but not 100 characters.
	if _, err := uc.Create(context.Background(), CreateAreaInput{Name: strings.Repeat("á", 60)}); err != nil {
		t.Fatalf("accented name rejected: %v", err)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	areas := &areamock.Repo{
		GetByNameFn: func(_ context.Context, name string) (*areadomain.Area, error) {
			return &areadomain.Area{ID: 1, AreaName: name}, nil
		},
	}
	uc := newUsecase(areas, nil)

	if _, err := uc.Create(context.Background(), CreateAreaInput{Name: "Infraestructura"}); !errors.Is(err, areadomain.ErrDuplicateName) {
		t.Fatalf("got %v, want ErrDuplicateName", err)
	}
}

func TestUpdate_RenameToTakenName(t *testing.T) {
	areas := &areamock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*areadomain.Area, error) {
			return &areadomain.Area{ID: id, AreaName: "Infraestructura"}, nil
		},
		GetByNameFn: func(_ context.Context, name string) (*areadomain.Area, error) {
			return &areadomain.Area{ID: 2, AreaName: name}, nil
		},
	}
	uc := newUsecase(areas, nil)

	if err := uc.Update(context.Background(), 1, UpdateAreaInput{Name: "Docencia"}); !errors.Is(err, areadomain.ErrDuplicateName) {
		t.Fatalf("got %v, want ErrDuplicateName", err)
	}
}

func TestUpdate_SameNameSkipsDuplicateCheck(t *testing.T) {
	areas := &areamock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*areadomain.Area, error) {
			return &areadomain.Area{ID: id, AreaName: "Infraestructura"}, nil
		},
		GetByNameFn: func(_ context.Context, name string) (*areadomain.Area, error) {
			t.Fatal("GetByName must not be called when the name is unchanged")
			return nil, nil
		},
	}
	uc := newUsecase(areas, nil)

	if err := uc.Update(context.Background(), 1, UpdateAreaInput{Name: "Infraestructura", Description: "nueva"}); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestDelete_RefusedWhileTemplatesExist(t *testing.T) {
	areas := &areamock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*areadomain.Area, error) {
			return &areadomain.Area{ID: id, AreaName: "Infraestructura"}, nil
		},
		DeleteFn: func(context.Context, uint64) error {
			t.Fatal("Delete must not be called for an area in use")
			return nil
		},
	}
	templates := &templatemock.Repo{
		CountByAreaFn: func(context.Context, uint64) (int64, error) { return 3, nil },
	}
	uc := newUsecase(areas, templates)

	if err := uc.Delete(context.Background(), 1); !errors.Is(err, areadomain.ErrInUse) {
		t.Fatalf("got %v, want ErrInUse", err)
	}
}

func TestDelete_Success(t *testing.T) {
	deleted := false
	areas := &areamock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*areadomain.Area, error) {
			return &areadomain.Area{ID: id}, nil
		},
		DeleteFn: func(context.Context, uint64) error {
			deleted = true
			return nil
		},
	}
	uc := newUsecase(areas, &templatemock.Repo{})

	if err := uc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("repository Delete was not called")
	}
}

func TestDelete_UnknownArea(t *testing.T) {
	uc := newUsecase(nil, nil)
	if err := uc.Delete(context.Background(), 99); !errors.Is(err, areadomain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
