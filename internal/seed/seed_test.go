package seed

import (
	"testing"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/registrar/internal/app/models"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
)

func TestCreateDefaultData(t *testing.T) {
	repo := appRepos.NewCourseRepository()
	if err := CreateDefaultData(repo, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	want := []struct {
		code     string
		capacity int
	}{
		{"CS101", 30},
		{"MATH201", 25},
		{"BIO301", 20},
	}
	all := repo.GetAll()
	if len(all) != len(want) {
		t.Fatalf("expected %d courses, got %d", len(want), len(all))
	}
	for i, w := range want {
		if all[i].Code != w.code || all[i].Capacity != w.capacity || all[i].Enrolled != 0 {
			t.Errorf("course %d: got %+v, want %s cap %d", i, all[i], w.code, w.capacity)
		}
	}
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	repo := appRepos.NewCourseRepository()
	custom := appModels.NewCourse("CS101", "Custom", "", 2)
	if err := repo.Create(custom); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := CreateDefaultData(repo, zerolog.Nop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := CreateDefaultData(repo, zerolog.Nop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if repo.Count() != 3 {
		t.Fatalf("expected 3 courses, got %d", repo.Count())
	}
	c, _ := repo.GetByCode("CS101")
	if c.Title != "Custom" {
		t.Fatalf("seed overwrote an existing course")
	}
}
