package doctor

import (
	"errors"
	"testing"
)

func seededRepo(t *testing.T) *InMemoryRepository {
	t.Helper()
	repo := NewInMemoryRepository()
	doctors := []*Doctor{
		{Name: "Dr. John Smith", Specialty: "Cardiology", Rating: 4.8},
		{Name: "Dr. Emily Lee", Specialty: "Pediatrics", Rating: 4.9},
		{Name: "Dr. Daniel Kim", Specialty: "Cardiology", Rating: 4.2},
		{Name: "Dr. Raj Patel", Specialty: "General Practice", Rating: 4.7},
	}
	for _, d := range doctors {
		if err := repo.Save(d); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return repo
}

func TestSearchWithoutFiltersReturnsAllSortedByName(t *testing.T) {
	service := NewService(seededRepo(t))

	doctors, err := service.Search("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 4 {
		t.Fatalf("expected 4 doctors, got %d", len(doctors))
	}
	for i := 1; i < len(doctors); i++ {
		if doctors[i-1].Name > doctors[i].Name {
			t.Fatalf("results not sorted by name: %q before %q", doctors[i-1].Name, doctors[i].Name)
		}
	}
}

func TestSearchByNamePartialMatch(t *testing.T) {
	service := NewService(seededRepo(t))

	doctors, err := service.Search("smith", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 1 || doctors[0].Name != "Dr. John Smith" {
		t.Fatalf("unexpected results: %+v", doctors)
	}
}

func TestSearchBySpecialtyExactMatch(t *testing.T) {
	service := NewService(seededRepo(t))

	doctors, err := service.Search("", "cardiology")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected 2 cardiologists, got %d", len(doctors))
	}

	// Substring of a specialty must not match.
	doctors, err = service.Search("", "Cardio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 0 {
		t.Fatalf("partial specialty should not match, got %d results", len(doctors))
	}
}

func TestBySpecialtySortedByRatingDesc(t *testing.T) {
	service := NewService(seededRepo(t))

	doctors, err := service.BySpecialty("Cardiology")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(doctors))
	}
	if doctors[0].Rating < doctors[1].Rating {
		t.Fatalf("results not sorted by rating descending")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	service := NewService(seededRepo(t))

	if _, err := service.GetByID("missing-id"); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestReseedReplacesExistingData(t *testing.T) {
	repo := NewInMemoryRepository()
	if err := repo.Save(&Doctor{Name: "Dr. Stale Entry", Specialty: "Cardiology"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := Reseed(repo); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}

	stale, err := repo.Search("Stale", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stale) != 0 {
		t.Fatalf("stale doctor survived reseed")
	}

	count, _ := repo.Count()
	if count != len(featuredDoctors)+len(additionalDoctors) {
		t.Fatalf("expected %d doctors after reseed, got %d", len(featuredDoctors)+len(additionalDoctors), count)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := NewInMemoryRepository()

	if err := Seed(repo); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	first, _ := repo.Count()
	if first == 0 {
		t.Fatalf("expected seeded doctors")
	}

	if err := Seed(repo); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	second, _ := repo.Count()
	if second != first {
		t.Fatalf("seed is not idempotent: %d then %d", first, second)
	}
}
