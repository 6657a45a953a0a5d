package models_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fertilewaif/vehicle-rentals/models"
)

func TestTowns_UpsertCity(t *testing.T) {
	db, mock := NewMock()
	towns := models.Towns{DB: db}
	defer db.Close()

	query := `INSERT INTO cities \(name, slug\) VALUES \(\$1, \$2\) ON CONFLICT \(slug\) DO UPDATE SET name \= cities.name RETURNING id;`
	mock.ExpectQuery(query).WithArgs("New Delhi", "new-delhi").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	id, err := towns.UpsertCity("New Delhi", "new-delhi")

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if id != 4 {
		t.Errorf("Invalid id, expected %d, got %d", 4, id)
	}
}

func TestTowns_FindTown(t *testing.T) {
	db, mock := NewMock()
	towns := models.Towns{DB: db}
	defer db.Close()

	query := `SELECT id, city_id, name, slug FROM towns WHERE city_id \= \$1 AND lower\(name\) \= lower\(\$2\);`
	mock.ExpectQuery(query).WithArgs(int64(4), "Saket").
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name", "slug"}).AddRow(9, 4, "Saket", "saket"))
	mock.ExpectQuery(query).WithArgs(int64(4), "Nowhere").
		WillReturnRows(sqlmock.NewRows([]string{"id", "city_id", "name", "slug"}))

	town, err := towns.FindTown(4, "Saket")
	if err != nil || town == nil || town.Slug != "saket" {
		t.Errorf("Unexpected result %+v, %v", town, err)
	}

	town, err = towns.FindTown(4, "Nowhere")
	if err != nil || town != nil {
		t.Errorf("Expected nil, nil; got %+v, %v", town, err)
	}
}

func TestTowns_AddTown(t *testing.T) {
	db, mock := NewMock()
	towns := models.Towns{DB: db}
	defer db.Close()

	query := `INSERT INTO towns \(city_id, name, slug\) VALUES \(\$1, \$2, \$3\) RETURNING id;`
	mock.ExpectQuery(query).WithArgs(int64(4), "Saket", "saket").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	town := &models.Town{CityId: 4, Name: "Saket", Slug: "saket"}
	id, err := towns.AddTown(town)

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if id != 9 || town.Id != 9 {
		t.Errorf("Invalid id, expected %d, got %d", 9, id)
	}
}

func TestTowns_PlaceSlugExists(t *testing.T) {
	db, mock := NewMock()
	towns := models.Towns{DB: db}
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM cities WHERE slug \= \$1\) OR EXISTS\(SELECT 1 FROM towns WHERE slug \= \$1\);`).
		WithArgs("goa").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := towns.PlaceSlugExists("goa")

	if err != nil || !exists {
		t.Errorf("Expected goa to exist, got %v, %v", exists, err)
	}
}
