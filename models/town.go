package models

import (
	"database/sql"
	"errors"
)

type City struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Town struct {
	Id     int64  `json:"id"`
	CityId int64  `json:"city_id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
}

type Towns struct {
	DB *sql.DB
}

// UpsertCity returns the id of the city with the given slug, creating it when missing.
func (h *Towns) UpsertCity(name, slug string) (int64, error) {
	query := `INSERT INTO cities (name, slug) VALUES ($1, $2) ON CONFLICT (slug) DO UPDATE SET name = cities.name RETURNING id;`
	var id int64
	if err := h.DB.QueryRow(query, name, slug).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FindTown returns nil, nil when the city has no town with that name.
func (h *Towns) FindTown(cityId int64, name string) (*Town, error) {
	t := new(Town)
	query := `SELECT id, city_id, name, slug FROM towns WHERE city_id = $1 AND lower(name) = lower($2);`
	err := h.DB.QueryRow(query, cityId, name).Scan(&t.Id, &t.CityId, &t.Name, &t.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (h *Towns) SlugExists(slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM towns WHERE slug = $1);`
	if err := h.DB.QueryRow(query, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (h *Towns) AddTown(t *Town) (int64, error) {
	query := `INSERT INTO towns (city_id, name, slug) VALUES ($1, $2, $3) RETURNING id;`
	var id int64
	if err := h.DB.QueryRow(query, t.CityId, t.Name, t.Slug).Scan(&id); err != nil {
		return 0, err
	}
	t.Id = id
	return id, nil
}

// PlaceSlugExists reports whether slug names a city or a town.
func (h *Towns) PlaceSlugExists(slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM cities WHERE slug = $1) OR EXISTS(SELECT 1 FROM towns WHERE slug = $1);`
	if err := h.DB.QueryRow(query, slug).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
