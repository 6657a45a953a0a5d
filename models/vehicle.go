package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// VehicleTypes lists the vehicle categories listings may use.
var VehicleTypes = []string{"car", "suv", "bike", "scooter", "bicycle", "tempo-traveller", "bus"}

type Vehicle struct {
	Id            int64               `json:"id"`
	VendorId      int64               `json:"vendor_id"`
	Slug          string              `json:"slug"`
	Title         string              `json:"title"`
	Type          string              `json:"type"`
	City          string              `json:"city"`
	Seats         int                 `json:"seats"`
	PricePerDay   decimal.Decimal     `json:"price_per_day"`
	PricePerWeek  decimal.NullDecimal `json:"price_per_week"`
	PricePerMonth decimal.NullDecimal `json:"price_per_month"`
	Description   string              `json:"description"`
}

type VehicleFilter struct {
	VendorId *int64
	City     *string
	Type     *string
	Query    *string
	Limit    int
	Offset   int
}

type Vehicles struct {
	DB *sql.DB
}

const vehicleColumns = `id, vendor_id, slug, title, type, city, seats, price_per_day, price_per_week, price_per_month, description`

func scanVehicle(row interface{ Scan(...interface{}) error }) (*Vehicle, error) {
	v := new(Vehicle)
	err := row.Scan(&v.Id, &v.VendorId, &v.Slug, &v.Title, &v.Type, &v.City, &v.Seats,
		&v.PricePerDay, &v.PricePerWeek, &v.PricePerMonth, &v.Description)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// FindByVendorAndTitle returns nil, nil when the vendor has no listing with that title.
func (h *Vehicles) FindByVendorAndTitle(vendorId int64, title string) (*Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vendor_id = $1 AND lower(title) = lower($2);`
	v, err := scanVehicle(h.DB.QueryRow(query, vendorId, title))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return v, err
}

func (h *Vehicles) SlugExists(slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM vehicles WHERE slug = $1);`
	err := h.DB.QueryRow(query, slug).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (h *Vehicles) AddVehicle(v *Vehicle) (int64, error) {
	query := `INSERT INTO vehicles (vendor_id, slug, title, type, city, seats, price_per_day, price_per_week, price_per_month, description) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`
	var id int64
	err := h.DB.QueryRow(query, v.VendorId, v.Slug, v.Title, v.Type, v.City, v.Seats,
		v.PricePerDay, v.PricePerWeek, v.PricePerMonth, v.Description).Scan(&id)
	if err != nil {
		return 0, err
	}
	v.Id = id
	return id, nil
}

func (h *Vehicles) UpdateVehicle(v Vehicle) (int64, error) {
	query := `UPDATE vehicles SET title=$2, type=$3, city=$4, seats=$5, price_per_day=$6, price_per_week=$7, price_per_month=$8, description=$9, updated_at=now() WHERE id = $1;`
	res, err := h.DB.Exec(query, v.Id, v.Title, v.Type, v.City, v.Seats,
		v.PricePerDay, v.PricePerWeek, v.PricePerMonth, v.Description)
	if err != nil {
		return 0, err
	}
	rowsUpdated, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rowsUpdated, nil
}

func (h *Vehicles) FindByFilter(filter VehicleFilter) ([]Vehicle, error) {
	vehicles := []Vehicle{}

	var filters []string
	var filterVals []interface{}

	if filter.VendorId != nil {
		newFilter := fmt.Sprintf("vendor_id = $%d", len(filterVals)+1)
		filters = append(filters, newFilter)
		filterVals = append(filterVals, *filter.VendorId)
	}

	if filter.City != nil {
		newFilter := fmt.Sprintf("LOWER(city) = LOWER($%d)", len(filterVals)+1)
		filters = append(filters, newFilter)
		filterVals = append(filterVals, *filter.City)
	}

	if filter.Type != nil {
		newFilter := fmt.Sprintf("type = $%d", len(filterVals)+1)
		filters = append(filters, newFilter)
		filterVals = append(filterVals, *filter.Type)
	}

	if filter.Query != nil {
		newFilter := fmt.Sprintf(`LOWER(title) LIKE '%%' || LOWER($%d) || '%%'`, len(filterVals)+1)
		filters = append(filters, newFilter)
		filterVals = append(filterVals, *filter.Query)
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	if len(filters) > 0 {
		query += " WHERE "
		query += strings.Join(filters, " AND ")
	}
	query += " ORDER BY id"
	query, filterVals = paginate(query, filterVals, filter.Limit, filter.Offset)
	query += ";"

	rows, err := h.DB.Query(query, filterVals...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}

	return vehicles, rows.Err()
}

func (h *Vehicles) Close() {
	h.DB.Close()
}
