package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Vendor struct {
	Id          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

type VendorFilter struct {
	Query  *string
	City   *string
	Limit  int
	Offset int
}

type Vendors struct {
	DB *sql.DB
}

const vendorColumns = `id, slug, name, email, phone, city, website, description`

func scanVendor(row interface{ Scan(...interface{}) error }) (*Vendor, error) {
	v := new(Vendor)
	err := row.Scan(&v.Id, &v.Slug, &v.Name, &v.Email, &v.Phone, &v.City, &v.Website, &v.Description)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (h *Vendors) findOne(query string, args ...interface{}) (*Vendor, error) {
	v, err := scanVendor(h.DB.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return v, err
}

// FindByEmail returns nil, nil when no vendor uses the address.
func (h *Vendors) FindByEmail(email string) (*Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE lower(email) = lower($1) LIMIT 1;`
	return h.findOne(query, email)
}

// FindAllByName returns every vendor with the name, oldest first.
func (h *Vendors) FindAllByName(name string) ([]Vendor, error) {
	vendors := []Vendor{}

	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE lower(name) = lower($1) ORDER BY id;`
	rows, err := h.DB.Query(query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, *v)
	}

	return vendors, rows.Err()
}

// FindByRef looks a vendor up by numeric id or by slug.
func (h *Vendors) FindByRef(ref string) (*Vendor, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1;`
		return h.findOne(query, id)
	}
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE slug = $1;`
	return h.findOne(query, strings.ToLower(ref))
}

func (h *Vendors) SlugExists(slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM vendors WHERE slug = $1);`
	err := h.DB.QueryRow(query, slug).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (h *Vendors) AddVendor(v *Vendor) (int64, error) {
	query := `INSERT INTO vendors (slug, name, email, phone, city, website, description) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`
	var id int64
	err := h.DB.QueryRow(query, v.Slug, v.Name, v.Email, v.Phone, v.City, v.Website, v.Description).Scan(&id)
	if err != nil {
		return 0, err
	}
	v.Id = id
	return id, nil
}

func (h *Vendors) UpdateVendor(v Vendor) (int64, error) {
	query := `UPDATE vendors SET name=$2, email=$3, phone=$4, city=$5, website=$6, description=$7, updated_at=now() WHERE id = $1;`
	res, err := h.DB.Exec(query, v.Id, v.Name, v.Email, v.Phone, v.City, v.Website, v.Description)
	if err != nil {
		return 0, err
	}
	rowsUpdated, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rowsUpdated, nil
}

func (h *Vendors) FindByFilter(filter VendorFilter) ([]Vendor, error) {
	vendors := []Vendor{}

	var filters []string
	var filterVals []interface{}

	if filter.Query != nil {
		newFilter := fmt.Sprintf(`LOWER(name) LIKE '%%' || LOWER($%d) || '%%'`, len(filterVals)+1)
		filters = append(filters, newFilter)
		filterVals = append(filterVals, *filter.Query)
	}

	if filter.City != nil {
		newFilter := fmt.Sprintf(`LOWER(city) = LOWER($%d)`, len(filterVals)+1)
		filters = append(filters, newFilter)
		filterVals = append(filterVals, *filter.City)
	}

	query := `SELECT ` + vendorColumns + ` FROM vendors`
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
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, *v)
	}

	return vendors, rows.Err()
}

func (h *Vendors) Close() {
	h.DB.Close()
}

// paginate appends LIMIT/OFFSET placeholders when limit is positive.
func paginate(query string, vals []interface{}, limit, offset int) (string, []interface{}) {
	if limit <= 0 {
		return query, vals
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(vals)+1, len(vals)+2)
	return query, append(vals, limit, offset)
}
