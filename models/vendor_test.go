package models_test

import (
	"database/sql"
	"fmt"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/lib/pq"
)

var vendor = &models.Vendor{
	Id:          7,
	Slug:        "acme-rentals",
	Name:        "Acme Rentals",
	Email:       "acme@example.com",
	Phone:       "+91 98200 00000",
	City:        "Goa",
	Website:     "https://acme.example.com",
	Description: "Cars and bikes",
}

var vendorRowColumns = []string{"id", "slug", "name", "email", "phone", "city", "website", "description"}

func NewMock() (*sql.DB, sqlmock.Sqlmock) {
	db, mock, _ := sqlmock.New()
	return db, mock
}

func vendorRows() *sqlmock.Rows {
	return sqlmock.NewRows(vendorRowColumns).
		AddRow(vendor.Id, vendor.Slug, vendor.Name, vendor.Email, vendor.Phone, vendor.City, vendor.Website, vendor.Description)
}

func TestVendors_AddVendor(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	query := `INSERT INTO vendors \(slug, name, email, phone, city, website, description\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\) RETURNING id;`
	mock.ExpectQuery(query).
		WithArgs(vendor.Slug, vendor.Name, vendor.Email, vendor.Phone, vendor.City, vendor.Website, vendor.Description).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	newVendor := *vendor
	newVendor.Id = 0
	id, err := vendors.AddVendor(&newVendor)

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if id != 11 || newVendor.Id != 11 {
		t.Errorf("Invalid id, expected %d, got %d (struct %d)", 11, id, newVendor.Id)
	}
}

func TestVendors_AddVendorUniqueViolation(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	mock.ExpectQuery(`INSERT INTO vendors`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "vendors_email_key"})

	_, err := vendors.AddVendor(vendor)

	if err == nil {
		t.Fatalf("Expected error, got nil")
	}
	if !models.IsConstraintViolation(err) {
		t.Errorf("Expected constraint violation, got %v", err)
	}
	if msg := models.ConstraintMessage(err); msg != "duplicate value violates vendors_email_key" {
		t.Errorf("Unexpected message %q", msg)
	}
}

func TestVendors_FindByEmail(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	query := `SELECT id, slug, name, email, phone, city, website, description FROM vendors WHERE lower\(email\) \= lower\(\$1\) LIMIT 1;`
	mock.ExpectQuery(query).WithArgs(vendor.Email).WillReturnRows(vendorRows())

	resVendor, err := vendors.FindByEmail(vendor.Email)

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if !reflect.DeepEqual(resVendor, vendor) {
		t.Errorf("Invalid result, expected %+v, got %+v", vendor, resVendor)
	}
}

func TestVendors_FindAllByName(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	mock.ExpectQuery(`FROM vendors WHERE lower\(name\) = lower\(\$1\) ORDER BY id;`).WithArgs("acme rentals").
		WillReturnRows(vendorRows().
			AddRow(9, "acme-rentals-x1y2z3", "Acme Rentals", "", "", "Pune", "", ""))

	resVendors, err := vendors.FindAllByName("acme rentals")

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	expected := []models.Vendor{
		*vendor,
		{Id: 9, Slug: "acme-rentals-x1y2z3", Name: "Acme Rentals", City: "Pune"},
	}
	if !reflect.DeepEqual(resVendors, expected) {
		t.Errorf("Invalid result, expected %+v, got %+v", expected, resVendors)
	}
}

func TestVendors_FindAllByNameMissing(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	mock.ExpectQuery(`FROM vendors WHERE lower\(name\)`).WithArgs("Nobody").
		WillReturnRows(sqlmock.NewRows(vendorRowColumns))

	resVendors, err := vendors.FindAllByName("Nobody")

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if len(resVendors) != 0 {
		t.Errorf("Expected no vendors, got %+v", resVendors)
	}
}

func TestVendors_FindByRef(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	mock.ExpectQuery(`FROM vendors WHERE id \= \$1;`).WithArgs(int64(7)).WillReturnRows(vendorRows())
	mock.ExpectQuery(`FROM vendors WHERE slug \= \$1;`).WithArgs("acme-rentals").WillReturnRows(vendorRows())

	byId, err := vendors.FindByRef("7")
	if err != nil || byId == nil || byId.Id != 7 {
		t.Errorf("Lookup by id failed: %+v, %v", byId, err)
	}

	bySlug, err := vendors.FindByRef(" Acme-Rentals ")
	if err != nil || bySlug == nil || bySlug.Slug != "acme-rentals" {
		t.Errorf("Lookup by slug failed: %+v, %v", bySlug, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %s", err)
	}
}

func TestVendors_SlugExists(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	query := `SELECT EXISTS\(SELECT 1 FROM vendors WHERE slug \= \$1\);`
	mock.ExpectQuery(query).WithArgs("acme-rentals").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := vendors.SlugExists("acme-rentals")

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if !exists {
		t.Errorf("Expected slug to exist")
	}
}

func TestVendors_UpdateVendor(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	query := `UPDATE vendors SET name\=\$2, email\=\$3, phone\=\$4, city\=\$5, website\=\$6, description\=\$7, updated_at\=now\(\) WHERE id \= \$1;`
	mock.ExpectExec(query).
		WithArgs(vendor.Id, vendor.Name, vendor.Email, vendor.Phone, vendor.City, vendor.Website, vendor.Description).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rowsUpdated, err := vendors.UpdateVendor(*vendor)

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if rowsUpdated != 1 {
		t.Errorf("Invalid rows updated, expected %d, got %d", 1, rowsUpdated)
	}
}

func TestVendors_UpdateVendorError(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	mock.ExpectExec(`UPDATE vendors`).WillReturnError(fmt.Errorf("test error"))

	_, err := vendors.UpdateVendor(*vendor)

	if err == nil {
		t.Errorf("Expected error, got nil")
	}
	if models.IsConstraintViolation(err) {
		t.Errorf("Plain error must not be a constraint violation")
	}
}

func TestVendors_FindByFilter(t *testing.T) {
	db, mock := NewMock()
	vendors := models.Vendors{DB: db}
	defer vendors.Close()

	q := "acme"
	filter := models.VendorFilter{Query: &q, Limit: 20, Offset: 40}

	query := `SELECT id, slug, name, email, phone, city, website, description FROM vendors WHERE LOWER\(name\) LIKE '%' \|\| LOWER\(\$1\) \|\| '%' ORDER BY id LIMIT \$2 OFFSET \$3;`
	mock.ExpectQuery(query).WithArgs("acme", 20, 40).WillReturnRows(vendorRows())

	resVendors, err := vendors.FindByFilter(filter)

	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	expected := []models.Vendor{*vendor}
	if !reflect.DeepEqual(resVendors, expected) {
		t.Errorf("Invalid result, expected %+v, got %+v", expected, resVendors)
	}
}
