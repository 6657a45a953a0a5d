package importer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// VendorRow is the schema of one line of a vendor import.
type VendorRow struct {
	Name        string `csv:"name" validate:"required"`
	Email       string `csv:"email" validate:"omitempty,email"`
	Phone       string `csv:"phone"`
	City        string `csv:"city"`
	Website     string `csv:"website" validate:"omitempty,url"`
	Description string `csv:"description"`
}

// VehicleRow is the schema of one line of a vehicle import.
type VehicleRow struct {
	Title         string `csv:"title" validate:"required"`
	Vendor        string `csv:"vendor" validate:"required"`
	PricePerDay   string `csv:"price_per_day" validate:"required,numeric,nonnegative,price"`
	PricePerWeek  string `csv:"price_per_week" validate:"omitempty,numeric,nonnegative,price"`
	PricePerMonth string `csv:"price_per_month" validate:"omitempty,numeric,nonnegative,price"`
	Type          string `csv:"type" validate:"omitempty,vehicletype"`
	Seats         string `csv:"seats" validate:"omitempty,number"`
	City          string `csv:"city"`
	Description   string `csv:"description"`
}

func NewVendorRow(r ImportRow) VendorRow {
	return VendorRow{
		Name:        r.Get("name", "business_name"),
		Email:       r.Get("email"),
		Phone:       r.Get("phone", "whatsapp"),
		City:        r.Get("city"),
		Website:     r.Get("website"),
		Description: r.Get("description"),
	}
}

// NewVehicleRow binds r to the vehicle schema. defaultVendor is used when the
// row carries no vendor reference of its own.
func NewVehicleRow(r ImportRow, defaultVendor string) VehicleRow {
	vendor := r.Get("vendor", "vendor_id", "vendor_slug")
	if vendor == "" {
		vendor = strings.TrimSpace(defaultVendor)
	}
	return VehicleRow{
		Title:         r.Get("title", "name"),
		Vendor:        vendor,
		PricePerDay:   r.Get("price_per_day", "price"),
		PricePerWeek:  r.Get("price_per_week"),
		PricePerMonth: r.Get("price_per_month"),
		Type:          strings.ToLower(r.Get("type", "vehicle_type")),
		Seats:         r.Get("seats"),
		City:          r.Get("city"),
		Description:   r.Get("description"),
	}
}

// maxPrice is the first value a NUMERIC(12, 2) price column cannot hold.
var maxPrice = decimal.New(1, 10)

var rowValidator = newRowValidator()

func newRowValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("csv")
	})
	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.LessThan(maxPrice)
	})
	_ = v.RegisterValidation("vehicletype", func(fl validator.FieldLevel) bool {
		for _, t := range models.VehicleTypes {
			if fl.Field().String() == t {
				return true
			}
		}
		return false
	})
	return v
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid url"
	case "numeric":
		return "must be numeric"
	case "number":
		return "must be an integer"
	case "nonnegative":
		return "must not be negative"
	case "price":
		return "value out of range"
	case "vehicletype":
		return "must be one of " + strings.Join(models.VehicleTypes, ", ")
	}
	return "invalid value"
}

// validateRow checks row against its struct tags and returns one
// ValidationError per offending field, in column order.
func validateRow(rowIndex int, row interface{}) []models.ValidationError {
	err := rowValidator.Struct(row)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []models.ValidationError{{Row: rowIndex, Field: "row", Message: err.Error()}}
	}

	out := make([]models.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, models.ValidationError{Row: rowIndex, Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

// ValidateVendor returns the vendor record for a valid row, or the row's errors.
func ValidateVendor(rowIndex int, row VendorRow) (*models.Vendor, []models.ValidationError) {
	if errs := validateRow(rowIndex, row); len(errs) > 0 {
		return nil, errs
	}
	return &models.Vendor{
		Name:        row.Name,
		Email:       strings.ToLower(row.Email),
		Phone:       row.Phone,
		City:        row.City,
		Website:     row.Website,
		Description: row.Description,
	}, nil
}

// ValidateVehicle returns the vehicle record for a valid row, or the row's errors.
// VendorId is left for the writer to resolve from row.Vendor.
func ValidateVehicle(rowIndex int, row VehicleRow) (*models.Vehicle, []models.ValidationError) {
	if errs := validateRow(rowIndex, row); len(errs) > 0 {
		return nil, errs
	}

	v := &models.Vehicle{
		Title:       row.Title,
		Type:        row.Type,
		City:        row.City,
		Description: row.Description,
		PricePerDay: decimal.RequireFromString(row.PricePerDay),
	}
	if row.PricePerWeek != "" {
		v.PricePerWeek = decimal.NewNullDecimal(decimal.RequireFromString(row.PricePerWeek))
	}
	if row.PricePerMonth != "" {
		v.PricePerMonth = decimal.NewNullDecimal(decimal.RequireFromString(row.PricePerMonth))
	}
	if row.Seats != "" {
		seats, err := strconv.ParseInt(row.Seats, 10, 32)
		if err != nil {
			return nil, []models.ValidationError{{Row: rowIndex, Field: "seats", Message: "value out of range"}}
		}
		v.Seats = int(seats)
	}
	return v, nil
}
