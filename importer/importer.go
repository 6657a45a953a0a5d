// Package importer turns uploaded vendor, vehicle and town spreadsheets into
// store writes. Rows are parsed, validated and written one at a time; a bad
// row is reported and skipped, only store failures abort a run.
package importer

import (
	"errors"

	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/fertilewaif/vehicle-rentals/utils"
)

var ErrMissingVendor = errors.New("vendor_id is required when the file has no vendor column")

type Importer struct {
	Vendors  VendorStore
	Vehicles VehicleStore
	Towns    TownStore
}

func New(vendors VendorStore, vehicles VehicleStore, towns TownStore) *Importer {
	return &Importer{
		Vendors:  vendors,
		Vehicles: vehicles,
		Towns:    towns,
	}
}

// ImportVendors upserts one vendor per row. Vendors are matched by e-mail
// when the row has one, by name otherwise. Rows repeating a name match the
// existing vendors of that name in id order, one row per vendor; once those
// run out a new vendor is created.
func (im *Importer) ImportVendors(table *Table) (*models.ImportResult, error) {
	b := newBatch(models.KindVendors)

	for i := 0; i < table.Len(); i++ {
		rowIndex := i + 1
		if skipBroken(b, table, i) {
			continue
		}
		vendor, errs := ValidateVendor(rowIndex, NewVendorRow(table.Row(i)))
		if len(errs) > 0 {
			b.fail(errs...)
			continue
		}
		if err := im.writeVendor(b, rowIndex, vendor); err != nil {
			return nil, err
		}
	}

	return b.finish(), nil
}

func (im *Importer) writeVendor(b *batch, rowIndex int, v *models.Vendor) error {
	var existing *models.Vendor
	var err error
	if v.Email != "" {
		existing, err = im.Vendors.FindByEmail(v.Email)
	} else {
		var named []models.Vendor
		named, err = im.Vendors.FindAllByName(v.Name)
		for i := range named {
			if !b.written[named[i].Id] {
				existing = &named[i]
				break
			}
		}
	}
	if err != nil {
		return b.storeError(rowIndex, err)
	}

	if existing != nil {
		v.Id = existing.Id
		v.Slug = existing.Slug
		if _, err := im.Vendors.UpdateVendor(*v); err != nil {
			return b.storeError(rowIndex, err)
		}
		b.slugs[v.Slug] = true
		b.claim(v.Id)
		b.succeed()
		return nil
	}

	v.Slug, err = b.uniqueSlug(v.Name, im.Vendors.SlugExists)
	if err != nil {
		return b.storeError(rowIndex, err)
	}
	if _, err := im.Vendors.AddVendor(v); err != nil {
		return b.storeError(rowIndex, err)
	}
	b.claim(v.Id)
	b.succeed()
	return nil
}

// ImportVehicles upserts one listing per row, matched by vendor and title.
// defaultVendor (an id or slug) applies to rows without a vendor column value.
func (im *Importer) ImportVehicles(table *Table, defaultVendor string) (*models.ImportResult, error) {
	if defaultVendor == "" && !table.HasColumn("vendor", "vendor_id", "vendor_slug") {
		return nil, ErrMissingVendor
	}

	b := newBatch(models.KindVehicles)
	vendorIds := make(map[string]int64)

	for i := 0; i < table.Len(); i++ {
		rowIndex := i + 1
		if skipBroken(b, table, i) {
			continue
		}
		row := NewVehicleRow(table.Row(i), defaultVendor)
		vehicle, errs := ValidateVehicle(rowIndex, row)
		if len(errs) > 0 {
			b.fail(errs...)
			continue
		}

		vendorId, ok := vendorIds[row.Vendor]
		if !ok {
			vendor, err := im.Vendors.FindByRef(row.Vendor)
			if err != nil {
				if err := b.storeError(rowIndex, err); err != nil {
					return nil, err
				}
				continue
			}
			if vendor == nil {
				b.fail(models.ValidationError{Row: rowIndex, Field: "vendor", Message: "vendor not found"})
				continue
			}
			vendorId = vendor.Id
			vendorIds[row.Vendor] = vendorId
		}
		vehicle.VendorId = vendorId

		if err := im.writeVehicle(b, rowIndex, vehicle); err != nil {
			return nil, err
		}
	}

	return b.finish(), nil
}

func (im *Importer) writeVehicle(b *batch, rowIndex int, v *models.Vehicle) error {
	existing, err := im.Vehicles.FindByVendorAndTitle(v.VendorId, v.Title)
	if err != nil {
		return b.storeError(rowIndex, err)
	}

	if existing != nil {
		v.Id = existing.Id
		v.Slug = existing.Slug
		if _, err := im.Vehicles.UpdateVehicle(*v); err != nil {
			return b.storeError(rowIndex, err)
		}
		b.slugs[v.Slug] = true
		b.succeed()
		return nil
	}

	v.Slug, err = b.uniqueSlug(v.Title, im.Vehicles.SlugExists)
	if err != nil {
		return b.storeError(rowIndex, err)
	}
	if _, err := im.Vehicles.AddVehicle(v); err != nil {
		return b.storeError(rowIndex, err)
	}
	b.succeed()
	return nil
}

// ImportTowns seeds towns from a sheet whose header row lists cities; every
// non-empty cell below a city is one of its towns. Each cell counts as one
// unit in the report, and Row is the data row the cell sits in.
func (im *Importer) ImportTowns(table *Table) (*models.ImportResult, error) {
	b := newBatch(models.KindTowns)
	cityIds := make(map[int]int64)

	for i := 0; i < table.Len(); i++ {
		rowIndex := i + 1
		if skipBroken(b, table, i) {
			continue
		}
		record := table.Records[i]

		for col, city := range table.Header {
			if col >= len(record) || record[col] == "" {
				continue
			}
			town := record[col]
			if city == "" {
				b.fail(models.ValidationError{Row: rowIndex, Field: "city", Message: "town " + town + " has no city in the header"})
				continue
			}

			cityId, ok := cityIds[col]
			if !ok {
				id, err := im.Towns.UpsertCity(city, utils.Slugify(city))
				if err != nil {
					if err := b.storeError(rowIndex, err); err != nil {
						return nil, err
					}
					continue
				}
				cityId = id
				cityIds[col] = id
			}

			if err := im.writeTown(b, rowIndex, city, &models.Town{CityId: cityId, Name: town}); err != nil {
				return nil, err
			}
		}
	}

	return b.finish(), nil
}

func (im *Importer) writeTown(b *batch, rowIndex int, city string, t *models.Town) error {
	existing, err := im.Towns.FindTown(t.CityId, t.Name)
	if err != nil {
		return b.storeError(rowIndex, err)
	}
	if existing != nil {
		b.slugs[existing.Slug] = true
		b.succeed()
		return nil
	}

	t.Slug, err = b.uniqueSlug(t.Name, im.Towns.SlugExists)
	if err != nil {
		return b.storeError(rowIndex, err)
	}
	if _, err := im.Towns.AddTown(t); err != nil {
		if models.IsRowError(err) {
			b.fail(models.ValidationError{Row: rowIndex, Field: city, Message: models.ConstraintMessage(err)})
			return nil
		}
		return b.storeError(rowIndex, err)
	}
	b.succeed()
	return nil
}

// skipBroken reports a record the parser could not split into cells.
func skipBroken(b *batch, table *Table, i int) bool {
	msg, ok := table.BrokenRow(i)
	if ok {
		b.fail(models.ValidationError{Row: i + 1, Field: "row", Message: "unreadable line: " + msg})
	}
	return ok
}
