package importer

import "github.com/fertilewaif/vehicle-rentals/models"

// VendorStore is the part of the vendor repository the importer writes through.
// Single-record find methods return nil, nil when nothing matches;
// FindAllByName returns vendors in id order.
type VendorStore interface {
	FindByEmail(email string) (*models.Vendor, error)
	FindAllByName(name string) ([]models.Vendor, error)
	FindByRef(ref string) (*models.Vendor, error)
	SlugExists(slug string) (bool, error)
	AddVendor(v *models.Vendor) (int64, error)
	UpdateVendor(v models.Vendor) (int64, error)
}

type VehicleStore interface {
	FindByVendorAndTitle(vendorId int64, title string) (*models.Vehicle, error)
	SlugExists(slug string) (bool, error)
	AddVehicle(v *models.Vehicle) (int64, error)
	UpdateVehicle(v models.Vehicle) (int64, error)
}

type TownStore interface {
	UpsertCity(name, slug string) (int64, error)
	FindTown(cityId int64, name string) (*models.Town, error)
	SlugExists(slug string) (bool, error)
	AddTown(t *models.Town) (int64, error)
}
