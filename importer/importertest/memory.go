// Package importertest provides in-memory stores for exercising the importer
// and the HTTP handlers without a database.
package importertest

import (
	"strconv"
	"strings"
	"sync"

	"github.com/fertilewaif/vehicle-rentals/models"
)

// Vendors is an in-memory importer.VendorStore. Err, when set, is returned
// by every call; AddErrs injects an error for AddVendor by vendor name.
type Vendors struct {
	mu      sync.Mutex
	Records []models.Vendor
	Err     error
	AddErrs map[string]error
}

func (s *Vendors) find(match func(v models.Vendor) bool) (*models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, v := range s.Records {
		if match(v) {
			found := v
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Vendors) FindByEmail(email string) (*models.Vendor, error) {
	return s.find(func(v models.Vendor) bool { return v.Email != "" && strings.EqualFold(v.Email, email) })
}

func (s *Vendors) FindAllByName(name string) ([]models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	found := []models.Vendor{}
	for _, v := range s.Records {
		if strings.EqualFold(v.Name, name) {
			found = append(found, v)
		}
	}
	return found, nil
}

func (s *Vendors) FindByRef(ref string) (*models.Vendor, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return s.find(func(v models.Vendor) bool { return v.Id == id })
	}
	return s.find(func(v models.Vendor) bool { return v.Slug == strings.ToLower(ref) })
}

func (s *Vendors) SlugExists(slug string) (bool, error) {
	v, err := s.find(func(v models.Vendor) bool { return v.Slug == slug })
	return v != nil, err
}

func (s *Vendors) AddVendor(v *models.Vendor) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if err := s.AddErrs[v.Name]; err != nil {
		return 0, err
	}
	v.Id = int64(len(s.Records) + 1)
	s.Records = append(s.Records, *v)
	return v.Id, nil
}

func (s *Vendors) UpdateVendor(v models.Vendor) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for i := range s.Records {
		if s.Records[i].Id == v.Id {
			s.Records[i] = v
			return 1, nil
		}
	}
	return 0, nil
}

// Vehicles is an in-memory importer.VehicleStore.
type Vehicles struct {
	mu      sync.Mutex
	Records []models.Vehicle
	Err     error
	AddErrs map[string]error
}

func (s *Vehicles) FindByVendorAndTitle(vendorId int64, title string) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, v := range s.Records {
		if v.VendorId == vendorId && strings.EqualFold(v.Title, title) {
			found := v
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Vehicles) SlugExists(slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, v := range s.Records {
		if v.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *Vehicles) AddVehicle(v *models.Vehicle) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if err := s.AddErrs[v.Title]; err != nil {
		return 0, err
	}
	v.Id = int64(len(s.Records) + 1)
	s.Records = append(s.Records, *v)
	return v.Id, nil
}

func (s *Vehicles) UpdateVehicle(v models.Vehicle) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for i := range s.Records {
		if s.Records[i].Id == v.Id {
			s.Records[i] = v
			return 1, nil
		}
	}
	return 0, nil
}

// Towns is an in-memory importer.TownStore.
type Towns struct {
	mu     sync.Mutex
	Cities []models.City
	Towns  []models.Town
	Err    error
}

func (s *Towns) UpsertCity(name, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	for _, c := range s.Cities {
		if c.Slug == slug {
			return c.Id, nil
		}
	}
	c := models.City{Id: int64(len(s.Cities) + 1), Name: name, Slug: slug}
	s.Cities = append(s.Cities, c)
	return c.Id, nil
}

func (s *Towns) FindTown(cityId int64, name string) (*models.Town, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, t := range s.Towns {
		if t.CityId == cityId && strings.EqualFold(t.Name, name) {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Towns) SlugExists(slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, t := range s.Towns {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (s *Towns) AddTown(t *models.Town) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	t.Id = int64(len(s.Towns) + 1)
	s.Towns = append(s.Towns, *t)
	return t.Id, nil
}

// PlaceSlugExists reports whether slug names a city or a town.
func (s *Towns) PlaceSlugExists(slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for _, c := range s.Cities {
		if c.Slug == slug {
			return true, nil
		}
	}
	for _, t := range s.Towns {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
