package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fertilewaif/vehicle-rentals/models"
)

var templateColumns = []string{"id", "name", "channel", "subject", "body", "updated_at"}

func TestTemplates_List(t *testing.T) {
	db, mock := NewMock()
	templates := models.Templates{DB: db}
	defer db.Close()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, name, channel, subject, body, updated_at FROM templates ORDER BY name;`).
		WillReturnRows(sqlmock.NewRows(templateColumns).
			AddRow(1, "booking-confirmed", "email", "Booking {{ booking_id }}", "Hi {{name}}", now).
			AddRow(2, "vendor-welcome", "whatsapp", "", "Welcome {{vendor}}", now))

	res, err := templates.List()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if len(res) != 2 || res[1].Channel != models.ChannelWhatsApp || !res[0].UpdatedAt.Equal(now) {
		t.Errorf("Unexpected templates %+v", res)
	}
}

func TestTemplates_FindByNameMissing(t *testing.T) {
	db, mock := NewMock()
	templates := models.Templates{DB: db}
	defer db.Close()

	mock.ExpectQuery(`FROM templates WHERE name \= \$1;`).WithArgs("nope").WillReturnRows(sqlmock.NewRows(templateColumns))

	_, err := templates.FindByName("nope")

	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestTemplates_Upsert(t *testing.T) {
	db, mock := NewMock()
	templates := models.Templates{DB: db}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO templates \(name, channel, subject, body\) VALUES \(\$1, \$2, \$3, \$4\) ON CONFLICT \(name\) DO UPDATE`).
		WithArgs("vendor-welcome", "email", "Welcome", "Hello {{vendor}}").
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(5, now))

	tpl := &models.Template{Name: "vendor-welcome", Channel: "email", Subject: "Welcome", Body: "Hello {{vendor}}"}
	err := templates.Upsert(tpl)

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if tpl.Id != 5 || !tpl.UpdatedAt.Equal(now) {
		t.Errorf("Unexpected template %+v", tpl)
	}
}
