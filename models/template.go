package models

import (
	"database/sql"
	"errors"
	"time"
)

const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

// Template is a stored e-mail or WhatsApp message with {{ variable }} placeholders.
type Template struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Channel   string    `json:"channel" validate:"required,oneof=email whatsapp"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body" validate:"required"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Templates struct {
	DB *sql.DB
}

func (h *Templates) List() ([]Template, error) {
	templates := []Template{}
	query := `SELECT id, name, channel, subject, body, updated_at FROM templates ORDER BY name;`
	rows, err := h.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		t := Template{}
		if err := rows.Scan(&t.Id, &t.Name, &t.Channel, &t.Subject, &t.Body, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// FindByName returns ErrNotFound when no template has the name.
func (h *Templates) FindByName(name string) (*Template, error) {
	t := new(Template)
	query := `SELECT id, name, channel, subject, body, updated_at FROM templates WHERE name = $1;`
	err := h.DB.QueryRow(query, name).Scan(&t.Id, &t.Name, &t.Channel, &t.Subject, &t.Body, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Upsert stores t under its name and fills in Id and UpdatedAt.
func (h *Templates) Upsert(t *Template) error {
	query := `INSERT INTO templates (name, channel, subject, body) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO UPDATE SET channel = EXCLUDED.channel, subject = EXCLUDED.subject, body = EXCLUDED.body, updated_at = now() RETURNING id, updated_at;`
	return h.DB.QueryRow(query, t.Name, t.Channel, t.Subject, t.Body).Scan(&t.Id, &t.UpdatedAt)
}
