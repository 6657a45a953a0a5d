package templates

import (
	"testing"

	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out, missing := Render("Hi {{name}}, booking {{ booking.id }} in {{city}} for {{ name }}.", map[string]string{
		"name":       "Asha",
		"booking.id": "BK-42",
	})

	assert.Equal(t, "Hi Asha, booking BK-42 in {{city}} for Asha.", out)
	assert.Equal(t, []string{"city"}, missing)
}

func TestRenderNoPlaceholders(t *testing.T) {
	out, missing := Render("Plain text {not a var}", nil)
	assert.Equal(t, "Plain text {not a var}", out)
	assert.Empty(t, missing)
}

func TestVariables(t *testing.T) {
	assert.Equal(t, []string{"vendor", "city"}, Variables("{{vendor}} in {{ city }}, {{vendor}}"))
}

func TestRenderTemplate(t *testing.T) {
	tpl := models.Template{
		Channel: models.ChannelEmail,
		Subject: "Welcome {{vendor}}",
		Body:    "Dear {{ vendor }}, your dashboard: {{dashboard_url}}. Support: {{support}}",
	}

	p := RenderTemplate(tpl, map[string]string{"vendor": "Acme Rentals", "support": "help@example.com"})

	assert.Equal(t, "Welcome Acme Rentals", p.Subject)
	assert.Equal(t, "Dear Acme Rentals, your dashboard: {{dashboard_url}}. Support: help@example.com", p.Body)
	assert.Equal(t, []string{"dashboard_url"}, p.Missing)
	assert.Equal(t, models.ChannelEmail, p.Channel)
}
