// Package templates fills {{ variable }} placeholders in stored e-mail and
// WhatsApp messages.
package templates

import (
	"regexp"

	"github.com/fertilewaif/vehicle-rentals/models"
)

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// Render substitutes every placeholder found in vars. Unknown placeholders
// are kept verbatim and their names returned in order of first appearance.
func Render(text string, vars map[string]string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	out := placeholder.ReplaceAllStringFunc(text, func(token string) string {
		name := placeholder.FindStringSubmatch(token)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return token
	})

	return out, missing
}

// Variables lists the placeholder names used in text, without duplicates.
func Variables(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

type Preview struct {
	Channel string   `json:"channel"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Missing []string `json:"missing"`
}

// RenderTemplate renders both subject and body of t.
func RenderTemplate(t models.Template, vars map[string]string) Preview {
	subject, missingSubject := Render(t.Subject, vars)
	body, missingBody := Render(t.Body, vars)

	missing := []string{}
	seen := make(map[string]bool)
	for _, name := range append(missingSubject, missingBody...) {
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
	}

	return Preview{
		Channel: t.Channel,
		Subject: subject,
		Body:    body,
		Missing: missing,
	}
}
