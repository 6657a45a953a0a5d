package importer

import (
	"fmt"

	"github.com/fertilewaif/vehicle-rentals/models"
	"github.com/fertilewaif/vehicle-rentals/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	slugSuffixLen   = 6
	maxSlugAttempts = 10
)

// batch carries the state of one import run: the report being built, the
// slugs already handed out and the records already written, so two rows of
// the same file never share a slug or a record.
type batch struct {
	result  *models.ImportResult
	slugs   map[string]bool
	written map[int64]bool
	log     *log.Entry
}

func newBatch(kind string) *batch {
	id := uuid.New().String()
	return &batch{
		result: &models.ImportResult{
			ImportId: id,
			Kind:     kind,
			Errors:   []models.ValidationError{},
		},
		slugs:   make(map[string]bool),
		written: make(map[int64]bool),
		log: log.WithFields(log.Fields{
			"import_id": id,
			"kind":      kind,
		}),
	}
}

// claim marks record id as written by this run.
func (b *batch) claim(id int64) {
	b.written[id] = true
}

func (b *batch) succeed() {
	b.result.Total++
	b.result.Success++
}

// fail records a unit that was not written. errs must not be empty.
func (b *batch) fail(errs ...models.ValidationError) {
	b.result.Total++
	b.result.Failed++
	b.result.Errors = append(b.result.Errors, errs...)

	for _, e := range errs {
		b.log.WithFields(log.Fields{
			"row":   e.Row,
			"field": e.Field,
		}).Warningln("Row rejected: " + e.Message)
	}
}

// storeError converts an error caused by the row's own values into a row
// error. Any other error is returned so the caller aborts the run.
func (b *batch) storeError(rowIndex int, err error) error {
	if models.IsRowError(err) {
		b.fail(models.ValidationError{Row: rowIndex, Field: "row", Message: models.ConstraintMessage(err)})
		return nil
	}
	b.log.WithFields(log.Fields{
		"error": err,
		"row":   rowIndex,
	}).Errorln("Store failure, aborting import")
	return err
}

// uniqueSlug derives a slug from name, appending a random suffix until it
// is free both in the store and in this batch.
func (b *batch) uniqueSlug(name string, exists func(string) (bool, error)) (string, error) {
	base := utils.Slugify(name)
	slug := base

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		if !b.slugs[slug] {
			taken, err := exists(slug)
			if err != nil {
				return "", err
			}
			if !taken {
				b.slugs[slug] = true
				return slug, nil
			}
		}
		slug = utils.WithSuffix(base, slugSuffixLen)
	}

	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}

func (b *batch) finish() *models.ImportResult {
	b.log.WithFields(log.Fields{
		"total":   b.result.Total,
		"success": b.result.Success,
		"failed":  b.result.Failed,
	}).Infoln("Import finished")
	return b.result
}
