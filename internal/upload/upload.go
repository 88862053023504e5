// Package upload turns staged item files into stored items.
//
// A batch is processed in two phases. All files are read, removed from
// staging and decoded first; a file that is not JSON aborts the batch before
// anything is written. The records are then validated and upserted one by one
// in file order. The first invalid record stops the batch, records stored
// before it stay stored. A record that fails to persist is reported and the
// batch continues.
package upload

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	controller "github.com/GameItem-Admin/GameItem-Admin/internal/db/controller/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/uniuri"
)

// File is one staged upload.
type File struct {
	Name string // client side name, only used in messages
	Key  string // staging key
}

// Pipeline validates and stores uploaded item files.
type Pipeline struct {
	db        *gorm.DB
	store     fiber.Storage
	validator *item.Validator
	policy    controller.ConflictPolicy
}

// New returns a pipeline writing to db and reading staged files from store.
func New(db *gorm.DB, store fiber.Storage, validator *item.Validator, policy controller.ConflictPolicy) *Pipeline {
	if policy == "" {
		policy = controller.OnConflictIgnore
	}

	return &Pipeline{
		db:        db,
		store:     store,
		validator: validator,
		policy:    policy,
	}
}

// Stage writes data to the staging store under a fresh key.
func (p *Pipeline) Stage(name string, data []byte) (File, error) {
	f := File{Name: name, Key: uniuri.NewKey()}

	if err := p.store.Set(f.Key, data, 0); err != nil {
		return File{}, fmt.Errorf("stage %s: %w", name, err)
	}

	return f, nil
}

// Discard removes staged files. Missing files are ignored.
func (p *Pipeline) Discard(files []File) {
	for _, f := range files {
		if err := p.store.Delete(f.Key); err != nil {
			log.Warn().Err(err).Str("file", f.Name).Str("key", f.Key).Msg("can't remove staged upload")
		}
	}
}

type candidate struct {
	file string
	raw  json.RawMessage
}

// Process runs the batch made of files.
// On ErrInvalidItem the returned report still counts the records stored before the failure.
func (p *Pipeline) Process(ctx context.Context, files []File) (Report, error) {
	report := Report{
		BatchID: uuid.NewString(),
		Files:   len(files),
		Failed:  make([]RecordFailure, 0),
	}

	logger := log.With().Str("batch", report.BatchID).Logger()

	if len(files) == 0 {
		return report, ErrNoFiles
	}

	candidates, err := p.collect(files)
	if err != nil {
		batchesTotal.WithLabelValues(resultDecode).Inc()
		logger.Warn().Err(err).Msg("upload batch rejected")

		return report, err
	}

	report.Records = len(candidates)

	for i, c := range candidates {
		if err = ctx.Err(); err != nil {
			batchesTotal.WithLabelValues(resultCanceled).Inc()
			logger.Warn().Err(err).Int("stored", report.Stored()).Msg("upload batch canceled")

			return report, err
		}

		it, validateErr := p.validator.Validate(c.raw)
		if validateErr != nil {
			recordsTotal.WithLabelValues("invalid").Inc()
			batchesTotal.WithLabelValues(resultInvalid).Inc()

			invalid := &InvalidItemError{
				File:  c.file,
				Index: i + 1,
				ID:    peekID(c.raw),
				Err:   validateErr,
			}
			logger.Warn().Err(invalid).Int("stored", report.Stored()).Msg("upload batch stopped")

			return report, invalid
		}

		outcome, storeErr := p.persist(ctx, it)
		if storeErr != nil {
			recordsTotal.WithLabelValues("failed").Inc()
			report.Failed = append(report.Failed, RecordFailure{Index: i + 1, ID: it.ID, Error: storeErr.Error()})
			logger.Error().Err(storeErr).Str("id", it.ID).Msg("can't store item")

			continue
		}

		recordsTotal.WithLabelValues(string(outcome)).Inc()
		report.count(outcome)
	}

	batchesTotal.WithLabelValues(resultOK).Inc()
	logger.Info().
		Int("files", report.Files).
		Int("inserted", report.Inserted).
		Int("updated", report.Updated).
		Int("skipped", report.Skipped).
		Int("failed", len(report.Failed)).
		Msg("upload batch processed")

	return report, nil
}

// collect reads, removes and decodes every staged file.
func (p *Pipeline) collect(files []File) ([]candidate, error) {
	var out []candidate

	for _, f := range files {
		data, err := p.store.Get(f.Key)

		if delErr := p.store.Delete(f.Key); delErr != nil {
			log.Warn().Err(delErr).Str("file", f.Name).Msg("can't remove staged upload")
		}

		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrProcessing, f.Name, err)
		}

		records, err := item.DecodeBatch(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrProcessing, f.Name, err)
		}

		for _, raw := range records {
			out = append(out, candidate{file: f.Name, raw: raw})
		}
	}

	return out, nil
}

func (p *Pipeline) persist(ctx context.Context, it item.Item) (controller.Outcome, error) {
	if p.db == nil {
		return "", controller.ErrDBNil
	}

	row, err := item.ToPersisted(it)
	if err != nil {
		return "", err
	}

	return controller.Upsert(p.db.WithContext(ctx), &row, p.policy)
}

// peekID returns the id of a raw record if it has a string one.
func peekID(raw json.RawMessage) string {
	var head struct {
		ID any `json:"id"`
	}

	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}

	id, _ := head.ID.(string)

	return id
}
