// Package items serves the item download and upload endpoints.
package items

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	controller "github.com/GameItem-Admin/GameItem-Admin/internal/db/controller/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/upload"
	"github.com/GameItem-Admin/GameItem-Admin/internal/web/handler"
)

const (
	// Path serves both download (GET) and upload (POST).
	Path = handler.APIPath + "/items"

	// DownloadPath is the download only endpoint kept for older clients.
	DownloadPath = handler.APIPath + "/download"

	// UploadPath is the upload only endpoint kept for older clients.
	UploadPath = handler.APIPath + "/upload"

	// FormField is the multipart field carrying the files.
	FormField = "files"

	// MsgUploaded is returned when every record of a batch was handled.
	MsgUploaded = "Items uploaded and processed successfully."

	msgParseFailed    = "Error parsing the files"
	msgProcessFailed  = "Error processing or uploading items."
	msgNoFiles        = "No files uploaded."
	msgDownloadFailed = "Failed to fetch items from the database"
)

// ErrPipelineNil is returned by Init without an upload pipeline.
var ErrPipelineNil = errors.New("upload pipeline is nil")

// Service is the item API handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	pipeline *upload.Pipeline
}

// New returns the handler service uploading through pipeline.
func New(pipeline *upload.Pipeline) *Service {
	return &Service{pipeline: pipeline}
}

// Init registers the item routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return nil
	}

	if s.pipeline == nil {
		return ErrPipelineNil
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Download)
	app.Post(Path, s.Upload)
	app.All(Path, handler.MethodNotAllowed(fiber.MethodGet, fiber.MethodPost))

	app.Get(DownloadPath, s.Download)
	app.All(DownloadPath, handler.MethodNotAllowed(fiber.MethodGet))

	app.Post(UploadPath, s.Upload)
	app.All(UploadPath, handler.MethodNotAllowed(fiber.MethodPost))

	return nil
}

// Download returns every stored item with its effects decoded.
func (s *Service) Download(c *fiber.Ctx) error {
	rows, err := controller.GetAll(s.db.WithContext(c.UserContext()))
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch items")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("%s: %v", msgDownloadFailed, err),
		})
	}

	items, err := item.ToWireAll(rows)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode stored items")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("%s: %v", msgDownloadFailed, err),
		})
	}

	log.Debug().Int("items", len(items)).Msg("items downloaded")

	return c.JSON(items)
}

// Upload stages the multipart files and runs them through the pipeline.
func (s *Service) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse upload form")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msgParseFailed,
		})
	}

	headers := form.File[FormField]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msgNoFiles,
		})
	}

	staged := make([]upload.File, 0, len(headers))

	// the pipeline removes what it reads, this catches files it never reached
	defer func() { s.pipeline.Discard(staged) }()

	for _, fh := range headers {
		f, stageErr := s.stage(fh)
		if stageErr != nil {
			log.Error().Err(stageErr).Str("file", fh.Filename).Msg("failed to stage upload")

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": msgProcessFailed,
			})
		}

		staged = append(staged, f)
	}

	report, err := s.pipeline.Process(c.UserContext(), staged)

	var invalid *upload.InvalidItemError

	switch {
	case err == nil:
		return c.JSON(fiber.Map{
			"message": MsgUploaded,
			"report":  report,
		})
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message":    invalid.Error(),
			"violations": invalid.Violations(),
			"report":     report,
		})
	case errors.Is(err, upload.ErrProcessing):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("%s %v", msgProcessFailed, err),
		})
	default:
		log.Error().Err(err).Msg("upload failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msgProcessFailed,
		})
	}
}

func (s *Service) stage(fh *multipart.FileHeader) (upload.File, error) {
	src, err := fh.Open()
	if err != nil {
		return upload.File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return upload.File{}, err
	}

	return s.pipeline.Stage(fh.Filename, data)
}
