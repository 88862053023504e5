// Package ui renders the single page with the upload and download tabs.
package ui

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GameItem-Admin/GameItem-Admin/internal/config"
	controller "github.com/GameItem-Admin/GameItem-Admin/internal/db/controller/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/web/handler"
	"github.com/GameItem-Admin/GameItem-Admin/internal/web/handler/api/items"
	"github.com/GameItem-Admin/GameItem-Admin/internal/web/navigation"
)

const (
	// Path is the path of the page.
	Path = handler.RootPath

	// TemplateName is the name of the page template.
	TemplateName = "index"

	// TabUpload is the upload tab.
	TabUpload = "upload"

	// TabDownload is the download tab.
	TabDownload = "download"

	defaultTitle = "Item Administration"
)

// Data represents the data passed to the template.
type Data struct {
	ItemCount   int64
	Slots       []item.Slot
	ItemsURL    string
	FormField   string
	DownloadAs  string
	BannerDelay int // milliseconds
}

// Service is the page handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// New returns the page handler service.
func New() *Service {
	return &Service{}
}

// Init registers the page route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the page. The tab query parameter preselects a tab.
func (s *Service) Get(c *fiber.Ctx) error {
	title := s.cfg.Title
	if title == "" {
		title = defaultTitle
	}

	nav := navigation.NewContext(title, TabUpload).
		AddTab(TabUpload, "Upload").
		AddTab(TabDownload, "Download").
		Select(c.Query("tab"))

	count, err := controller.Count(s.db.WithContext(c.UserContext()))
	if err != nil {
		// the page still works without the counter
		log.Warn().Err(err).Msg("failed to count items")
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data": Data{
			ItemCount:   count,
			Slots:       item.Slots,
			ItemsURL:    items.Path,
			FormField:   items.FormField,
			DownloadAs:  "item-data.json",
			BannerDelay: 5000, //nolint:mnd
		},
	}, handler.BaseLayout)
}
