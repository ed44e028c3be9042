package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/handlers"
	"gigbook/internal/repository"
	"gigbook/internal/routes"
	"gigbook/internal/services"
	"gigbook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app     *fiber.App
	db      *database.Database
	venues  repository.VenueRepository
	artists repository.ArtistRepository
	shows   repository.ShowRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	db, err := database.New(gormDB, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	venueService := services.NewVenueService(venueRepo, showRepo, log)
	artistService := services.NewArtistService(artistRepo, showRepo, log)
	showService := services.NewShowService(showRepo, log)

	sessions := session.New()

	engine := html.New("../../views", ".html")
	engine.AddFunc("datetime", utils.FormatDatetime)

	app := fiber.New(fiber.Config{Views: engine})

	routes.Setup(
		app,
		handlers.NewPageHandler(sessions),
		handlers.NewVenueHandler(venueService, sessions, log),
		handlers.NewArtistHandler(artistService, sessions, log),
		handlers.NewShowHandler(showService, sessions, log),
		handlers.NewUploadHandler(nil, log),
	)

	return &testEnv{
		app:     app,
		db:      db,
		venues:  venueRepo,
		artists: artistRepo,
		shows:   showRepo,
	}
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (e *testEnv) delete(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return string(body)
}
