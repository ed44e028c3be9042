package routes

import (
	"gigbook/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	pages *handlers.PageHandler,
	venueHandler *handlers.VenueHandler,
	artistHandler *handlers.ArtistHandler,
	showHandler *handlers.ShowHandler,
	uploadHandler *handlers.UploadHandler,
) {
	app.Get("/", pages.Home)

	venues := app.Group("/venues")
	{
		venues.Get("/", venueHandler.ListVenues)
		venues.Post("/search", venueHandler.SearchVenues)
		venues.Get("/create", venueHandler.CreateVenueForm)
		venues.Post("/create", venueHandler.CreateVenue)
		venues.Get("/:id", venueHandler.ShowVenue)
		venues.Delete("/:id", venueHandler.DeleteVenue)
		venues.Get("/:id/edit", venueHandler.EditVenueForm)
		venues.Post("/:id/edit", venueHandler.EditVenue)
	}

	artists := app.Group("/artists")
	{
		artists.Get("/", artistHandler.ListArtists)
		artists.Post("/search", artistHandler.SearchArtists)
		artists.Get("/create", artistHandler.CreateArtistForm)
		artists.Post("/create", artistHandler.CreateArtist)
		artists.Get("/:id", artistHandler.ShowArtist)
		artists.Get("/:id/edit", artistHandler.EditArtistForm)
		artists.Post("/:id/edit", artistHandler.EditArtist)
	}

	shows := app.Group("/shows")
	{
		shows.Get("/", showHandler.ListShows)
		shows.Get("/create", showHandler.CreateShowForm)
		shows.Post("/create", showHandler.CreateShow)
	}

	upload := app.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
