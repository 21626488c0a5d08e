package router

import (
	"event_agenda/handler"
	"event_agenda/middleware"
	"event_agenda/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	event := v1.Group("/event", logger.New())
	event.Get("/", middleware.OptionalJWT(), handler.GetEvents)
	event.Get("/calendar-days", handler.GetCalendarDays)
	event.Get("/ical", middleware.OptionalJWT(), handler.GetICalFeed)
	event.Get("/:slug", middleware.OptionalJWT(), handler.GetEventBySlug)
	event.Get("/:slug/booking", middleware.OptionalJWT(), handler.GetEventBooking)
	event.Get("/:slug/ical", middleware.OptionalJWT(), handler.GetEventICal)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:eventId", middleware.Protected(), validate.EditEvent("eventId"), handler.EditEvent)
	event.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteEvent)
	event.Post("/:eventId/brochure", middleware.Protected(), validate.GetById("eventId"), handler.UploadEventBrochure)

	archive := v1.Group("/archive", logger.New())
	archive.Get("/", middleware.OptionalJWT(), handler.GetArchive)
	archive.Get("/:year", middleware.OptionalJWT(), handler.GetArchiveYear)

	location := v1.Group("/location", logger.New())
	location.Get("/", handler.GetLocations)
	location.Get("/:slug", handler.GetLocationBySlug)
	location.Post("/", middleware.Protected(), validate.CreateLocation(), handler.CreateLocation)
	location.Put("/:locationId", middleware.Protected(), validate.EditLocation("locationId"), handler.EditLocation)
	location.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteLocation)

	category := v1.Group("/category", logger.New())
	category.Get("/", handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.EditCategory("categoryId"), handler.EditCategory)
	category.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCategory)

	price := v1.Group("/price", logger.New())
	price.Get("/", handler.GetPrices)
	price.Post("/", middleware.Protected(), validate.CreatePrice(), handler.CreatePrice)
	price.Put("/:priceId", middleware.Protected(), validate.EditPrice("priceId"), handler.EditPrice)
	price.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePrice)

	tag := v1.Group("/tag", logger.New())
	tag.Get("/", handler.GetTags)
	tag.Post("/", middleware.Protected(), validate.CreateTag(), handler.CreateTag)
	tag.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTag)
}
