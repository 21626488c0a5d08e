package handler

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/middleware"
	"event_agenda/model"
	"event_agenda/validate"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func setupLocationTest(t *testing.T) (*fiber.App, string, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	helper.JwtSecret = []byte("test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.Account{},
		&model.EventLocation{},
		&model.EventCategory{},
		&model.EventPrice{},
		&model.Season{},
		&model.Tag{},
		&model.Event{},
		&model.EventPeriod{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	account := model.Account{Username: "editor", Password: "x", Active: true, IsStaff: true}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		IsStaff:   true,
	})
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	app := fiber.New()
	app.Put("/location/:locationId", middleware.Protected(), validate.EditLocation("locationId"), EditLocation)
	return app, token, db
}

func putLocation(t *testing.T, app *fiber.App, token string, id uint, body string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPut,
		fmt.Sprintf("/location/%d", id), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func TestEditLocationRenameInvalidatesDayIndex(t *testing.T) {
	app, token, db := setupLocationTest(t)

	mr := miniredis.RunT(t)
	database.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.Redis = nil })

	lat, lon := 48.8566, 2.3522
	location := model.EventLocation{
		Slug:    "old-hall",
		Title:   "Old Hall",
		Address: "1 Concert Way",
		Lat:     &lat,
		Lon:     &lon,
	}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	if err := mr.Set("agenda:daypicker:Old Hall", "[]"); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	if status := putLocation(t, app, token, location.ID, `{"title":"New Hall"}`); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var saved model.EventLocation
	if err := db.First(&saved, location.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.Title != "New Hall" {
		t.Errorf("title = %q, want %q", saved.Title, "New Hall")
	}
	if saved.Slug == "old-hall" {
		t.Error("slug must be regenerated on rename")
	}

	// The cached index is keyed by the old title, a rename must drop it.
	if mr.Exists("agenda:daypicker:Old Hall") {
		t.Error("stale day index survived the rename")
	}
}

func TestEditLocationRejectsHalfCoordinatePair(t *testing.T) {
	app, token, db := setupLocationTest(t)

	lat, lon := 48.8566, 2.3522
	location := model.EventLocation{
		Slug:    "hall",
		Title:   "Hall",
		Address: "1 Concert Way",
		Lat:     &lat,
		Lon:     &lon,
	}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}

	// The merged pair stays complete when only one coordinate is replaced.
	if status := putLocation(t, app, token, location.ID, `{"lat": 50.0}`); status != fiber.StatusOK {
		t.Fatalf("replacing one coordinate of a full pair: status = %d, want 200", status)
	}

	bare := model.EventLocation{Slug: "annex", Title: "Annex", Address: "2 Concert Way"}
	if err := db.Create(&bare).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	if status := putLocation(t, app, token, bare.ID, `{"lat": 50.0}`); status != fiber.StatusBadRequest {
		t.Fatalf("latitude without longitude: status = %d, want 400", status)
	}
}
