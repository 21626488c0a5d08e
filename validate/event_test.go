package validate

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"event_agenda/database"
	"event_agenda/helper"
	"event_agenda/middleware"
	"event_agenda/model"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupEventEditTest(t *testing.T) (*fiber.App, string, *gorm.DB) {
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
	app.Put("/event/:eventId", middleware.Protected(), EditEvent("eventId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, token, db
}

func seedEvent(t *testing.T, db *gorm.DB, slug string, parentId *uint) model.Event {
	t.Helper()
	event := model.Event{
		Slug:     slug,
		Title:    slug,
		Status:   model.StatusDraft,
		Start:    time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC),
		UserId:   1,
		ParentId: parentId,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("seed event %s: %v", slug, err)
	}
	return event
}

func putEventParent(t *testing.T, app *fiber.App, token string, eventId, parentId uint) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPut,
		fmt.Sprintf("/event/%d", eventId),
		strings.NewReader(fmt.Sprintf(`{"parentId": %d}`, parentId)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func TestEditEventParentNesting(t *testing.T) {
	app, token, db := setupEventEditTest(t)

	parent := seedEvent(t, db, "recurring-concert", nil)
	child := seedEvent(t, db, "recurring-concert-night-two", &parent.ID)
	target := seedEvent(t, db, "one-off-show", nil)

	// An event cannot become its own parent.
	if status := putEventParent(t, app, token, target.ID, target.ID); status != fiber.StatusBadRequest {
		t.Errorf("self parent: status = %d, want 400", status)
	}

	// Nor the child of another child: nesting is one level deep, which also
	// keeps derivation cycle-free.
	if status := putEventParent(t, app, token, target.ID, child.ID); status != fiber.StatusBadRequest {
		t.Errorf("child as parent: status = %d, want 400", status)
	}

	// A top-level parent is accepted.
	if status := putEventParent(t, app, token, target.ID, parent.ID); status != fiber.StatusOK {
		t.Errorf("valid parent: status = %d, want 200", status)
	}

	// An unknown parent id is rejected.
	if status := putEventParent(t, app, token, target.ID, 9999); status != fiber.StatusBadRequest {
		t.Errorf("unknown parent: status = %d, want 400", status)
	}
}
