package database

import (
	"event_agenda/model"
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "admin", Password: hashPassword, Active: true, IsStaff: true},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	categories := []model.EventCategory{
		{Name: "Concert"},
		{Name: "Conference"},
		{Name: "Workshop"},
		{Name: "Exhibition"},
	}
	for i := range categories {
		if err := db.Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	tags := []model.Tag{
		{Name: "Festival"},
		{Name: "Private"},
	}
	for i := range tags {
		tags[i].Slug = slug.Make(tags[i].Name)
		if err := db.Where(model.Tag{Slug: tags[i].Slug}).FirstOrCreate(&tags[i]).Error; err != nil {
			log.Println("failed to seed tag:", tags[i].Name, "error:", err)
		}
	}
}
