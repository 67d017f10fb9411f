package main

import (
	"log"
	"os"

	"schoolhub-be/internal/mapper"
	"schoolhub-be/internal/model"
	"schoolhub-be/pkg/database"
	"schoolhub-be/pkg/navigation"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Feature Catalog...")

	// The default SchoolHub feature catalog. Keys derive routing slugs,
	// so they are lowercase words joined with underscores.
	features := []navigation.Feature{
		{
			Id: uuid.New(), Key: "staff_management", Name: "Staff Management",
			Description: "Manage teaching and non-teaching staff records", SortOrder: 1, IsActive: true,
			DefaultMenuLinks: []navigation.MenuLink{
				{Name: "Dashboard", Href: "/staff/dashboard", Icon: "users", Enabled: true},
				{Name: "Roster", Href: "/staff/roster", Icon: "calendar", Enabled: true},
				{Name: "Leave Requests", Href: "/staff/leave", Icon: "clock", Enabled: true},
			},
		},
		{
			Id: uuid.New(), Key: "timetable", Name: "Timetable",
			Description: "Class schedules and room allocation", SortOrder: 2, IsActive: true,
			DefaultMenuLinks: []navigation.MenuLink{
				{Name: "Dashboard", Href: "/timetable/dashboard", Icon: "grid", Enabled: true},
				{Name: "Rooms", Href: "/timetable/rooms", Icon: "map-pin", Enabled: true},
			},
		},
		{
			Id: uuid.New(), Key: "fees", Name: "Fees & Billing",
			Description: "Invoices, payments and fee schedules", SortOrder: 3, IsActive: true,
			DefaultMenuLinks: []navigation.MenuLink{
				{Name: "Dashboard", Href: "/fees/dashboard", Icon: "credit-card", Enabled: true},
				{Name: "Invoices", Href: "/fees/invoices", Icon: "file-text", Enabled: true},
				{Name: "Reminders", Href: "/fees/reminders", Icon: "bell", Enabled: false},
			},
		},
		{
			Id: uuid.New(), Key: "library", Name: "Library",
			Description: "Book catalog and loan tracking", SortOrder: 4, IsActive: true,
			DefaultMenuLinks: []navigation.MenuLink{
				{Name: "Dashboard", Href: "/library/dashboard", Icon: "book", Enabled: true},
				{Name: "Catalog", Href: "/library/catalog", Icon: "search", Enabled: true},
				{Name: "Loans", Href: "/library/loans", Icon: "repeat", Enabled: true},
			},
		},
		{
			Id: uuid.New(), Key: "examinations", Name: "Examinations",
			Description: "Exam planning, grading and report cards", SortOrder: 5, IsActive: true,
			DefaultMenuLinks: []navigation.MenuLink{
				{Name: "Dashboard", Href: "/exams/dashboard", Icon: "award", Enabled: true},
				{Name: "Grading", Href: "/exams/grading", Icon: "edit", Enabled: true},
			},
		},
		{
			Id: uuid.New(), Key: "announcements", Name: "Announcements",
			Description: "School-wide notices for staff", SortOrder: 6, IsActive: true,
			DefaultMenuLinks: []navigation.MenuLink{
				{Name: "Dashboard", Href: "/announcements/dashboard", Icon: "megaphone", Enabled: true},
			},
		},
	}

	// Refuse to seed a broken catalog.
	if err := navigation.ValidateCatalog(features); err != nil {
		log.Fatalf("Error: seed catalog is invalid: %v", err)
	}

	featureMapper := mapper.NewFeatureMapper()

	for i := range features {
		f := &features[i]

		var existing model.Feature
		if err := db.Where("key = ?", f.Key).First(&existing).Error; err == nil {
			color.Yellow("Feature '%s' already exists, skipping...", f.Key)
			continue
		}

		m, err := featureMapper.ToModel(f)
		if err != nil {
			color.Red("Error encoding feature '%s': %v", f.Key, err)
			continue
		}

		if err := db.Create(m).Error; err != nil {
			color.Red("Error creating feature '%s': %v", f.Key, err)
		} else {
			color.Green("Created feature: %s (%s)", f.Name, f.Key)
		}
	}

	color.Cyan("Feature seeding completed!")
}
