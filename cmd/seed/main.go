package main

import (
	"context"
	"log"
	"os"
	"time"

	"meetslot/internal/database"
	"meetslot/internal/domain"
	"meetslot/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "meetslot.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM user_time_intervals")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	intervals := repository.NewIntervalRepository(db)
	bookings := repository.NewBookingRepository(db)

	log.Println("Creating demo user...")
	demo := &domain.User{Username: "john-doe", Name: "John Doe"}
	if err := users.Create(ctx, demo); err != nil {
		log.Fatal(err)
	}

	// Monday to Friday, 09:00-18:00
	weekly := make([]domain.WeekDayInterval, 0, 5)
	for day := 1; day <= 5; day++ {
		weekly = append(weekly, domain.WeekDayInterval{
			WeekDay:            day,
			StartTimeInMinutes: 9 * 60,
			EndTimeInMinutes:   18 * 60,
		})
	}
	if err := intervals.ReplaceForUser(ctx, demo.ID, weekly); err != nil {
		log.Fatal(err)
	}

	// one sample booking next week at 10:00
	slot := time.Now().AddDate(0, 0, 7)
	slot = time.Date(slot.Year(), slot.Month(), slot.Day(), 10, 0, 0, 0, slot.Location())
	if err := bookings.Create(ctx, &domain.Booking{
		UserID:       demo.ID,
		Date:         slot,
		Name:         "Jane Visitor",
		Email:        "jane@example.com",
		Observations: "Kickoff call",
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete: user john-doe with Mon-Fri 09:00-18:00 availability")
}
