package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"gardiendutemps.fr/gardien/config"
	"gardiendutemps.fr/gardien/core"
	"gardiendutemps.fr/gardien/model"
	"gardiendutemps.fr/gardien/notify"
	"gardiendutemps.fr/gardien/store"
	"gardiendutemps.fr/gardien/utils"
)

// dayclose scans one day's entries for every user and reports incomplete days
// (missing departure, break left open) to Slack. Run it nightly after the last
// shift ends.
func main() {
	dateStr := flag.String("date", "", "Date to process (YYYY-MM-DD). Defaults to yesterday.")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("GARDIEN_CONFIG"))
	if err != nil {
		panic(err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		panic(err)
	}

	var targetDate time.Time
	if *dateStr != "" {
		targetDate, err = time.ParseInLocation(utils.DateLayout, *dateStr, loc)
		if err != nil {
			panic(fmt.Sprintf("Invalid date format: %v", err))
		}
	} else {
		targetDate = time.Now().In(loc).AddDate(0, 0, -1)
	}

	fmt.Printf("Closing day: %s\n", targetDate.Format(utils.DateLayout))

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/gardien?parseTime=true"
	}

	dm, err := store.New(dsn, cfg.MaxConnections)
	if err != nil {
		panic(err)
	}
	defer dm.Close()

	if err := Run(context.Background(), dm, loc, targetDate); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func Run(ctx context.Context, dm *store.DatabaseManager, loc *time.Location, date time.Time) error {
	dateKey := date.Format(utils.DateLayout)

	fmt.Println("Fetching users...")
	var users []model.User
	if err := dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Find(&users).Error
	}); err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}

	userMap := make(map[int32]model.User)
	for _, u := range users {
		userMap[u.UserID] = u
	}

	fmt.Println("Fetching entries...")
	var entries []model.TimeEntry
	if err := dm.Exec(ctx, func(db *gorm.DB) error {
		return db.Where("date_time >= ? AND date_time < ?",
			dateKey, date.AddDate(0, 0, 1).Format(utils.DateLayout)).
			Find(&entries).Error
	}); err != nil {
		return fmt.Errorf("failed to fetch time entries: %w", err)
	}

	byUser := utils.GroupBy(entries, func(e model.TimeEntry) int32 { return e.UserID })

	var anomalies []notify.Anomaly
	for userID, userEntries := range byUser {
		events, skipped := core.FromEntries(userEntries, loc)
		if skipped > 0 {
			fmt.Printf("Warning: skipped %d malformed entries for user %d\n", skipped, userID)
		}

		bucket := core.GroupByDay(events)[dateKey]
		if len(bucket) == 0 {
			continue
		}

		day := core.ReconstructDay(dateKey, bucket)
		if day.IsComplete {
			continue
		}

		name := fmt.Sprintf("user %d", userID)
		if u, ok := userMap[userID]; ok {
			name = u.FirstName + " " + u.Surname
		}
		anomalies = append(anomalies, notify.Anomaly{
			UserID: userID,
			Name:   name,
			Day:    day,
		})
	}

	fmt.Printf("Found %d anomalies\n", len(anomalies))

	slack := notify.ConnectSlack()
	if err := slack.DayCloseReport(dateKey, anomalies); err != nil {
		return fmt.Errorf("failed to post day close report: %w", err)
	}

	fmt.Println("Done.")
	return nil
}
