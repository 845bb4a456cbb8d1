// Ежедневная рассылка сводок бронирований. Запускается по cron:
//
//	digest [YYYY-MM-DD]
//
// Без аргумента рассылает сводки за сегодняшнюю дату (UTC).
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/dkomnin/APEC-BookingService/internal/config"
	bookingRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/booking"
	"github.com/dkomnin/APEC-BookingService/internal/mailer"
	"github.com/dkomnin/APEC-BookingService/pkg/logger"
)

func main() {
	// .env опционален: секреты SMTP удобнее держать вне config.toml
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Переменные окружения перекрывают config.toml
	applyEnvOverrides(&cfg.SMTP)

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	date := time.Now().UTC().Format("2006-01-02")
	if len(os.Args) > 1 {
		date = os.Args[1]
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		log.Fatal("Invalid date %q, expected YYYY-MM-DD", date)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	m, err := mailer.New(cfg.SMTP, bookingRepo.NewRepository(db), log)
	if err != nil {
		log.Fatal("Failed to init mailer: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent, err := m.SendDailyDigest(ctx, date)
	if err != nil {
		log.Fatal("Digest run failed: %v", err)
	}

	fmt.Printf("sent %d digests for %s\n", sent, date)
}

// applyEnvOverrides подставляет SMTP настройки из окружения, если заданы
func applyEnvOverrides(smtp *config.SMTPConfig) {
	if host := os.Getenv("SMTP_HOST"); host != "" {
		smtp.Host = host
	}
	if user := os.Getenv("SMTP_USER"); user != "" {
		smtp.Username = user
	}
	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		smtp.Password = pass
	}
	if from := os.Getenv("MAIL_FROM"); from != "" {
		smtp.MailFrom = from
	}
}
