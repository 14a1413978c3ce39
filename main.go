package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"tailorbook-backend/config"
	"tailorbook-backend/routes"
	"tailorbook-backend/services"
	"tailorbook-backend/store"
	"tailorbook-backend/utils"
)

func main() {
	hashPassword := flag.String("hash-password", "", "print an OWNER_PASSWORD_HASH line for the given password and exit")
	flag.Parse()
	if *hashPassword != "" {
		if err := printPasswordHash(os.Stdout, *hashPassword); err != nil {
			log.Fatalf("hash password: %v", err)
		}
		return
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	st := store.New(cfg.SeedSampleData)

	var notifier services.Notifier = services.LogNotifier{}
	if cfg.Twilio.Enabled() {
		notifier = services.NewTwilioNotifier(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.PhoneNumber,
			cfg.Twilio.WhatsAppNumber,
		)
	} else {
		log.Println("[REMINDER] Twilio not configured, reminders will only be logged")
	}
	reminders := services.NewReminderService(st.Orders, st.Settings, notifier)
	if err := reminders.StartScheduler(cfg.ReminderSchedule); err != nil {
		log.Fatalf("reminder scheduler: %v", err)
	}
	defer reminders.Stop()

	var archiver services.Archiver
	if cfg.DatabaseURL != "" {
		db, err := config.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("backups: %v", err)
		}
		archiver = services.NewGormArchiver(db)
	}
	backups := services.NewBackupService(st, archiver)
	if err := backups.Start(); err != nil {
		log.Fatalf("backup scheduler: %v", err)
	}
	defer backups.Stop()

	if !cfg.AuthEnabled() {
		log.Println("JWT_SECRET not set, API is open")
	}

	r := routes.SetupRouter(routes.Deps{
		Config:    cfg,
		Store:     st,
		Reminders: reminders,
		Backups:   backups,
	})
	printRoutes(r)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Printf("server stopped: %v", err)
	}
}

// printPasswordHash writes the env line that enables owner login.
func printPasswordHash(w io.Writer, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "OWNER_PASSWORD_HASH=%s\n", hash)
	return err
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
