package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hglnd/certprobe/pkg/utils"
)

// defaultAllowedOrigins is used when ALLOWED_ORIGINS is not set.
var defaultAllowedOrigins = []string{
	"https://hglnd.se",
	"https://www.hglnd.se",
	"http://localhost:5173",
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("WARN: Error loading .env file, using environment variables from system if set.")
	}

	cityDBPath := os.Getenv("MMDB_CITY_PATH")
	asnDBPath := os.Getenv("MMDB_ASN_PATH")
	utils.LoadMaxMindDBs(cityDBPath, asnDBPath)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		utils.CloseMaxMindDBs()
		os.Exit(0)
	}()

	app, err := NewApp(ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	if err := app.Start(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ConfigFromEnv assembles the process-wide configuration once at startup.
// The origin allow-list is read-only after this point.
func ConfigFromEnv() Config {
	cfg := Config{AllowedOrigins: defaultAllowedOrigins}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		var origins []string
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}
	return cfg
}
