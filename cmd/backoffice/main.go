package main

import (
	"flag"
	"log"
	"os"

	"github.com/intlakaa/backoffice/internal/admin/app"
)

func main() {
	createOwner := flag.Bool("create-owner", false, "create the owner account interactively and exit")
	flag.Parse()

	cfg := app.LoadConfig()

	if *createOwner {
		if err := app.CreateOwner(cfg, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("failed to create owner: %v", err)
		}
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
