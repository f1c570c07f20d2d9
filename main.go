package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/jonnyallum/construct.fm-estimate-generator/cli"
	"github.com/jonnyallum/construct.fm-estimate-generator/config"
	"github.com/jonnyallum/construct.fm-estimate-generator/handlers"
	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	cat := services.DefaultCatalogue()

	app := pocketbase.New()

	// rates, estimate and export run alongside PocketBase's own serve command.
	cli.Register(app.RootCmd, cat, cfg)

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		log.Printf("Serving rate card with %d categories, templates from %s", len(cat.Categories()), cfg.TemplatesDir)
		handlers.RegisterRoutes(se.Router, cat, cfg)
		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
