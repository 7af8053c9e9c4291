// Package main is the entry point for the label-service application.
//
// @title           Label Service API
// @version         1.0.0
// @description     API for composing printable label documents for warehouse orders.
//
//	The service renders one sticker page per product (QR code, barcode and SKU
//	text on a 58x40mm canvas) and merges the stickers with the caller-supplied
//	marketplace label PDF into a single printable document.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/labelforge/label-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Labels
// @tag.description Label composition operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/labelforge/label-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/labelforge/label-service/config"
	"github.com/labelforge/label-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
