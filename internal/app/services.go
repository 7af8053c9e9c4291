// Package app provides service initialization.
package app

import (
	"github.com/labelforge/label-service/config"
	"github.com/labelforge/label-service/internal/label/codegen"
	"github.com/labelforge/label-service/internal/label/layout"
	"github.com/labelforge/label-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Composer service.LabelComposer
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.LabelConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.QRPayloadMode != "" {
		opts = append(opts, service.WithQRPayloadMode(codegen.ParseQRPayloadMode(cfg.QRPayloadMode)))
	}

	if cfg.DefaultCopies > 0 {
		opts = append(opts, service.WithDefaultCopies(cfg.DefaultCopies))
	}

	if cfg.BrandCaption != "" {
		layoutCfg := layout.DefaultConfig()
		layoutCfg.BrandCaption = cfg.BrandCaption
		opts = append(opts, service.WithLayoutConfig(layoutCfg))
	}

	composer := service.NewLabelComposerService(opts...)

	return &ServiceComponents{
		Composer: composer,
	}
}
