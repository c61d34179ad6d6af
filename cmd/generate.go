package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/sampledata/internal/config"
	"github.com/Lumos-Labs-HQ/sampledata/internal/report"
	"github.com/Lumos-Labs-HQ/sampledata/internal/seeder"
	"github.com/fatih/color"
)

func runGenerate(ctx context.Context, variant config.Variant) error {
	if configErr != nil {
		return fmt.Errorf("failed to read config: %w", configErr)
	}

	cfg, err := config.Load(variant)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s, err := seeder.NewSeeder(cfg)
	if err != nil {
		return err
	}

	showBanner(bannerTitle(variant), cfg.ReferenceDate)

	order, err := s.StageNames()
	if err != nil {
		return err
	}
	color.Cyan("Generation order: %s", order)

	summary, err := s.Run(ctx)
	if err != nil {
		return err
	}

	report.Print(color.Output, *summary)
	return nil
}
