package main

import (
	"context"
	"fmt"
	"os"

	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/yashkumarverma/cronphrase/src/catalog"
	"github.com/yashkumarverma/cronphrase/src/cronphrase"
	"github.com/yashkumarverma/cronphrase/src/translator"
	"github.com/yashkumarverma/cronphrase/src/utils"
	"github.com/yashkumarverma/cronphrase/src/utils/cache"
)

func main() {
	var (
		language     = pflag.StringP("lang", "l", "", "output language (en, es, fr)")
		format       = pflag.StringP("format", "f", "", "day name format (short, full, single, custom)")
		timeZone     = pflag.String("tz", "", "IANA time zone the times are shown in")
		settingsFile = pflag.String("settings", "", "YAML settings file")
		validate     = pflag.Bool("validate", false, "reject malformed expressions instead of describing them")
		samples      = pflag.Bool("samples", false, "describe the built-in sample schedules")
		useCache     = pflag.Bool("cache", false, "cache phrases in redis or valkey")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cronphrase [flags] <expression>...\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := utils.GetChildLogger(utils.NewLogger(), map[string]string{"run_id": uuid.New().String()})
	defer logger.Sync()
	ctx = utils.LoggerWithCtx(ctx, logger)

	config := utils.GetConfig(ctx)
	if pflag.CommandLine.Changed("lang") {
		config.Language = *language
	}
	if pflag.CommandLine.Changed("format") {
		config.DayNameFormat = *format
	}
	if pflag.CommandLine.Changed("tz") {
		config.TimeZone = *timeZone
	}
	if pflag.CommandLine.Changed("settings") {
		config.SettingsFile = *settingsFile
	}
	if *useCache {
		config.CacheEnabled = true
	}

	settings, err := config.Settings()
	if err != nil {
		logger.Fatalw("Failed to load settings", "error", err)
	}
	service, err := cronphrase.NewService(settings)
	if err != nil {
		logger.Fatalw("Invalid settings", "error", err)
	}
	loc, err := config.Location()
	if err != nil {
		logger.Fatalw("Invalid time zone", "error", err)
	}

	var store cache.Store
	if config.CacheEnabled {
		store, err = cache.NewClient(ctx, config)
		if err != nil {
			logger.Warnw("Cache unavailable, continuing without it", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}
	tr := translator.New(service, store, config.CacheTTL, logger)

	exprs := pflag.Args()
	if *samples {
		c := catalog.New()
		for _, name := range c.Names() {
			s, _ := c.Lookup(name)
			phrase, err := tr.Translate(ctx, s.Expression, loc)
			if err != nil {
				logger.Fatalw("Failed to describe sample", "sample", name, "error", err)
			}
			fmt.Printf("%-20s %-20s => %s\n", name, s.Expression, phrase)
		}
	}
	if len(exprs) == 0 && !*samples {
		pflag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, expr := range exprs {
		if *validate {
			if err := cronphrase.Validate(expr); err != nil {
				logger.Errorw("Rejected expression", "expression", expr, "error", err)
				failed = true
				continue
			}
		}
		phrase, err := tr.Translate(ctx, expr, loc)
		if err != nil {
			logger.Fatalw("Failed to describe expression", "expression", expr, "error", err)
		}
		fmt.Printf("%s => %s\n", expr, phrase)
	}
	if failed {
		os.Exit(1)
	}
}
