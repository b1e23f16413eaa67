package main

import (
	"context"
	"flag"
	"os"
	"time"

	"pizzaorder/cmd"
	"pizzaorder/internal/pkg/logger"

	"github.com/labstack/gommon/log"
)

type flags struct {
	address cmd.AddressInput
	track   string
	watch   time.Duration
	envFile string
}

func main() {
	f := parseFlags()

	cfg, err := cmd.LoadConfig(f.envFile)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLog, err := cmd.NewLogger(cfg, logger.NewSessionID())
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	root, err := cmd.NewCompositionRoot(cfg, appLog, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	ctx, stop := cmd.InterruptContext(context.Background(), f.track != "" && f.watch > 0)

	appLog.Infow("session started", "track", f.track != "", "base_url", cfg.PizzaAPI.BaseURL)
	if f.track != "" {
		err = cmd.TrackOrders(ctx, &root, f.track, f.watch)
	} else {
		err = cmd.PlaceOrder(ctx, &root, f.address)
	}
	code := cmd.Finish(root.Console(), appLog, err)

	stop()
	if err = cmd.SyncLogger(appLog); err != nil {
		log.Warnf("Error flushing log: %v", err)
	}
	os.Exit(code)
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.address.Street, "address", "", "street address for delivery")
	flag.StringVar(&f.address.City, "city", "", "city")
	flag.StringVar(&f.address.Province, "province", "", "province or region")
	flag.StringVar(&f.address.PostalCode, "postal_code", "", "postal code")
	flag.StringVar(&f.track, "track", "", "track the orders placed with this phone number instead of ordering")
	flag.DurationVar(&f.watch, "watch", 0, "with -track, poll the tracker at this interval until every order is complete")
	flag.StringVar(&f.envFile, "env-file", "", "env file to load (default .env when present)")
	flag.Parse()
	return f
}
