// Command migrate applies the SQL migrations in migrations/ to the database
// named by the environment, using the atlas CLI through its Go SDK.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"

	"resource-booking-api/internal/pkg/config"
)

func main() {
	dirFlag := flag.String("dir", "file://migrations", "migration directory URL")
	dryRunFlag := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(context.Background(), *dirFlag, *dryRunFlag); err != nil {
		slog.Error("migrate failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, dirURL string, dryRun bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: dirURL,
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
	)
	return nil
}
