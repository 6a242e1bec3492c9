// Command discussion-urls reads Steam application IDs from a text file,
// determines how many pages of discussion search results exist for each ID,
// and writes every corresponding page URL to a tabular output file.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"discussion-urls/pkg/appids"
	"discussion-urls/pkg/db"
	"discussion-urls/pkg/discussions"
	"discussion-urls/pkg/httpclient"
	"discussion-urls/pkg/logging"
	"discussion-urls/pkg/output"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("discussion-urls", flag.ExitOnError)
	idsPath := flags.String("ids", "ids.txt", "path to the text file containing Steam app IDs")
	outputPath := flags.String("output", "steam_discussion_urls.csv", "path to the output file (.csv or .xlsx)")
	userAgent := flags.String("user-agent", httpclient.DefaultUserAgent, "User-Agent header to send with HTTP requests")
	timeout := flags.Duration("timeout", 30*time.Second, "timeout for HTTP requests")
	delay := flags.Duration("delay", 0, "optional delay between requests to avoid rate limits")
	postgresDSN := flags.String("postgres-dsn", "", "optional Postgres DSN to additionally store the generated URLs")
	logLevel := flags.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	logging.Setup(logging.Config{Level: *logLevel, Pretty: true})

	appIDs, err := appids.ReadFile(*idsPath)
	if err != nil {
		log.Error().Err(err).Str("path", *idsPath).Msg("cannot read app IDs")
		return 1
	}
	if len(appIDs) == 0 {
		log.Error().Str("path", *idsPath).Msg("no valid app IDs found")
		return 1
	}

	ctx := context.Background()

	writer, err := buildWriter(ctx, *outputPath, *postgresDSN)
	if err != nil {
		log.Error().Err(err).Msg("cannot open output")
		return 1
	}

	client := httpclient.NewClient(httpclient.Config{
		UserAgent: *userAgent,
		Timeout:   *timeout,
	})
	generator := discussions.NewGenerator(discussions.NewDocumentFetcher(client), discussions.Config{
		Timeout: *timeout,
		Delay:   *delay,
	})

	rows := 0
	for rec := range generator.Generate(ctx, appIDs) {
		if err := writer.Write(ctx, rec); err != nil {
			log.Error().Err(err).Str("app_id", rec.AppID).Msg("cannot write record")
			_ = writer.Close()
			return 1
		}
		rows++
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("cannot finalize output")
		return 1
	}

	log.Info().
		Int("app_ids", len(appIDs)).
		Int("rows", rows).
		Str("output", *outputPath).
		Msg("wrote discussion URLs")
	return 0
}

// buildWriter opens the file sink and, when a DSN is given, a Postgres sink
// fanned out behind it.
func buildWriter(ctx context.Context, path, postgresDSN string) (output.Writer, error) {
	fileWriter, err := output.NewFileWriter(path)
	if err != nil {
		return nil, err
	}
	if postgresDSN == "" {
		return fileWriter, nil
	}

	pgWriter, err := output.NewPostgresWriter(ctx, db.NewPostgresClient(db.PostgresConfig{DSN: postgresDSN}))
	if err != nil {
		_ = fileWriter.Close()
		return nil, err
	}
	return output.NewMultiWriter(fileWriter, pgWriter), nil
}
