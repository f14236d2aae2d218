// Command snapshot captures research entries into the shared snapshot cache.
// It is the out-of-band writer for the read-only cache the API serves from.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"

	"reselleros/internal/infra"
	"reselleros/internal/research"
)

func main() {
	var (
		source = flag.String("source", "", "source name the entries were captured from")
		topic  = flag.String("topic", "", "research topic the entries belong to")
		file   = flag.String("file", "-", "JSON file holding an array of records, or - for stdin")
	)
	flag.Parse()

	_ = godotenv.Load()
	logger := infra.NewLogger(os.Getenv("APP_ENV"))

	var (
		data []byte
		err  error
	)
	if *file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*file)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read input")
	}

	var records []research.Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Fatal().Err(err).Msg("input is not a JSON array of records")
	}

	dir := os.Getenv("RESEARCH_CACHE_DIR")
	if dir == "" {
		dir = "data/research"
	}
	store, err := research.NewStore(dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open snapshot store")
	}
	key, err := store.SaveSnapshot(*source, *topic, records)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to write snapshot")
	}
	logger.Info().Str("key", key).Int("records", len(records)).Msg("snapshot written")
}
