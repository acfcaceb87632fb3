package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/laroch02/photokml/internal/config"
	"github.com/laroch02/photokml/internal/kml"
	"github.com/laroch02/photokml/internal/logger"
	"github.com/laroch02/photokml/internal/scanner"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string  `short:"c" long:"config"       env:"CONFIG_FILE"  description:"Path to configuration file"`
	InputPaths  string  `short:"i" long:"input"        env:"INPUT_PATHS"  description:"Folders to scan for geotagged images, semicolon separated"`
	Output      string  `short:"o" long:"output"       env:"OUTPUT_FILE"  description:"Output KML file"`
	MinDistance float64 `short:"d" long:"min-distance" env:"MIN_DISTANCE" description:"Minimum distance in meters between exported placemarks" default:"0"`
	Name        string  `short:"n" long:"name"         description:"Map name (defaults to the output file name)"`
	Description string  `long:"description"  description:"Map description"`
	Compact     bool    `long:"compact"      description:"Minify the KML output instead of pretty-printing"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := &config.Config{}
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	// CLI values win over config file values
	folders := cfg.Folders
	if opts.InputPaths != "" {
		folders = strings.Split(opts.InputPaths, ";")
	}
	if len(folders) == 0 {
		log.Fatal().Msg("No input folders given, use --input or the config file")
	}

	output := cfg.Output
	if opts.Output != "" {
		output = opts.Output
	}
	if output == "" {
		log.Fatal().Msg("No output file given, use --output or the config file")
	}
	output = kml.NormalizeExtension(output)

	minDistance := cfg.MinDistance
	if opts.MinDistance > 0 {
		minDistance = opts.MinDistance
	}

	mapName := cfg.Name
	if opts.Name != "" {
		mapName = opts.Name
	}
	if mapName == "" {
		mapName = filepath.Base(output)
	}

	description := cfg.Description
	if opts.Description != "" {
		description = opts.Description
	}

	store := kml.NewStore()
	for _, folder := range folders {
		tags, err := scanner.ScanFolder(folder)
		if err != nil {
			log.Error().Err(err).Str("folder", folder).Msg("Failed to scan folder")
			continue
		}
		for _, tag := range tags {
			store.Add(tag.Lat, tag.Lon, tag.Path, folder)
		}
	}

	if store.Len() == 0 {
		log.Fatal().Msg("No GPS info found in any folder, aborting")
	}

	log.Info().
		Int("placemarks", store.Len()).
		Float64("min_distance_m", minDistance).
		Msg("Placemarks imported")

	store.Reorder()
	store.Filter(minDistance)

	doc, emitted, err := kml.Build(store, mapName, description)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build KML document")
	}

	var text string
	if opts.Compact || cfg.Compact {
		text = kml.Compact(doc)
	} else {
		text = kml.Render(doc)
	}

	if err := kml.WriteFile(output, text); err != nil {
		log.Fatal().Err(err).Str("path", output).Msg("Failed to write KML file")
	}

	log.Info().
		Str("path", output).
		Int("placemarks_exported", emitted).
		Msg("KML exported successfully")
}
