// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jsonchk validates JSON documents with the jparse engine and
// reports the exact position of the first error in each. With no
// arguments it reads a single document from stdin; otherwise each
// argument is a file containing one document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/bigdec"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Parsing options
	keyPolicy := flag.String("keys", "raw", "Object key policy (raw, validated-intern, always-intern)")
	knownKeys := flag.String("known", "", "Comma-separated known keys for the validated-intern policy")
	useDecimal := flag.Bool("decimal", false, "Parse fractional numbers as exact decimals")
	maxDepth := flag.Int("max-depth", 10000, "Maximum nesting depth (0 for unlimited)")

	// Logging options
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := flag.Bool("pretty", false, "Enable pretty logging output")

	flag.Parse()

	setupLogging(*logLevel, *prettyLogs)

	opts, err := parseOptions(*keyPolicy, *knownKeys, *useDecimal, *maxDepth)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid options")
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	failed := 0
	for _, name := range files {
		if !check(name, opts) {
			failed++
		}
	}
	if failed > 0 {
		log.Error().Int("failed", failed).Int("total", len(files)).Msg("Validation failed")
		os.Exit(1)
	}
	log.Debug().Int("total", len(files)).Msg("All inputs valid")
}

// check parses the named input and reports whether it is valid,
// logging the classified error and its position if it is not.
func check(name string, opts []jparse.Option) bool {
	data, err := readInput(name)
	if err != nil {
		log.Error().Err(err).Str("input", name).Msg("Read failed")
		return false
	}

	v, err := jparse.Parse(data, opts...)
	if err != nil {
		var pe *jparse.ParseError
		if errors.As(err, &pe) {
			log.Error().
				Str("input", name).
				Stringer("code", pe.Code).
				Int("offset", pe.Offset).
				Int("line", pe.Pos.Line).
				Int("column", pe.Pos.Column).
				Int("codePoint", pe.Pos.CodePoint).
				Str("fragment", pe.Raw).
				Msg("Invalid JSON")
		} else {
			log.Error().Err(err).Str("input", name).Msg("Parse failed")
		}
		return false
	}

	log.Info().
		Str("input", name).
		Stringer("kind", v.Kind()).
		Int("bytes", len(data)).
		Msg("Valid JSON")
	return true
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// parseOptions translates flag settings into jparse options.
func parseOptions(keys, known string, useDecimal bool, maxDepth int) ([]jparse.Option, error) {
	opts := []jparse.Option{jparse.OptMaxDepth(maxDepth)}

	switch keys {
	case "raw":
		// default policy
	case "validated-intern":
		opts = append(opts, jparse.OptKeys(jparse.KeyValidated))
		if known != "" {
			opts = append(opts, jparse.OptKnownKeys(splitComma(known)...))
		}
	case "always-intern":
		opts = append(opts, jparse.OptKeys(jparse.KeyIntern))
	default:
		return nil, fmt.Errorf("unknown key policy %q", keys)
	}

	if useDecimal {
		opts = append(opts,
			jparse.OptNumeric(jparse.NumDecimal),
			jparse.OptDecimalMaker(bigdec.Maker{}),
		)
	}
	return opts, nil
}

func splitComma(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// setupLogging configures zerolog based on the provided options.
func setupLogging(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
