// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"

	"github.com/MKhiriev/go-csv-delta/models"
)

// parseFlags parses a phase command line.
//
// Flags shared by every phase:
//
//	-hash hash function name
//	-hash-key key for keyed hash functions
//	-header-sentinel treat rows containing this text as headers
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
//
// Build:
//
//	-i/-input_csv input dataset
//	-o/-output_structure output structure
//	-strict-unique fail on duplicate rows
//
// Client check:
//
//	-ic/-input_csv input dataset
//	-is/-input_structure input structure
//	-oc/-output_csv pruned dataset
//	-os/-output_structure pruned structure
//
// Server check:
//
//	-ic/-input_csv original dataset
//	-is/-input_structure pruned structure
//	-o/-output_csv removed rows
func parseFlags(phase models.Phase, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet(phase.String(), flag.ContinueOnError)

	switch phase {
	case models.PhaseBuild:
		stringVar(fs, &cfg.Input.CSV, "Input dataset (CSV)", "i", "input_csv")
		stringVar(fs, &cfg.Output.Structure, "Output structure", "o", "output_structure")
		fs.BoolVar(&cfg.Dataset.StrictUnique, "strict-unique", false, "Fail on duplicate rows")
	case models.PhaseClientCheck:
		stringVar(fs, &cfg.Input.CSV, "Input dataset (CSV)", "ic", "input_csv")
		stringVar(fs, &cfg.Input.Structure, "Input structure", "is", "input_structure")
		stringVar(fs, &cfg.Output.CSV, "Output dataset (CSV)", "oc", "output_csv")
		stringVar(fs, &cfg.Output.Structure, "Output structure", "os", "output_structure")
	case models.PhaseServerCheck:
		stringVar(fs, &cfg.Input.CSV, "Input old dataset (CSV)", "ic", "input_csv")
		stringVar(fs, &cfg.Input.Structure, "Input pruned structure", "is", "input_structure")
		stringVar(fs, &cfg.Output.CSV, "Output removed entries (CSV)", "o", "output_csv")
	default:
		return nil, fmt.Errorf("unknown phase %d", phase)
	}

	fs.StringVar(&cfg.Hash.Func, "hash", "", "Hash function")
	fs.StringVar(&cfg.Hash.Key, "hash-key", "", "Key for keyed hash functions")
	fs.StringVar(&cfg.Dataset.HeaderSentinel, "header-sentinel", "", "Treat rows containing this text as headers")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	stringVar(fs, &cfg.JSONFilePath, "JSON config file path", "c", "config")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected argument %q", fs.Arg(0))
	}

	return cfg, nil
}

// stringVar registers p under every name in names.
func stringVar(fs *flag.FlagSet, p *string, usage string, names ...string) {
	for i, name := range names {
		if i > 0 {
			usage += " (alias)"
		}
		fs.StringVar(p, name, "", usage)
	}
}
