// Copyright 2026 The Hardhat Authors
// This file is part of Hardhat.
//
// Hardhat is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hardhat is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Hardhat. If not, see <http://www.gnu.org/licenses/>.

// hardhat-diag decodes execution traces and build reports from the
// command line: the same pipeline the toolchain runs in-process, exposed
// for debugging fixtures and build directories.
package main

import (
	"fmt"
	"os"

	"github.com/erigontech/erigon-lib/common/hexutility"
	"github.com/erigontech/erigon-lib/log/v3"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/dapcigar/hardhat/artifacts"
	"github.com/dapcigar/hardhat/returndata"
	"github.com/dapcigar/hardhat/stacktrace"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var verbosityFlag = &cli.StringFlag{
	Name:  "verbosity",
	Usage: "log level: trace, debug, info, warn, error, crit",
	Value: "info",
}

func main() {
	app := &cli.App{
		Name:  "hardhat-diag",
		Usage: "decode Solidity execution traces and compilation build reports",
		Flags: []cli.Flag{verbosityFlag},
		Commands: []*cli.Command{
			stackTraceCmd,
			returnDataCmd,
			artifactsCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(cliCtx *cli.Context) (log.Logger, error) {
	lvl, err := log.LvlFromString(cliCtx.String(verbosityFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("bad verbosity: %w", err)
	}
	logger := log.New()
	logger.SetHandler(log.LvlFilterHandler(lvl, log.StderrHandler))
	return logger, nil
}

var stackTraceCmd = &cli.Command{
	Name:      "stacktrace",
	Usage:     "encode a trace JSON file into a diagnostic and print it",
	ArgsUsage: "<trace.json>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "fallback",
			Usage: "message to use when the trace has no message rule",
			Value: "Transaction failed without a known reason",
		},
	},
	Action: func(cliCtx *cli.Context) error {
		if cliCtx.NArg() != 1 {
			return fmt.Errorf("expected exactly one trace file argument")
		}
		data, err := os.ReadFile(cliCtx.Args().First())
		if err != nil {
			return fmt.Errorf("read trace file: %w", err)
		}
		var trace stacktrace.Trace
		if err := json.Unmarshal(data, &trace); err != nil {
			return fmt.Errorf("decode trace file: %w", err)
		}
		if len(trace) == 0 {
			return fmt.Errorf("trace file holds no frames")
		}
		diag := stacktrace.Encode(cliCtx.String("fallback"), trace, nil)
		fmt.Println(diag.Stack())
		return nil
	},
}

var returnDataCmd = &cli.Command{
	Name:      "returndata",
	Usage:     "classify a raw return-data payload",
	ArgsUsage: "<0x-hex payload>",
	Action: func(cliCtx *cli.Context) error {
		if cliCtx.NArg() != 1 {
			return fmt.Errorf("expected exactly one hex payload argument")
		}
		raw, err := hexutility.DecodeHex(cliCtx.Args().First())
		if err != nil {
			return fmt.Errorf("bad payload: %w", err)
		}
		rd := returndata.Classify(raw)
		switch rd.Kind() {
		case returndata.ErrorString:
			fmt.Printf("%s: %q\n", rd.Kind(), rd.Reason())
		case returndata.PanicCode:
			fmt.Printf("%s: %s\n", rd.Kind(), returndata.PanicMessage(rd.Code()))
		case returndata.Empty:
			fmt.Println(rd.Kind())
		default:
			fmt.Printf("%s: %s\n", rd.Kind(), rd.Hex())
		}
		return nil
	},
}

var artifactsCmd = &cli.Command{
	Name:      "artifacts",
	Usage:     "validate a build report and aggregate its artifacts",
	ArgsUsage: "<build-report.json>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "artifacts-root",
			Usage:    "directory holding the build-info/ metadata",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "project-root",
			Usage: "project root the test-suite filter relativizes against",
		},
		&cli.StringSliceFlag{
			Name:  "test-suite-roots",
			Usage: "candidate root paths; with --project-root, prints only test-suite artifact ids",
		},
	},
	Action: func(cliCtx *cli.Context) error {
		logger, err := setupLogger(cliCtx)
		if err != nil {
			return err
		}
		if cliCtx.NArg() != 1 {
			return fmt.Errorf("expected exactly one build report argument")
		}
		data, err := os.ReadFile(cliCtx.Args().First())
		if err != nil {
			return fmt.Errorf("read build report: %w", err)
		}
		outcome, err := artifacts.ParseBuildReport(data)
		if err != nil {
			return err
		}
		results, err := artifacts.Validate(outcome)
		if err != nil {
			return err
		}
		aggregator := artifacts.NewAggregator(afero.NewOsFs(), logger)
		aggregated, err := aggregator.Aggregate(cliCtx.Context, results, cliCtx.String("artifacts-root"))
		if err != nil {
			return err
		}
		if roots := cliCtx.StringSlice("test-suite-roots"); len(roots) > 0 {
			ids, err := artifacts.SelectTestSuiteIDs(aggregated, roots, cliCtx.String("project-root"))
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Printf("%s %s (solc %s)\n", id.SourcePath, id.Name, id.CompilerVersion)
			}
			return nil
		}
		for _, artifact := range aggregated {
			fmt.Printf("%s %s (solc %s)\n", artifact.ID.SourcePath, artifact.ID.Name, artifact.ID.CompilerVersion)
		}
		return nil
	},
}
