// SPDX-License-Identifier: MIT

// Command vqsd diagonalizes a random two-qubit density operator with the
// variational quantum state diagonalization trainer and prints the
// estimated and target spectra.
//
// Configuration comes from the environment (optionally a .env file) and is
// overridden by flags:
//
//	-iterations  VQSD_ITERATIONS      training steps (50)
//	-lr          VQSD_LEARNING_RATE   Adagrad learning rate (0.2)
//	-seed        VQSD_SEED            circuit and problem seed (14)
//	-report      VQSD_REPORT_PATH     msgpack report path (disabled)
//	-log-level   LOG_LEVEL            debug, info, warn, error (info)
//	             LOG_PRETTY           console log output (false)
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/qlath/internal/config"
	"github.com/katalvlaran/qlath/internal/logger"
	"github.com/katalvlaran/qlath/internal/report"
	"github.com/katalvlaran/qlath/linalg"
	"github.com/katalvlaran/qlath/vqsd"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "vqsd:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("vqsd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "number of training iterations")
	fs.Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "Adagrad learning rate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the circuit and the random problem")
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "write a msgpack run report to this path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err = fs.Parse(args); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Out: stderr})

	sampler := linalg.NewSampler(linalg.WithSeed(cfg.Seed))
	rho, sigma, err := vqsd.GenerateRhoSigma(sampler, vqsd.DefaultSpectrum)
	if err != nil {
		return err
	}

	trainer := vqsd.NewTrainer(append(cfg.TrainerOptions(),
		vqsd.WithLogger(log),
		vqsd.WithProgress(stdout),
	)...)
	res, err := trainer.Train(rho, sigma)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "The estimated spectrum is:", res.Spectrum())
	fmt.Fprintln(stdout, "The target spectrum is:", vqsd.DefaultSpectrum)

	if cfg.ReportPath != "" {
		r := report.New(trainer.Config(), res, vqsd.DefaultSpectrum)
		if err = r.Save(cfg.ReportPath); err != nil {
			return err
		}
		log.Info().Str("path", cfg.ReportPath).Str("id", r.ID.String()).Msg("report written")
	}

	return nil
}
