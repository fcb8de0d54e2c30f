// SPDX-License-Identifier: MIT

// Package report persists a training run summary as MessagePack.
package report

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/qlath/vqsd"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmptyPath indicates Save or Load without a file path.
var ErrEmptyPath = errors.New("report: empty path")

// Report is the persisted summary of one vqsd run.
type Report struct {
	ID           uuid.UUID `msgpack:"id"`
	CreatedAt    time.Time `msgpack:"created_at"`
	Iterations   int       `msgpack:"iterations"`
	LearningRate float64   `msgpack:"learning_rate"`
	Seed         int64     `msgpack:"seed"`
	Losses       []float64 `msgpack:"losses"`
	Parameters   []float64 `msgpack:"parameters"`
	Spectrum     []float64 `msgpack:"spectrum"`
	Target       []float64 `msgpack:"target"`
}

// New summarizes a finished run under a fresh random ID.
func New(cfg vqsd.Config, res *vqsd.Result, target []float64) *Report {
	r := &Report{
		ID:           uuid.New(),
		CreatedAt:    time.Now().UTC(),
		Iterations:   cfg.Iterations,
		LearningRate: cfg.LearningRate,
		Seed:         cfg.Seed,
		Target:       append([]float64(nil), target...),
	}
	if res != nil {
		r.Losses = append([]float64(nil), res.Losses...)
		r.Parameters = append([]float64(nil), res.Parameters...)
		r.Spectrum = res.Spectrum()
	}

	return r
}

// Marshal encodes r as MessagePack.
func (r *Report) Marshal() ([]byte, error) {
	b, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("report: marshal: %w", err)
	}

	return b, nil
}

// Unmarshal decodes a MessagePack report.
func Unmarshal(b []byte) (*Report, error) {
	var r Report
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("report: unmarshal: %w", err)
	}

	return &r, nil
}

// Save writes r to path (0644), replacing any existing file.
func (r *Report) Save(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	b, err := r.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}

// Load reads a report written by Save.
func Load(path string) (*Report, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: load %s: %w", path, err)
	}

	return Unmarshal(b)
}
