package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/ports"
	"github.com/adi-segal/mediafix/pkg/checksum"
)

// SeedService drives the fixture batch: one config record at a time, in file
// order, with per-record failure isolation.
type SeedService struct {
	configs ports.ConfigSource
	synth   ports.Synthesizer
}

// NewSeedService creates a new seed service.
func NewSeedService(configs ports.ConfigSource, synth ports.Synthesizer) *SeedService {
	return &SeedService{
		configs: configs,
		synth:   synth,
	}
}

// SeedRequest describes one batch run.
type SeedRequest struct {
	ConfigPath   string
	RootDir      string
	TemplatePath string

	// SkipExisting leaves destinations that already exist untouched instead
	// of overwriting them.
	SkipExisting bool
}

// SeedResponse aggregates the outcomes of a batch run.
type SeedResponse struct {
	Outcomes  []domain.Outcome
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
}

// Progress receives one outcome per record as the batch advances. Optional.
type Progress func(domain.Outcome)

// Run processes every record of the config. Per-record failures (missing
// field, bad row, synthesis or tagging errors) are captured as outcomes and
// never abort the batch; only config-level failures propagate.
func (s *SeedService) Run(ctx context.Context, req SeedRequest, progress Progress) (*SeedResponse, error) {
	reader, err := s.configs.Open(req.ConfigPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	resp := &SeedResponse{}

	for {
		if err := ctx.Err(); err != nil {
			// Files written so far are complete artifacts; report them.
			return resp, err
		}

		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !errors.Is(err, domain.ErrMalformedConfig) {
				return resp, err
			}
			// Bad row: record the failure and keep reading.
			s.record(resp, progress, domain.Outcome{
				Err: fmt.Errorf("%s: %w", req.ConfigPath, err),
			})
			continue
		}

		s.record(resp, progress, s.processRecord(ctx, rec, req))
	}

	return resp, nil
}

// processRecord seeds a single record.
func (s *SeedService) processRecord(ctx context.Context, rec *domain.Record, req SeedRequest) domain.Outcome {
	out := domain.Outcome{Line: rec.Line}

	relPath, err := rec.AssetRelPath()
	if err != nil {
		out.Err = fmt.Errorf("%s: %w", req.ConfigPath, err)
		return out
	}
	out.RelPath = relPath

	if req.SkipExisting {
		dest := filepath.Join(req.RootDir, filepath.FromSlash(relPath))
		if _, err := os.Stat(dest); err == nil {
			abs, _ := filepath.Abs(dest)
			out.AbsPath = abs
			out.Skipped = true
			return out
		}
	}

	absPath, err := s.synth.Synthesize(ctx, req.RootDir, relPath, req.TemplatePath)
	if err != nil {
		out.Err = fmt.Errorf("synthesize %q: %w", relPath, err)
		return out
	}
	out.AbsPath = absPath

	// The tag value is the relative path itself, so the file can later be
	// verified without re-reading the config.
	if err := s.synth.Tag(absPath, relPath); err != nil {
		out.Err = fmt.Errorf("tag %q: %w", relPath, err)
		return out
	}

	sum, err := checksum.File(absPath)
	if err != nil {
		out.Err = fmt.Errorf("checksum %q: %w", relPath, err)
		return out
	}
	out.Checksum = sum

	return out
}

// record appends an outcome, updates the counters and notifies progress.
func (s *SeedService) record(resp *SeedResponse, progress Progress, out domain.Outcome) {
	resp.Outcomes = append(resp.Outcomes, out)
	resp.Total++
	switch {
	case out.Err != nil:
		resp.Failed++
	case out.Skipped:
		resp.Skipped++
	default:
		resp.Succeeded++
	}

	if progress != nil {
		progress(out)
	}
}
