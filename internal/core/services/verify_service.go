package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/adi-segal/mediafix/internal/core/domain"
	"github.com/adi-segal/mediafix/internal/core/ports"
)

// VerifyService checks that previously seeded fixtures still carry their own
// relative path as the embedded tag. Reads only, so records are checked
// concurrently.
type VerifyService struct {
	configs ports.ConfigSource
	taggers ports.TaggerSelector
}

// NewVerifyService creates a new verify service.
func NewVerifyService(configs ports.ConfigSource, taggers ports.TaggerSelector) *VerifyService {
	return &VerifyService{
		configs: configs,
		taggers: taggers,
	}
}

// VerifyRequest describes one verification run.
type VerifyRequest struct {
	ConfigPath string
	RootDir    string
	MaxWorkers int
}

// VerifyResult is the check outcome for a single record.
type VerifyResult struct {
	Line    int
	RelPath string
	AbsPath string
	Tag     string // tag actually found in the file
	Err     error
}

// OK reports whether the fixture carries the expected tag.
func (r VerifyResult) OK() bool {
	return r.Err == nil
}

// VerifyResponse aggregates the results of a verification run.
type VerifyResponse struct {
	Results []VerifyResult
	Total   int
	Passed  int
	Failed  int
}

// Run verifies every record of the config. Results come back in config
// order. Malformed rows fail verification for that row only.
func (s *VerifyService) Run(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	reader, err := s.configs.Open(req.ConfigPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var records []*domain.Record
	var rowFailures []VerifyResult

	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !errors.Is(err, domain.ErrMalformedConfig) {
				return nil, err
			}
			rowFailures = append(rowFailures, VerifyResult{Err: err})
			continue
		}
		records = append(records, rec)
	}

	maxWorkers := req.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	results := s.verifyConcurrently(ctx, records, req.RootDir, maxWorkers)
	results = append(results, rowFailures...)

	sort.Slice(results, func(i, j int) bool {
		return results[i].Line < results[j].Line
	})

	resp := &VerifyResponse{
		Results: results,
		Total:   len(results),
	}
	for _, r := range results {
		if r.OK() {
			resp.Passed++
		} else {
			resp.Failed++
		}
	}

	return resp, nil
}

// verifyConcurrently checks records using a worker pool.
func (s *VerifyService) verifyConcurrently(ctx context.Context, records []*domain.Record, root string, maxWorkers int) []VerifyResult {
	jobs := make(chan *domain.Record, len(records))
	out := make(chan VerifyResult, len(records))

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx, jobs, out, root)
		}()
	}

	for _, rec := range records {
		jobs <- rec
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(out)
	}()

	var results []VerifyResult
	for r := range out {
		results = append(results, r)
	}
	return results
}

// worker verifies records until the jobs channel drains.
func (s *VerifyService) worker(ctx context.Context, jobs <-chan *domain.Record, out chan<- VerifyResult, root string) {
	for rec := range jobs {
		select {
		case <-ctx.Done():
			out <- VerifyResult{Line: rec.Line, Err: ctx.Err()}
			continue
		default:
		}

		out <- s.verifyRecord(rec, root)
	}
}

func (s *VerifyService) verifyRecord(rec *domain.Record, root string) VerifyResult {
	res := VerifyResult{Line: rec.Line}

	relPath, err := rec.AssetRelPath()
	if err != nil {
		res.Err = err
		return res
	}
	res.RelPath = relPath

	dest := filepath.Join(root, filepath.FromSlash(relPath))
	abs, err := filepath.Abs(dest)
	if err != nil {
		res.Err = err
		return res
	}
	res.AbsPath = abs

	if _, err := os.Stat(abs); err != nil {
		res.Err = fmt.Errorf("fixture missing: %w", err)
		return res
	}

	t, err := s.taggers.ForPath(abs)
	if err != nil {
		res.Err = err
		return res
	}

	tag, err := t.ReadTag(abs)
	if err != nil {
		res.Err = fmt.Errorf("read tag: %w", err)
		return res
	}
	res.Tag = tag

	if tag != relPath {
		res.Err = fmt.Errorf("tag mismatch: embedded %q, expected %q", tag, relPath)
	}

	return res
}
