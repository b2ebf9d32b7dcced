// Package pipeline runs seeding stages in order after checking that every entity a
// stage reads has been written by an earlier one.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/finseed/internal/domain"
)

//go:generate mockgen -source=pipeline.go -destination=mock_pipeline.go -package=pipeline

type Stage interface {
	Name() string
	Reads() []domain.Entity
	Writes() []domain.Entity
	Run(ctx context.Context) (domain.Summary, error)
}

var (
	ErrUnsatisfiedRead = errors.New("stage reads an entity no earlier stage writes")
	ErrNoStages        = errors.New("pipeline has no stages")
)

type Result struct {
	Stage   string
	Summary domain.Summary
	Elapsed time.Duration
}

type Pipeline struct {
	stages []Stage
}

func New(stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	written := make(map[domain.Entity]bool)
	for _, s := range stages {
		for _, e := range s.Reads() {
			if !written[e] {
				return nil, fmt.Errorf("%w: %s reads %s", ErrUnsatisfiedRead, s.Name(), e)
			}
		}
		for _, e := range s.Writes() {
			written[e] = true
		}
	}
	return &Pipeline{stages: stages}, nil
}

func (p *Pipeline) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(p.stages))
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("%s: %w", s.Name(), err)
		}

		started := time.Now()
		zap.L().Info("stage started", zap.String("stage", s.Name()))
		summary, err := s.Run(ctx)
		if err != nil {
			zap.L().Error("stage failed", zap.String("stage", s.Name()), zap.Error(err))
			return results, fmt.Errorf("%s: %w", s.Name(), err)
		}

		res := Result{Stage: s.Name(), Summary: summary, Elapsed: time.Since(started)}
		zap.L().Info("stage completed",
			zap.String("stage", res.Stage),
			zap.Stringer("rows", res.Summary),
			zap.Duration("elapsed", res.Elapsed),
		)
		results = append(results, res)
	}
	return results, nil
}
