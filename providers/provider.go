// Package providers holds the AI assistant tier: one client per
// upstream provider, a normalizer that coerces model replies into the
// core result types, and the Tiered wrapper that degrades to the
// heuristic responder when a provider is missing or misbehaves.
package providers

import (
	"context"

	"go.uber.org/zap"

	"github.com/CHEATEY13/Last/core"
)

// Tiered tries a live provider first and falls back to a local
// responder on any provider error. Callers always get a result; a
// degraded answer is tagged with its source instead of surfacing the
// upstream failure.
type Tiered struct {
	primary  core.Assistant // nil when no credential is configured
	fallback core.Assistant
	logger   *zap.Logger
}

var _ core.Assistant = (*Tiered)(nil)

func NewTiered(primary, fallback core.Assistant, logger *zap.Logger) *Tiered {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tiered{primary: primary, fallback: fallback, logger: logger}
}

func (t *Tiered) Name() string {
	if t.primary != nil {
		return t.primary.Name()
	}
	return t.fallback.Name()
}

// Live reports whether a provider credential was configured.
func (t *Tiered) Live() bool { return t.primary != nil }

func (t *Tiered) Analyze(ctx context.Context, code, language string) (*core.AnalysisResult, error) {
	if t.primary != nil {
		res, err := t.primary.Analyze(ctx, code, language)
		if err == nil {
			res.Source = core.SourceLive
			return res, nil
		}
		t.degraded("analyze", err)
	}
	return t.fallback.Analyze(ctx, code, language)
}

func (t *Tiered) Debug(ctx context.Context, code, language string) (*core.DebugResult, error) {
	if t.primary != nil {
		res, err := t.primary.Debug(ctx, code, language)
		if err == nil {
			res.Source = core.SourceLive
			return res, nil
		}
		t.degraded("debug", err)
	}
	return t.fallback.Debug(ctx, code, language)
}

func (t *Tiered) Translate(ctx context.Context, code, language, target string) (*core.TranslationResult, error) {
	if t.primary != nil {
		res, err := t.primary.Translate(ctx, code, language, target)
		if err == nil {
			res.Source = core.SourceLive
			return res, nil
		}
		t.degraded("translate", err)
	}
	return t.fallback.Translate(ctx, code, language, target)
}

func (t *Tiered) degraded(op string, err error) {
	t.logger.Warn("provider failed, using fallback",
		zap.String("provider", t.primary.Name()),
		zap.String("operation", op),
		zap.Error(err),
	)
}
