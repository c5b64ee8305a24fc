package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CHEATEY13/Last/core"
	"github.com/CHEATEY13/Last/pkg/crypto"
)

// CodeService orchestrates the three code operations. Each operation
// gets its own assistant so providers can be mixed per capability.
type CodeService struct {
	analyzer   core.Assistant
	debugger   core.Assistant
	translator core.Assistant
	store      core.UserStore
	logger     *zap.Logger
}

func NewCodeService(analyzer, debugger, translator core.Assistant, store core.UserStore, logger *zap.Logger) *CodeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CodeService{
		analyzer:   analyzer,
		debugger:   debugger,
		translator: translator,
		store:      store,
		logger:     logger,
	}
}

func validateCode(code, language string) error {
	if strings.TrimSpace(code) == "" {
		return core.ErrCodeRequired
	}
	if strings.TrimSpace(language) == "" {
		return core.ErrLanguageRequired
	}
	if len(code) > core.MaxCodeLength {
		return core.ErrCodeTooLong
	}
	return nil
}

func (s *CodeService) Analyze(ctx context.Context, caller *core.Identity, code, language string) (*core.AnalysisResult, error) {
	if err := validateCode(code, language); err != nil {
		return nil, err
	}

	res, err := s.analyzer.Analyze(ctx, code, language)
	if err != nil {
		return nil, err
	}

	s.record(ctx, caller, core.CodeSession{
		Type:     core.OpAnalyze,
		Code:     code,
		Language: language,
		Result:   res,
	})
	return res, nil
}

func (s *CodeService) Debug(ctx context.Context, caller *core.Identity, code, language string) (*core.DebugResult, error) {
	if err := validateCode(code, language); err != nil {
		return nil, err
	}

	res, err := s.debugger.Debug(ctx, code, language)
	if err != nil {
		return nil, err
	}

	s.record(ctx, caller, core.CodeSession{
		Type:     core.OpDebug,
		Code:     code,
		Language: language,
		Result:   res,
	})
	return res, nil
}

func (s *CodeService) Translate(ctx context.Context, caller *core.Identity, code, language, target string) (*core.TranslationResult, error) {
	if err := validateCode(code, language); err != nil {
		return nil, err
	}

	res, err := s.translator.Translate(ctx, code, language, target)
	if err != nil {
		return nil, err
	}

	s.record(ctx, caller, core.CodeSession{
		Type:           core.OpTranslate,
		Code:           code,
		Language:       language,
		TargetLanguage: target,
		Result:         res,
	})
	return res, nil
}

// record appends the operation to the caller's history. Guests have no
// history; write failures are logged, never surfaced.
func (s *CodeService) record(ctx context.Context, caller *core.Identity, session core.CodeSession) {
	if caller == nil {
		return
	}

	session.ID = crypto.MustID()
	session.Timestamp = time.Now()

	if err := s.store.AddSession(ctx, caller.ID, session); err != nil {
		s.logger.Warn("failed to record code session",
			zap.String("user_id", caller.ID),
			zap.String("type", session.Type),
			zap.Error(err),
		)
	}
}
