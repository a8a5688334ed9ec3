package usecase

import (
	"context"
	"unicode/utf8"

	"smart-todo/internal/extractor"
	"smart-todo/internal/model"
)

// Extract normalizes the text, lets the interpreter read it and sanitizes the
// result. Validation failures never reach the interpreter.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extractor.ExtractInput) (extractor.ExtractOutput, error) {
	text, err := extractor.Normalize(input.Text)
	if err != nil {
		return extractor.ExtractOutput{}, err
	}

	now := uc.now().In(uc.loc)
	uc.l.Infof(ctx, "uc.Extract: user=%s input_length=%d", sc.UserID, utf8.RuneCountInString(text))

	candidate, err := uc.interpreter.Interpret(ctx, text, now)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract Interpret: %v", err)
		return extractor.ExtractOutput{}, err
	}

	return extractor.ExtractOutput{
		Normalized: text,
		Task:       extractor.Sanitize(candidate, text, now),
	}, nil
}
