package domain

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок. Конкретные ошибки ниже оборачивают их,
// так что проверять можно через errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrPresetUnsupported = errors.New("preset unsupported by builder")
	ErrUnknownPreset     = errors.New("unknown preset")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrInvalidKey        = errors.New("invalid template key")
)

// Правила валидации (ValidationError.Rule)
const (
	RuleNameRequired           = "name_required"
	RuleHealthPositive         = "health_positive"
	RuleStageRequired          = "stage_required"
	RuleStageThresholdPositive = "stage_threshold_positive"
	RuleBuilderConsumed        = "builder_consumed"
	RuleFactorPositive         = "factor_positive"
	RuleFactorOverflow         = "factor_overflow"
)

// ValidationError - нарушено обязательное поле или бизнес-правило.
type ValidationError struct {
	Rule    string
	Message string
}

func NewValidationError(rule, format string, args ...any) *ValidationError {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed [%s]: %s", e.Rule, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// PresetUnsupportedError - пресет директора требует staged-билдер.
type PresetUnsupportedError struct {
	Preset string
}

func (e *PresetUnsupportedError) Error() string {
	return fmt.Sprintf("preset %q requires a staged builder", e.Preset)
}

func (e *PresetUnsupportedError) Unwrap() error { return ErrPresetUnsupported }

// NotFoundError - в реестре нет шаблона с таким именем.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrTemplateNotFound }

// KeyError - пустой (или иначе недопустимый) ключ шаблона.
type KeyError struct {
	Key    string
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid template key %q: %s", e.Key, e.Reason)
}

func (e *KeyError) Unwrap() error { return ErrInvalidKey }
