package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	stageIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("stage_id", func(fl validator.FieldLevel) bool {
			return stageIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidatePipeline performs schema and cross-field validation on a pipeline
// definition.
func ValidatePipeline(pipeline *Pipeline) error {
	if pipeline == nil {
		return repypeerrors.NewConfigurationError("pipeline", "pipeline is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(pipeline); err != nil {
		return convertValidationError(err)
	}

	stageIndex := make(map[string]int, len(pipeline.Stages))
	for i, stage := range pipeline.Stages {
		if _, exists := stageIndex[stage.ID]; exists {
			return repypeerrors.NewConfigurationError(fieldForStage(i, "id"), fmt.Sprintf("duplicate stage id %q", stage.ID), nil)
		}

		if err := ValidateStage(stage); err != nil {
			return err
		}

		stageIndex[stage.ID] = i
	}

	return nil
}

// ValidateStage validates a single stage independent of other pipeline
// properties.
func ValidateStage(stage Stage) error {
	v := validatorInstance()
	if err := v.Struct(stage); err != nil {
		return convertValidationError(err)
	}

	switch stage.Type {
	case "command":
		if stage.Command == nil {
			return repypeerrors.NewConfigurationError(stage.ID, "command configuration is required", nil)
		}
		if err := v.Struct(stage.Command); err != nil {
			return convertValidationError(err)
		}
	case "fetch":
		if stage.Fetch == nil {
			return repypeerrors.NewConfigurationError(stage.ID, "fetch configuration is required", nil)
		}
		if err := v.Struct(stage.Fetch); err != nil {
			return convertValidationError(err)
		}
	case "delay":
		if stage.Delay == nil {
			return repypeerrors.NewConfigurationError(stage.ID, "delay configuration is required", nil)
		}
		if err := v.Struct(stage.Delay); err != nil {
			return convertValidationError(err)
		}
		if _, err := time.ParseDuration(stage.Delay.Duration); err != nil {
			return repypeerrors.NewConfigurationError(stage.ID, fmt.Sprintf("invalid duration %q", stage.Delay.Duration), err)
		}
	default:
		return repypeerrors.NewConfigurationError(stage.ID, fmt.Sprintf("unknown stage type %q", stage.Type), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return repypeerrors.NewConfigurationError(field, msg, err)
	}

	return repypeerrors.NewConfigurationError("pipeline", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForStage(index int, field string) string {
	return fmt.Sprintf("stages[%d].%s", index, field)
}
