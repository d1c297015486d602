package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps struct fields to the sentinel reported for them.
var fieldErrors = map[string]error{
	"Workers":        ErrInvalidWorkers,
	"IterationCap":   ErrInvalidIterationCap,
	"Timeout":        ErrInvalidTimeout,
	"Discipline":     ErrInvalidDiscipline,
	"BarrierTimeout": ErrInvalidDuration,
	"ShutdownGrace":  ErrInvalidDuration,
}

// Validate checks every field and joins one sentinel-wrapped error per
// offending field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: validate: %w", err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		sentinel, ok := fieldErrors[fe.StructField()]
		if !ok {
			sentinel = errors.New("config: invalid field")
		}
		errs = append(errs, fmt.Errorf("%w: %s=%v violates %q", sentinel, fe.Field(), fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}
