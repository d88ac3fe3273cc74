package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the merged spec before any network work happens. It does
// not validate the HTTP method: that check belongs to the request builder,
// which owns the supported method set.
func (s *Spec) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Errorf("invalid request spec: field %q failed %q validation", strings.ToLower(e.Field()), e.Tag())
	}
	return err
}
