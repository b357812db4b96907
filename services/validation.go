package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"taskboard-api/taskboard/models"
)

const MaxSearchLength = 100

const (
	msgTitleRequired = "Title is required"
	msgTitleTooLong  = "Title is too long (max 200 characters)"
	msgInvalidID     = "Invalid task ID"
	msgInvalidSearch = "Search term must be between 1 and 100 characters"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", NotBlankValidator); err != nil {
		panic(err)
	}
	return v
}

// NotBlankValidator fails for strings that are empty after trimming
// surrounding whitespace.
func NotBlankValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateTitle returns the trimmed title. Blank titles are rejected before
// the length check, and the length limit applies to the untrimmed input.
func ValidateTitle(raw string) (string, error) {
	if err := validate.Var(raw, "notblank"); err != nil {
		return "", &ValidationError{Field: "title", Reason: msgTitleRequired}
	}
	if err := validate.Var(raw, "max="+strconv.Itoa(models.MaxTitleLength)); err != nil {
		return "", &ValidationError{Field: "title", Reason: msgTitleTooLong}
	}
	return strings.TrimSpace(raw), nil
}

// ParseTaskID converts a raw identifier into a task id. Numeric spellings
// such as "7", " 7 " and "7.0" are accepted; non-finite, fractional and
// non-positive values are not.
func ParseTaskID(raw string) (int32, error) {
	invalid := &ValidationError{Field: "id", Reason: msgInvalidID}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalid
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 || f > math.MaxInt32 {
		return 0, invalid
	}
	return int32(f), nil
}

// ValidateSearch checks the optional search term. A nil term means no
// filter and is always valid.
func ValidateSearch(search *string) (*string, error) {
	if search == nil {
		return nil, nil
	}
	if err := validate.Var(*search, "min=1,max="+strconv.Itoa(MaxSearchLength)); err != nil {
		return nil, &ValidationError{Field: "search", Reason: msgInvalidSearch}
	}
	return search, nil
}
