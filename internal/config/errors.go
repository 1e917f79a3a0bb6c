package config

import "github.com/pacefit/pace/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidConfigValue = &apperr.Error{
		Message: "invalid value for %s",
	}

	errInvalidDurationFormat = &apperr.Error{
		Message: "invalid duration format: %s",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid --%s flag",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errInvalidSessionCmd = &apperr.Error{
		Message: "session command cannot be parsed",
	}

	errCatalogNotFound = &apperr.Error{
		Message: "workout catalog %s is not readable",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "invalid period %q: expected one of %v",
	}

	errInvalidRange = &apperr.Error{
		Message: "the start date (%s) must not be after the end date (%s)",
	}
)
