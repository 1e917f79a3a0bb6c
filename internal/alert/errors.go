package alert

import "github.com/pacefit/pace/internal/apperr"

var errParseSessionCmd = &apperr.Error{
	Message: "unable to parse session_cmd option",
}
