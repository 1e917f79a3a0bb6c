package tui

import "github.com/pacefit/pace/internal/apperr"

var errCorruptStatus = &apperr.Error{
	Message: "status file is unreadable",
}
