package core

// error_messages.go turns import and query errors into short messages with
// a suggested action and a code users can quote to whoever runs the service.
//
// Codes by category:
//
//	WB001  workbook sheet missing (the layout changed or a tab was renamed)
//	WB002  workbook cannot be opened
//	QRY001 unknown table
//	QRY003 unknown column
//	IMP001 another import pass is running
//	DB001  store unreachable
//	DB002  store busy or locked
//	DB003  operation timed out
//	REQ001 request cancelled
//	SYS001 anything else
//
// Typed errors are matched first; store errors only surface as text from
// the driver, so they fall back to substring patterns.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UserMessage is a user-facing description of an error.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Reference code
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgUnknownTable = UserMessage{
		Message: "No such report table",
		Action:  "Pick a table from /api/tables",
		Code:    "QRY001",
	}
	msgUnknownColumn = UserMessage{
		Message: "No such column",
		Action:  "Check the column name against the table layout",
		Code:    "QRY003",
	}
	msgImportBusy = UserMessage{
		Message: "Another import is already running",
		Action:  "Wait for it to finish and try again",
		Code:    "IMP001",
	}
	msgCancelled = UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "REQ001",
	}
	msgTimeout = UserMessage{
		Message: "Operation timed out",
		Action:  "Try again later or raise the configured timeout",
		Code:    "DB003",
	}
	msgUnknown = UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "SYS001",
	}
)

// errorPatterns is checked in order; the first substring hit wins.
var errorPatterns = []errorPattern{
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to the database",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB001",
		},
	},
	{
		pattern: "database is locked",
		msg: UserMessage{
			Message: "The database is busy",
			Action:  "Please try again once the running import finishes",
			Code:    "DB002",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "The database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "timeout",
		msg:     msgTimeout,
	},
	{
		pattern: "zip: not a valid zip file",
		msg: UserMessage{
			Message: "The file is not an .xlsx workbook",
			Action:  "Save the report as Excel Workbook (.xlsx) and import again",
			Code:    "WB002",
		},
	},
	{
		pattern: "no such file or directory",
		msg: UserMessage{
			Message: "The workbook file was not found",
			Action:  "Check the path given to the importer",
			Code:    "WB002",
		},
	},
}

// MapError returns the user-facing message for err.
// A nil error maps to the zero UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var sheetErr *SheetError
	switch {
	case errors.As(err, &sheetErr):
		action := "Check that the tab exists and has not been renamed"
		if len(sheetErr.Available) > 0 {
			action += fmt.Sprintf(" (workbook has: %s)", strings.Join(sheetErr.Available, ", "))
		}
		return UserMessage{
			Message: fmt.Sprintf("Sheet %q was not found in the workbook", sheetErr.Sheet),
			Action:  action,
			Code:    "WB001",
		}
	case errors.Is(err, ErrUnknownTable):
		return msgUnknownTable
	case errors.Is(err, ErrUnknownColumn):
		return msgUnknownColumn
	case errors.Is(err, ErrImportInProgress):
		return msgImportBusy
	case errors.Is(err, context.Canceled):
		return msgCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	}

	text := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(text, p.pattern) {
			return p.msg
		}
	}
	return msgUnknown
}

// FormatUserError renders err as "message (code): action" for CLI output.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Code == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s): %s", msg.Message, msg.Code, msg.Action)
}
