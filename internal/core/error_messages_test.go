package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "nil error returns empty",
			err:      nil,
			wantCode: "",
		},
		{
			name:     "missing sheet",
			err:      &SheetError{Sheet: "IT HelpDesk", Table: "it_helpdesk", Err: ErrSheetNotFound},
			wantCode: "WB001",
		},
		{
			name:     "missing sheet inside import error",
			err:      &ImportError{Table: "it_helpdesk", Err: &SheetError{Sheet: "IT HelpDesk", Err: ErrSheetNotFound}},
			wantCode: "WB001",
		},
		{
			name:     "unknown table",
			err:      fmt.Errorf("%w: nope", ErrUnknownTable),
			wantCode: "QRY001",
		},
		{
			name:     "unknown column",
			err:      fmt.Errorf("%w: x", ErrUnknownColumn),
			wantCode: "QRY003",
		},
		{
			name:     "import busy",
			err:      ErrImportInProgress,
			wantCode: "IMP001",
		},
		{
			name:     "cancelled",
			err:      fmt.Errorf("query: %w", context.Canceled),
			wantCode: "REQ001",
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("query: %w", context.DeadlineExceeded),
			wantCode: "DB003",
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantCode: "DB001",
		},
		{
			name:     "sqlite lock",
			err:      errors.New("delete from it_helpdesk: database is locked"),
			wantCode: "DB002",
		},
		{
			name:     "not a workbook",
			err:      errors.New("open workbook: zip: not a valid zip file"),
			wantCode: "WB002",
		},
		{
			name:     "pattern match is case-insensitive",
			err:      errors.New("I/O TIMEOUT"),
			wantCode: "DB003",
		},
		{
			name:     "unknown error",
			err:      errors.New("something odd"),
			wantCode: "SYS001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if tt.err != nil && (got.Message == "" || got.Action == "") {
				t.Errorf("MapError() = %+v, want message and action", got)
			}
		})
	}
}

func TestMapError_SheetNameInMessage(t *testing.T) {
	msg := MapError(&SheetError{Sheet: "SoHo Team", Err: ErrSheetNotFound})
	if !strings.Contains(msg.Message, `"SoHo Team"`) {
		t.Errorf("Message = %q, want sheet name", msg.Message)
	}
	if strings.Contains(msg.Action, "workbook has") {
		t.Errorf("Action = %q, want no sheet list without Available", msg.Action)
	}

	msg = MapError(&SheetError{Sheet: "SoHo Team", Available: []string{"Cost Summary", "SoHo"}, Err: ErrSheetNotFound})
	if !strings.Contains(msg.Action, "workbook has: Cost Summary, SoHo") {
		t.Errorf("Action = %q, want available sheets", msg.Action)
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q", got)
	}
	got := FormatUserError(ErrImportInProgress)
	if !strings.HasPrefix(got, "Another import is already running (IMP001): ") {
		t.Errorf("FormatUserError() = %q", got)
	}
}
