// Package testutil builds sample WFM workbooks for integration tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/wfm/internal/core/tables"
)

// SampleCounts is the number of rows each table group receives from
// SampleWorkbook (static TA groups included).
var SampleCounts = map[string]int{
	"cost_summary":              3,
	"dadk_ctc":                  2,
	"dadk_headcount":            3,
	"dadk_new_joiners":          2,
	"productivity_emp":          4,
	"adara_devops":              3,
	"devops_uptime":             2,
	"devops_tickets":            2,
	"it_helpdesk":               3,
	"it_helpdesk_notes":         2,
	"soho_monitoring":           3,
	"soho_client_success":       2,
	"soho_social_content":       3,
	"customer_experience":       2,
	"customer_experience_notes": 1,
	"ta_open_positions":         3,
	"ta_leader_positions":       15,
	"ta_partner_performance":    10,
}

// Sheet is a set of cell values keyed by cell name ("A1").
type Sheet map[string]any

// SampleSheets returns the cells of a small but complete workbook.
// Rows that must be skipped by the key rules are included on purpose.
func SampleSheets() map[string]Sheet {
	return map[string]Sheet{
		tables.SheetCostSummary: {
			"A2": "S.No", "B2": "Team Manager",
			"A3": 1, "B3": "Priya", "C3": "Payments", "D3": "Rahul", "E3": 10, "F3": 12, "G3": 1200000.5, "M3": "on track",
			"A4": 2, "B4": "Kunal", "C4": "Billing", "E4": "-", "F4": 7, "G4": "-",
			"A5": 3, "B5": "Sana", "C5": "Risk", "E5": 4, "F5": 4.6,
			"B6": "subtotal without serial",
			"A23": 99, "B23": "outside the block",
		},
		tables.SheetDADKPivot: {
			"A4": "CTC", "B4": "Apr-25",
			"A5": "DA", "B5": 1000, "C5": 1100, "N5": 100,
			"A6": "DK", "B6": 800, "M6": "-",
			"A11": "DA", "B11": 12, "C11": 13,
			"A12": "DK", "B12": 9,
			"A13": "Total", "B13": 21,
			"C19": "Analyst", "D19": 2,
			"C20": "Engineer",
			"C21": "Lead", "D21": 1,
		},
		tables.SheetProductivity: {
			"A1": "Emp ID", "B1": "Employee Name", "I1": "Team Lead By",
			"A2": "E100", "B2": "Zoya", "C2": time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC), "G2": "Payments", "I2": "M1", "K2": 80, "L2": 85, "R2": "Active",
			"A3": "E101", "B3": "Arjun", "G3": "Payments", "I3": "M1", "K3": "-", "R3": "Inactive",
			"A4": "E102", "B4": "Bela", "G4": "Billing", "I4": "M2", "K4": 90, "R4": "Active",
			"B5": "No Id", "G5": "Billing", "I5": "M2", "R5": "Active",
			"A6": "E103", "B6": "Chetan", "G6": "Billing", "R6": "Active",
		},
		tables.SheetAdaraDevOps: {
			"A1": "Adara DevOps", "A2": "Emp ID",
			"A3": "A1", "B3": "Mohan", "F3": "Pune", "G3": 0.9,
			"A4": "A2", "B4": "Ishita", "F4": "Noida", "G4": 0.75,
			"A5": "A3", "B5": "Farhan", "F5": "Pune",
		},
		tables.SheetDevOpsShared: {
			"A6": "CRM", "B6": 99.9, "F6": 0.73,
			"A7": "Billing", "B7": 99.5,
			"A38": "CRM", "E38": 120,
			"E39": 40,
			"B40": 99.0,
		},
		tables.SheetITHelpDesk: {
			"A1": "Month",
			"A2": "Apr", "B2": 320, "C2": 64, "D2": 5,
			"A3": "May", "B3": 298.4, "C3": 59.68, "D3": 5,
			"A4": "Jun", "B4": 310,
			"B37": "Ticket volume peaks on Mondays",
			"B39": "Two engineers on leave in Nov",
		},
		tables.SheetSoHo: {
			"A3": "Kiran", "B3": "2025-09", "C3": 4.5,
			"A4": "Anu", "B4": "2025-09", "C4": 4.1,
			"A5": "Kiran", "B5": "2025-08", "C5": 4.4,
			"G3": "Team Red", "H3": 0.12, "R3": 90,
			"G4": "Team Blue", "H4": 0.08,
			"G15": "Ritu", "H15": 2,
			"G16": "Dev", "H16": 0,
			"G17": "Lata",
		},
		tables.SheetCustomerExperience: {
			"A1": "S.No",
			"A2": 1, "B2": 5012, "C2": "Neha", "D2": 1.5, "G2": 4.8,
			"A3": 2, "B3": "RG5013", "C3": "Omar", "D3": 2.25,
			"A4": "Total", "C4": "all agents",
			"A13": "CSAT is a 5-point scale",
		},
	}
}

// WriteWorkbook saves sheets to an .xlsx file inside t.TempDir and returns its path.
func WriteWorkbook(t testing.TB, sheets map[string]Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, cells := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet %q: %v", name, err)
		}
		for cell, v := range cells {
			if err := f.SetCellValue(name, cell, v); err != nil {
				t.Fatalf("set %s!%s: %v", name, cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "wfm.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// SampleWorkbook writes the sample workbook and returns its path.
func SampleWorkbook(t testing.TB) string {
	t.Helper()
	return WriteWorkbook(t, SampleSheets())
}
