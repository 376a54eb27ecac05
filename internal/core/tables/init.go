// Package tables registers all table definitions with the core registry.
// Import this package to ensure all tables are registered.
//
// Each table group is plain layout data: worksheet, row range, column map
// and key rule. Registration order below is the import order and follows the
// workbook's sheet order.
package tables

func init() {
	registerCostSummary()
	registerDADKPivot()
	registerProductivity()
	registerAdaraDevOps()
	registerDevOpsShared()
	registerITHelpDesk()
	registerSoHo()
	registerCustomerExperience()
	registerTATeam()
}
