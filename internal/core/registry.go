package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]TableDefinition)
	order      []string
	registryMu sync.RWMutex
)

// Register adds a table definition to the registry.
// Panics if a table with the same key is already registered or the layout is malformed.
// Registration order is the import order.
func Register(def TableDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("table already registered: %s", def.Info.Key))
	}
	if err := validateDefinition(def); err != nil {
		panic(fmt.Sprintf("table %s: %v", def.Info.Key, err))
	}

	// Populate Columns from the column specs if not set
	if len(def.Info.Columns) == 0 {
		def.Info.Columns = make([]string, len(def.Columns))
		for i, spec := range def.Columns {
			def.Info.Columns[i] = spec.Name
		}
	}
	if len(def.Key.Columns) == 0 && len(def.Columns) > 0 {
		def.Key.Columns = []string{def.Columns[0].Name}
	}

	registry[def.Info.Key] = def
	order = append(order, def.Info.Key)
}

func validateDefinition(def TableDefinition) error {
	if def.Info.Key == "" {
		return fmt.Errorf("missing key")
	}
	if len(def.Columns) == 0 {
		return fmt.Errorf("no columns")
	}
	if !def.IsFixture() {
		if def.Source.Sheet == "" {
			return fmt.Errorf("missing sheet name")
		}
		if def.Source.FirstRow < 1 {
			return fmt.Errorf("first row must be >= 1, got %d", def.Source.FirstRow)
		}
		if def.Source.LastRow != 0 && def.Source.LastRow < def.Source.FirstRow {
			return fmt.Errorf("last row %d before first row %d", def.Source.LastRow, def.Source.FirstRow)
		}
	}

	seen := make(map[string]bool, len(def.Columns))
	for _, c := range def.Columns {
		if c.Name == "" || c.Name == "id" {
			return fmt.Errorf("invalid column name %q", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if !def.IsFixture() {
			if _, err := columnIndex(c.Cell); err != nil {
				return fmt.Errorf("column %s: %w", c.Name, err)
			}
		}
	}
	for _, keys := range [][]string{def.Key.Columns, def.Key.Filled} {
		for _, k := range keys {
			if !seen[k] {
				return fmt.Errorf("key column %q not declared", k)
			}
		}
	}
	for _, f := range def.Filters {
		if !seen[f.Column] {
			return fmt.Errorf("filter %q targets undeclared column %q", f.Param, f.Column)
		}
	}
	for _, o := range def.OrderBy {
		if !seen[o] {
			return fmt.Errorf("order column %q not declared", o)
		}
	}
	return nil
}

// Get returns a table definition by key.
// Returns false if not found.
func Get(key string) (TableDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered table definitions in registration order.
func All() []TableDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]TableDefinition, 0, len(order))
	for _, key := range order {
		result = append(result, registry[key])
	}
	return result
}

// ByGroup returns all table definitions for a specific group, in registration order.
func ByGroup(group string) []TableDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var result []TableDefinition
	for _, key := range order {
		if def := registry[key]; def.Info.Group == group {
			result = append(result, def)
		}
	}
	return result
}

// Groups returns all unique group names.
// Sorted alphabetically.
func Groups() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]bool)
	for _, def := range registry {
		seen[def.Info.Group] = true
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}

	sort.Strings(groups)
	return groups
}

// TableCount returns the number of registered tables.
func TableCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered tables.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]TableDefinition)
	order = nil
}
