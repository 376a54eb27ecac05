package core

import "fmt"

// loadFixture produces the rows of a table group backed by static data
// instead of a worksheet. Values go through the same coercion as cells so
// fixture rows and extracted rows are stored alike.
func loadFixture(def TableDefinition) ([]Record, error) {
	raw, err := def.Fixture()
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", def.Info.Key, err)
	}

	records := make([]Record, 0, len(raw))
	for i, row := range raw {
		if len(row) != len(def.Columns) {
			return nil, fmt.Errorf("fixture %s row %d: got %d values, want %d",
				def.Info.Key, i+1, len(row), len(def.Columns))
		}
		rec := make(Record, len(def.Columns))
		for j, col := range def.Columns {
			rec[j] = Coerce(col.Type, row[j])
		}
		records = append(records, rec)
	}
	return records, nil
}
