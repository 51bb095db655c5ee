package ingredient

import "strconv"

// ImportItem is one entry of the JSON fixture loaded by cmd/seed.
type ImportItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func importField(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
