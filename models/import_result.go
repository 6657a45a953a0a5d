package models

// ValidationError describes one rejected field of one imported row.
// Row is the 1-based index of the data row, the header excluded.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is what a single import run reports back to the operator.
// Success + Failed always equals Total.
type ImportResult struct {
	ImportId string            `json:"import_id"`
	Kind     string            `json:"kind"`
	Total    int               `json:"total"`
	Success  int               `json:"imported"`
	Failed   int               `json:"failed"`
	Errors   []ValidationError `json:"errors"`
}

const (
	KindVendors  = "vendors"
	KindVehicles = "vehicles"
	KindTowns    = "towns"
)
