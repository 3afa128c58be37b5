package diagnostic

// Report is the flat connectivity report returned by GET /test.
// Every field is a human-readable status string; the endpoint exists for
// operational diagnosis and never fails.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
