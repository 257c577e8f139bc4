package domain

// ReportType is an entry of the report catalog.
type ReportType struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// RecentReport is a previously generated report.
type RecentReport struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Generated string `json:"generated"`
	Size      string `json:"size"`
}
