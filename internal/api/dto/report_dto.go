package dto

// GenerateReportRequest selects a report and its filters.
type GenerateReportRequest struct {
	Type       string `json:"type"`
	StartDate  string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Department string `json:"department"`
	Client     string `json:"client"`
}
