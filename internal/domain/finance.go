package domain

// PayrollStatus tracks the processing of a monthly payroll.
type PayrollStatus string

const (
	PayrollPending   PayrollStatus = "pending"
	PayrollProcessed PayrollStatus = "processed"
	PayrollPaid      PayrollStatus = "paid"
)

// Label is the badge text for s.
func (s PayrollStatus) Label() string {
	switch s {
	case PayrollPending:
		return "Pendente"
	case PayrollProcessed:
		return "Processado"
	case PayrollPaid:
		return "Pago"
	default:
		return string(s)
	}
}

// PayrollMonth is one point of the payroll series.
type PayrollMonth struct {
	Month      string  `json:"month"`
	Year       int     `json:"year"`
	Total      float64 `json:"total"`
	Benefits   float64 `json:"benefits"`
	Taxes      float64 `json:"taxes"`
	Deductions float64 `json:"deductions"`
	TotalCost  float64 `json:"total_cost"`
}

// Net returns gross salaries minus deductions.
func (p PayrollMonth) Net() float64 {
	return p.Total - p.Deductions
}

// DepartmentPayroll is the payroll breakdown of one department.
type DepartmentPayroll struct {
	Department string  `json:"department"`
	Employees  int     `json:"employees"`
	Salaries   float64 `json:"salaries"`
	Benefits   float64 `json:"benefits"`
	Taxes      float64 `json:"taxes"`
}

// Total returns salaries plus benefits plus taxes.
func (d DepartmentPayroll) Total() float64 {
	return d.Salaries + d.Benefits + d.Taxes
}

// ClientCost is the cost of the staff allocated to one client.
// Margin is a pre-computed label, never derived from the other fields.
type ClientCost struct {
	ClientID      string  `json:"client_id"`
	Client        string  `json:"client"`
	Employees     int     `json:"employees"`
	TotalCost     float64 `json:"total_cost"`
	AvgCost       float64 `json:"avg_cost"`
	ContractValue float64 `json:"contract_value"`
	Margin        string  `json:"margin"`
	Status        string  `json:"status"`
}

// Payment is a payroll disbursement.
type Payment struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Employees   int           `json:"employees"`
	Amount      float64       `json:"amount"`
	Status      PayrollStatus `json:"status"`
}
