package domain

// EmployeeStatus is the employment state shown on the employee listing.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
	EmployeeStatusVacation EmployeeStatus = "vacation"
)

// Valid reports whether s is one of the known statuses.
func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusVacation:
		return true
	}
	return false
}

// Label is the badge text for s.
func (s EmployeeStatus) Label() string {
	switch s {
	case EmployeeStatusActive:
		return "Ativo"
	case EmployeeStatusInactive:
		return "Inativo"
	case EmployeeStatusVacation:
		return "Férias"
	default:
		return string(s)
	}
}

// ContractType enumerates hiring regimes.
type ContractType string

const (
	ContractCLT        ContractType = "CLT"
	ContractPJ         ContractType = "PJ"
	ContractTemporary  ContractType = "Temporário"
	ContractInternship ContractType = "Estágio"
)

// Employee is a staffed worker allocated to a client.
// No invariant is enforced: status transitions are free and ids are not cross-checked.
type Employee struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	CPF           string         `json:"cpf"`
	RG            string         `json:"rg,omitempty"`
	BirthDate     string         `json:"birth_date,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	Position      string         `json:"position"`
	Department    string         `json:"department"`
	AdmissionDate string         `json:"admission_date"`
	ContractType  ContractType   `json:"contract_type"`
	Salary        float64        `json:"salary"`
	Client        string         `json:"client"`
	Status        EmployeeStatus `json:"status"`
}
