package dto

import "strings"

// EmployeeRequest is the employee form submitted on create and edit.
type EmployeeRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required"`
	CPF           string  `json:"cpf" validate:"required"`
	RG            string  `json:"rg"`
	BirthDate     string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Position      string  `json:"position" validate:"required"`
	Department    string  `json:"department" validate:"required"`
	AdmissionDate string  `json:"admission_date" validate:"required,datetime=2006-01-02"`
	ContractType  string  `json:"contract_type" validate:"omitempty,oneof=CLT PJ Temporário Estágio"`
	Salary        float64 `json:"salary" validate:"gt=0"`
	Client        string  `json:"client" validate:"required"`
}

// Normalize trims surrounding whitespace so blank fields fail the required checks.
func (r *EmployeeRequest) Normalize() {
	for _, field := range []*string{
		&r.Name, &r.Email, &r.CPF, &r.RG, &r.BirthDate, &r.Phone, &r.Address,
		&r.Position, &r.Department, &r.AdmissionDate, &r.ContractType, &r.Client,
	} {
		*field = strings.TrimSpace(*field)
	}
}
