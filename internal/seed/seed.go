// Package seed holds the literal records backing the dashboard. Every accessor
// returns a fresh slice so callers can never mutate the shared data.
package seed

import "github.com/idealiza/admin-service/internal/domain"

// Employees returns the employee roster.
func Employees() []domain.Employee {
	return []domain.Employee{
		{
			ID:            "1",
			Name:          "João Silva Santos",
			Email:         "joao.silva@email.com",
			CPF:           "123.456.789-01",
			RG:            "12.345.678-9",
			BirthDate:     "1990-05-15",
			Phone:         "(11) 99999-9999",
			Address:       "Rua das Flores, 123 - São Paulo, SP",
			Position:      "Auxiliar de Limpeza",
			Department:    "Limpeza",
			AdmissionDate: "2023-01-15",
			ContractType:  domain.ContractCLT,
			Salary:        1500,
			Client:        "Empresa ABC",
			Status:        domain.EmployeeStatusActive,
		},
		{
			ID:            "2",
			Name:          "Maria Oliveira Costa",
			Email:         "maria.oliveira@email.com",
			CPF:           "987.654.321-09",
			Position:      "Vigilante",
			Department:    "Segurança",
			AdmissionDate: "2023-03-20",
			ContractType:  domain.ContractCLT,
			Salary:        1800,
			Client:        "Empresa XYZ",
			Status:        domain.EmployeeStatusActive,
		},
		{
			ID:            "3",
			Name:          "Carlos Eduardo Lima",
			Email:         "carlos.lima@email.com",
			CPF:           "456.789.123-45",
			Position:      "Jardineiro",
			Department:    "Jardinagem",
			AdmissionDate: "2023-05-10",
			ContractType:  domain.ContractCLT,
			Salary:        1600,
			Client:        "Empresa 123",
			Status:        domain.EmployeeStatusVacation,
		},
		{
			ID:            "4",
			Name:          "Ana Paula Rodrigues",
			Email:         "ana.rodrigues@email.com",
			CPF:           "789.123.456-78",
			Position:      "Recepcionista",
			Department:    "Recepção",
			AdmissionDate: "2023-02-28",
			ContractType:  domain.ContractCLT,
			Salary:        1700,
			Client:        "Empresa DEF",
			Status:        domain.EmployeeStatusActive,
		},
		{
			ID:            "5",
			Name:          "Pedro Henrique Souza",
			Email:         "pedro.souza@email.com",
			CPF:           "321.654.987-12",
			Position:      "Auxiliar de Serviços Gerais",
			Department:    "Limpeza",
			AdmissionDate: "2023-04-05",
			ContractType:  domain.ContractCLT,
			Salary:        1400,
			Client:        "Empresa GHI",
			Status:        domain.EmployeeStatusInactive,
		},
	}
}

// Vacations returns the vacation requests.
func Vacations() []domain.VacationRequest {
	return []domain.VacationRequest{
		{ID: "1", EmployeeID: "1", Employee: "João Silva Santos", StartDate: "2024-12-15", EndDate: "2024-12-29", Days: 14, Status: domain.VacationApproved, Type: domain.VacationTypeVacation},
		{ID: "2", EmployeeID: "2", Employee: "Maria Oliveira Costa", StartDate: "2025-01-10", EndDate: "2025-01-24", Days: 14, Status: domain.VacationPending, Type: domain.VacationTypeVacation},
		{ID: "3", EmployeeID: "3", Employee: "Carlos Eduardo Lima", StartDate: "2024-11-01", EndDate: "2024-11-15", Days: 14, Status: domain.VacationCompleted, Type: domain.VacationTypeVacation},
	}
}

// Attendance returns the monthly attendance summaries.
func Attendance() []domain.AttendanceSummary {
	return []domain.AttendanceSummary{
		{EmployeeID: "1", Employee: "João Silva Santos", Present: 22, Absent: 1, Late: 2, Overtime: 8},
		{EmployeeID: "2", Employee: "Maria Oliveira Costa", Present: 23, Absent: 0, Late: 0, Overtime: 12},
		{EmployeeID: "3", Employee: "Carlos Eduardo Lima", Present: 20, Absent: 3, Late: 1, Overtime: 4},
	}
}

// Trainings returns the training programmes.
func Trainings() []domain.TrainingRecord {
	return []domain.TrainingRecord{
		{ID: "1", Title: "Segurança no Trabalho", Employees: 45, Completed: 42, DueDate: "2024-12-31", Status: domain.TrainingActive, Category: "Segurança"},
		{ID: "2", Title: "Primeiros Socorros", Employees: 30, Completed: 25, DueDate: "2025-01-15", Status: domain.TrainingActive, Category: "Saúde"},
		{ID: "3", Title: "Uso de EPIs", Employees: 60, Completed: 60, DueDate: "2024-11-30", Status: domain.TrainingCompleted, Category: "Segurança"},
	}
}

// Benefits returns the benefit cards.
func Benefits() []domain.Benefit {
	return []domain.Benefit{
		{ID: "1", Name: "Vale Transporte", Type: domain.BenefitTransport, ActiveEmployees: 280, Enrolled: 245, MonthlyCost: 36750, Mandatory: true},
		{ID: "2", Name: "Vale Refeição", Type: domain.BenefitMeal, ActiveEmployees: 280, Enrolled: 275, MonthlyCost: 82500},
		{ID: "3", Name: "Plano de Saúde", Type: domain.BenefitHealth, ActiveEmployees: 280, Enrolled: 195, MonthlyCost: 97500},
		{ID: "4", Name: "Seguro de Vida", Type: domain.BenefitLife, ActiveEmployees: 280, Enrolled: 280, MonthlyCost: 8400},
	}
}

// Documents returns the tracked employee paperwork.
func Documents() []domain.Document {
	return []domain.Document{
		{ID: "1", EmployeeID: "1", Employee: "João Silva Santos", Type: domain.DocumentASO, Name: "ASO - Atestado de Saúde Ocupacional", Status: domain.DocumentPending, DueDate: "2024-12-15"},
		{ID: "2", EmployeeID: "2", Employee: "Maria Oliveira Costa", Type: domain.DocumentCTPS, Name: "Carteira de Trabalho (Foto)", Status: domain.DocumentPending},
		{ID: "3", EmployeeID: "3", Employee: "Carlos Eduardo Lima", Type: domain.DocumentComprovante, Name: "Comprovante de Residência", Status: domain.DocumentExpired, DueDate: "2024-11-01"},
		{ID: "4", EmployeeID: "4", Employee: "Ana Paula Rodrigues", Type: domain.DocumentRG, Name: "RG - Frente e Verso", Status: domain.DocumentReceived, UploadDate: "2023-02-28"},
		{ID: "5", EmployeeID: "5", Employee: "Pedro Henrique Souza", Type: domain.DocumentCPF, Name: "CPF", Status: domain.DocumentReceived, UploadDate: "2023-04-05"},
	}
}

// DocumentSummary returns the headcount per documentation state.
func DocumentSummary() domain.DocumentSummary {
	return domain.DocumentSummary{Complete: 265, Pending: 12, Expired: 3}
}

// PayrollMonths returns the payroll series, oldest first.
func PayrollMonths() []domain.PayrollMonth {
	return []domain.PayrollMonth{
		{Month: "Jan", Year: 2024, Total: 850000, Benefits: 120000, Taxes: 180000, Deductions: 170000, TotalCost: 1150000},
		{Month: "Fev", Year: 2024, Total: 870000, Benefits: 125000, Taxes: 185000, Deductions: 174000, TotalCost: 1180000},
		{Month: "Mar", Year: 2024, Total: 885000, Benefits: 128000, Taxes: 188000, Deductions: 177000, TotalCost: 1201000},
		{Month: "Abr", Year: 2024, Total: 890000, Benefits: 130000, Taxes: 190000, Deductions: 178000, TotalCost: 1210000},
		{Month: "Mai", Year: 2024, Total: 895000, Benefits: 132000, Taxes: 192000, Deductions: 179000, TotalCost: 1219000},
		{Month: "Jun", Year: 2024, Total: 900000, Benefits: 135000, Taxes: 195000, Deductions: 180000, TotalCost: 1230000},
	}
}

// DepartmentPayroll returns the payroll breakdown per department.
func DepartmentPayroll() []domain.DepartmentPayroll {
	return []domain.DepartmentPayroll{
		{Department: "Limpeza", Employees: 120, Salaries: 360000, Benefits: 54000, Taxes: 78000},
		{Department: "Segurança", Employees: 80, Salaries: 288000, Benefits: 43200, Taxes: 62400},
		{Department: "Jardinagem", Employees: 45, Salaries: 162000, Benefits: 24300, Taxes: 35100},
		{Department: "Recepção", Employees: 35, Salaries: 59500, Benefits: 8925, Taxes: 12885},
		{Department: "Outros", Employees: 20, Salaries: 30500, Benefits: 4575, Taxes: 6615},
	}
}

// ClientCosts returns the cost breakdown per client.
func ClientCosts() []domain.ClientCost {
	return []domain.ClientCost{
		{ClientID: "abc", Client: "Empresa ABC", Employees: 85, TotalCost: 340000, AvgCost: 4000, ContractValue: 450000, Margin: "24.4%", Status: "active"},
		{ClientID: "xyz", Client: "Empresa XYZ", Employees: 60, TotalCost: 240000, AvgCost: 4000, ContractValue: 320000, Margin: "25.0%", Status: "active"},
		{ClientID: "123", Client: "Empresa 123", Employees: 45, TotalCost: 180000, AvgCost: 4000, ContractValue: 245000, Margin: "26.5%", Status: "active"},
		{ClientID: "def", Client: "Empresa DEF", Employees: 70, TotalCost: 280000, AvgCost: 4000, ContractValue: 380000, Margin: "26.3%", Status: "active"},
		{ClientID: "ghi", Client: "Empresa GHI", Employees: 40, TotalCost: 160000, AvgCost: 4000, ContractValue: 220000, Margin: "27.3%", Status: "active"},
	}
}

// Payments returns the payroll disbursements, newest first.
func Payments() []domain.Payment {
	return []domain.Payment{
		{ID: "4", Date: "2024-12-05", Description: "Folha de Pagamento - Novembro", Employees: 300, Amount: 720000, Status: domain.PayrollPending},
		{ID: "3", Date: "2024-11-05", Description: "Folha de Pagamento - Outubro", Employees: 300, Amount: 720000, Status: domain.PayrollPaid},
		{ID: "2", Date: "2024-10-05", Description: "Folha de Pagamento - Setembro", Employees: 295, Amount: 708000, Status: domain.PayrollPaid},
		{ID: "1", Date: "2024-09-05", Description: "Folha de Pagamento - Agosto", Employees: 290, Amount: 696000, Status: domain.PayrollPaid},
	}
}

// ReportTypes returns the report catalog.
func ReportTypes() []domain.ReportType {
	return []domain.ReportType{
		{ID: "employees-active", Title: "Funcionários Ativos", Description: "Lista de todos os funcionários ativos por cliente/projeto", Category: "Funcionários"},
		{ID: "turnover", Title: "Turnover", Description: "Relatório de admissões e desligamentos por período", Category: "Funcionários"},
		{ID: "attendance", Title: "Frequência", Description: "Relatório de horas trabalhadas por funcionário/projeto", Category: "RH"},
		{ID: "vacation", Title: "Férias", Description: "Relatório de férias programadas e vencidas", Category: "RH"},
		{ID: "payroll-costs", Title: "Custos Consolidados", Description: "Relatório de custos consolidados por período", Category: "Financeiro"},
		{ID: "client-costs", Title: "Custos por Cliente", Description: "Análise de custos e margem por cliente", Category: "Financeiro"},
		{ID: "training", Title: "Treinamentos", Description: "Relatório de treinamentos realizados e pendentes", Category: "RH"},
		{ID: "documents", Title: "Documentação", Description: "Status da documentação dos funcionários", Category: "RH"},
	}
}

// RecentReports returns the generated report history.
func RecentReports() []domain.RecentReport {
	return []domain.RecentReport{
		{Name: "Funcionários Ativos - Novembro 2024", Type: "employees-active", Generated: "2024-11-30", Size: "2.3 MB"},
		{Name: "Custos Consolidados - Outubro 2024", Type: "payroll-costs", Generated: "2024-11-01", Size: "1.8 MB"},
		{Name: "Relatório de Turnover - Q3 2024", Type: "turnover", Generated: "2024-10-15", Size: "980 KB"},
		{Name: "Frequência por Departamento - Outubro", Type: "attendance", Generated: "2024-11-05", Size: "1.2 MB"},
	}
}

// Dashboard returns the dashboard widgets.
func Dashboard() domain.Dashboard {
	return domain.Dashboard{
		Stats: []domain.StatCard{
			{Icon: "📊", Value: "2,847", Label: "Vendas Totais", Change: "+12.5%", ChangeType: "positive", Color: "primary"},
			{Icon: "👥", Value: "1,429", Label: "Clientes Ativos", Change: "+8.2%", ChangeType: "positive", Color: "secondary"},
			{Icon: "💰", Value: "R$ 89.4K", Label: "Receita Mensal", Change: "+15.3%", ChangeType: "positive", Color: "success"},
			{Icon: "📈", Value: "97.2%", Label: "Taxa de Conversão", Change: "-2.1%", ChangeType: "negative", Color: "warning"},
		},
		Sales:       []int{65, 48, 82, 57, 91, 73, 88, 69, 95, 78, 84, 71},
		Performance: []int{45, 67, 83, 72, 56, 89, 94, 68, 76, 85},
		Activities: []domain.Activity{
			{Icon: "🎯", Title: "Nova Meta Alcançada", Description: "Vendas do mês superaram a meta em 15%", Time: "há 5 min"},
			{Icon: "🛍️", Title: "Pedido Processado", Description: "Pedido #3472 de João Silva foi enviado", Time: "há 12 min"},
			{Icon: "👤", Title: "Novo Cliente", Description: "Maria Santos se cadastrou na plataforma", Time: "há 28 min"},
			{Icon: "📦", Title: "Estoque Atualizado", Description: "Produto \"Smartphone XYZ\" reabastecido", Time: "há 1h"},
			{Icon: "💳", Title: "Pagamento Confirmado", Description: "Transação de R$ 1.247,90 aprovada", Time: "há 2h"},
		},
	}
}

// Profile returns the signed-in user's profile.
func Profile() domain.Profile {
	return domain.Profile{
		Name:       "Usuário Teste",
		Email:      "teste@email.com",
		Role:       "Administrator",
		Phone:      "(11) 99999-9999",
		Department: "Tecnologia da Informação",
		JoinDate:   "2023-03-15",
	}
}

// ProfileDocuments returns the documents listed on the profile page.
func ProfileDocuments() []domain.ProfileDocument {
	return []domain.ProfileDocument{
		{ID: "1", Name: "Contrato de Trabalho.pdf", Type: "PDF", UploadDate: "2023-03-15", Size: "2.3 MB"},
		{ID: "2", Name: "RG - Frente e Verso.pdf", Type: "PDF", UploadDate: "2023-03-15", Size: "1.8 MB"},
		{ID: "3", Name: "CPF.pdf", Type: "PDF", UploadDate: "2023-03-15", Size: "856 KB"},
		{ID: "4", Name: "Comprovante de Residência.pdf", Type: "PDF", UploadDate: "2023-03-20", Size: "1.2 MB"},
	}
}
