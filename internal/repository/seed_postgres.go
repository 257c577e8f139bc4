package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idealiza/admin-service/internal/seed"
)

// SeedPostgres loads the literal records into the schema created by the migrations.
// Existing rows are left untouched, so the call is safe on every start.
func SeedPostgres(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	if pool == nil {
		return 0, nil
	}
	batch := seedBatch()
	results := pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return i, fmt.Errorf("seed statement %d: %w", i, err)
		}
	}
	return batch.Len(), nil
}

func seedBatch() *pgx.Batch {
	batch := &pgx.Batch{}

	for i, e := range seed.Employees() {
		batch.Queue(`
            INSERT INTO employees (id, seq, name, email, cpf, rg, birth_date, phone, address, position, department,
                admission_date, contract_type, salary, client, status)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
            ON CONFLICT (id) DO NOTHING`,
			e.ID, i, e.Name, e.Email, e.CPF, e.RG, e.BirthDate, e.Phone, e.Address, e.Position, e.Department,
			e.AdmissionDate, string(e.ContractType), e.Salary, e.Client, string(e.Status))
	}
	for i, v := range seed.Vacations() {
		batch.Queue(`
            INSERT INTO vacation_requests (id, seq, employee_id, employee, start_date, end_date, days, status, type, observations)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
            ON CONFLICT (id) DO NOTHING`,
			v.ID, i, v.EmployeeID, v.Employee, v.StartDate, v.EndDate, v.Days, string(v.Status), string(v.Type), v.Observations)
	}
	for i, a := range seed.Attendance() {
		batch.Queue(`
            INSERT INTO attendance_summaries (employee_id, seq, employee, present, absent, late, overtime)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            ON CONFLICT (employee_id) DO NOTHING`,
			a.EmployeeID, i, a.Employee, a.Present, a.Absent, a.Late, a.Overtime)
	}
	for i, t := range seed.Trainings() {
		batch.Queue(`
            INSERT INTO training_records (id, seq, title, description, employees, completed, due_date, status, category)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
            ON CONFLICT (id) DO NOTHING`,
			t.ID, i, t.Title, t.Description, t.Employees, t.Completed, t.DueDate, string(t.Status), t.Category)
	}
	for i, b := range seed.Benefits() {
		batch.Queue(`
            INSERT INTO benefits (id, seq, name, type, active_employees, enrolled, monthly_cost, mandatory)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
            ON CONFLICT (id) DO NOTHING`,
			b.ID, i, b.Name, string(b.Type), b.ActiveEmployees, b.Enrolled, b.MonthlyCost, b.Mandatory)
	}
	for i, d := range seed.Documents() {
		batch.Queue(`
            INSERT INTO documents (id, seq, employee_id, employee, type, name, status, due_date, upload_date)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
            ON CONFLICT (id) DO NOTHING`,
			d.ID, i, d.EmployeeID, d.Employee, string(d.Type), d.Name, string(d.Status), d.DueDate, d.UploadDate)
	}
	summary := seed.DocumentSummary()
	batch.Queue(`
        INSERT INTO document_summary (id, complete, pending, expired)
        VALUES (1,$1,$2,$3)
        ON CONFLICT (id) DO NOTHING`,
		summary.Complete, summary.Pending, summary.Expired)
	for i, p := range seed.PayrollMonths() {
		batch.Queue(`
            INSERT INTO payroll_months (seq, month, year, total, benefits, taxes, deductions, total_cost)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
            ON CONFLICT (seq) DO NOTHING`,
			i, p.Month, p.Year, p.Total, p.Benefits, p.Taxes, p.Deductions, p.TotalCost)
	}
	for i, d := range seed.DepartmentPayroll() {
		batch.Queue(`
            INSERT INTO department_payroll (department, seq, employees, salaries, benefits, taxes)
            VALUES ($1,$2,$3,$4,$5,$6)
            ON CONFLICT (department) DO NOTHING`,
			d.Department, i, d.Employees, d.Salaries, d.Benefits, d.Taxes)
	}
	for i, c := range seed.ClientCosts() {
		batch.Queue(`
            INSERT INTO client_costs (client_id, seq, client, employees, total_cost, avg_cost, contract_value, margin, status)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
            ON CONFLICT (client_id) DO NOTHING`,
			c.ClientID, i, c.Client, c.Employees, c.TotalCost, c.AvgCost, c.ContractValue, c.Margin, c.Status)
	}
	for i, p := range seed.Payments() {
		batch.Queue(`
            INSERT INTO payments (id, seq, date, description, employees, amount, status)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            ON CONFLICT (id) DO NOTHING`,
			p.ID, i, p.Date, p.Description, p.Employees, p.Amount, string(p.Status))
	}
	for i, rt := range seed.ReportTypes() {
		batch.Queue(`
            INSERT INTO report_types (id, seq, title, description, category)
            VALUES ($1,$2,$3,$4,$5)
            ON CONFLICT (id) DO NOTHING`,
			rt.ID, i, rt.Title, rt.Description, rt.Category)
	}
	for i, rr := range seed.RecentReports() {
		batch.Queue(`
            INSERT INTO recent_reports (seq, name, type, generated, size)
            VALUES ($1,$2,$3,$4,$5)
            ON CONFLICT (seq) DO NOTHING`,
			i, rr.Name, rr.Type, rr.Generated, rr.Size)
	}
	queueDashboard(batch)
	queueProfile(batch)
	return batch
}

func queueDashboard(batch *pgx.Batch) {
	dashboard := seed.Dashboard()
	for i, s := range dashboard.Stats {
		batch.Queue(`
            INSERT INTO dashboard_stats (seq, icon, value, label, change, change_type, color)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            ON CONFLICT (seq) DO NOTHING`,
			i, s.Icon, s.Value, s.Label, s.Change, s.ChangeType, s.Color)
	}
	for series, values := range map[string][]int{seriesSales: dashboard.Sales, seriesPerformance: dashboard.Performance} {
		for i, v := range values {
			batch.Queue(`
                INSERT INTO dashboard_series (series, seq, value)
                VALUES ($1,$2,$3)
                ON CONFLICT (series, seq) DO NOTHING`,
				series, i, v)
		}
	}
	for i, a := range dashboard.Activities {
		batch.Queue(`
            INSERT INTO dashboard_activities (seq, icon, title, description, time)
            VALUES ($1,$2,$3,$4,$5)
            ON CONFLICT (seq) DO NOTHING`,
			i, a.Icon, a.Title, a.Description, a.Time)
	}
}

func queueProfile(batch *pgx.Batch) {
	p := seed.Profile()
	batch.Queue(`
        INSERT INTO profile (id, name, email, role, phone, department, join_date)
        VALUES (1,$1,$2,$3,$4,$5,$6)
        ON CONFLICT (id) DO NOTHING`,
		p.Name, p.Email, p.Role, p.Phone, p.Department, p.JoinDate)
	for i, d := range seed.ProfileDocuments() {
		batch.Queue(`
            INSERT INTO profile_documents (id, seq, name, type, upload_date, size)
            VALUES ($1,$2,$3,$4,$5,$6)
            ON CONFLICT (id) DO NOTHING`,
			d.ID, i, d.Name, d.Type, d.UploadDate, d.Size)
	}
}
