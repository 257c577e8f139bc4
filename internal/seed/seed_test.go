package seed

import "testing"

func TestAccessorsReturnFreshCopies(t *testing.T) {
	first := Employees()
	first[0].Name = "changed"
	if Employees()[0].Name != "João Silva Santos" {
		t.Fatalf("seed data was mutated through a returned slice")
	}
}

func TestReferencesPointAtKnownEmployees(t *testing.T) {
	ids := map[string]bool{}
	for _, e := range Employees() {
		ids[e.ID] = true
	}
	for _, v := range Vacations() {
		if !ids[v.EmployeeID] {
			t.Fatalf("vacation %s references unknown employee %s", v.ID, v.EmployeeID)
		}
	}
	for _, d := range Documents() {
		if !ids[d.EmployeeID] {
			t.Fatalf("document %s references unknown employee %s", d.ID, d.EmployeeID)
		}
	}
}
