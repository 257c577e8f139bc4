package filter

import (
	"reflect"
	"testing"
)

type person struct {
	Name   string
	Email  string
	Status string
	Dept   string
}

var people = []person{
	{Name: "João Silva Santos", Email: "joao.silva@email.com", Status: "active", Dept: "Limpeza"},
	{Name: "Maria Oliveira Costa", Email: "maria.oliveira@email.com", Status: "active", Dept: "Segurança"},
	{Name: "Carlos Eduardo Lima", Email: "carlos.lima@email.com", Status: "vacation", Dept: "Jardinagem"},
	{Name: "Pedro Henrique Souza", Email: "pedro.souza@email.com", Status: "inactive", Dept: "Limpeza"},
}

func byName(p person) string   { return p.Name }
func byEmail(p person) string  { return p.Email }
func byStatus(p person) string { return p.Status }
func byDept(p person) string   { return p.Dept }

func TestEmptyTextIsIdentity(t *testing.T) {
	for _, q := range []string{"", "   "} {
		got := New[person]().Text(q, byName, byEmail).Apply(people)
		if !reflect.DeepEqual(got, people) {
			t.Fatalf("query %q: expected identity, got %v", q, got)
		}
	}
}

func TestTextIsCaseInsensitiveAcrossFields(t *testing.T) {
	got := New[person]().Text("MARIA", byName, byEmail).Apply(people)
	if len(got) != 1 || got[0].Name != "Maria Oliveira Costa" {
		t.Fatalf("unexpected result %v", got)
	}

	got = New[person]().Text("lima@", byName, byEmail).Apply(people)
	if len(got) != 1 || got[0].Name != "Carlos Eduardo Lima" {
		t.Fatalf("expected match on email, got %v", got)
	}
}

func TestAllSelectorIsNoop(t *testing.T) {
	for _, sel := range []string{All, ""} {
		got := New[person]().Equals(sel, byStatus).Apply(people)
		if !reflect.DeepEqual(got, people) {
			t.Fatalf("selector %q should be a no-op", sel)
		}
	}
}

func TestEqualsRequiresExactMatch(t *testing.T) {
	got := New[person]().Equals("vacation", byStatus).Apply(people)
	if len(got) != 1 || got[0].Name != "Carlos Eduardo Lima" {
		t.Fatalf("unexpected result %v", got)
	}
	if got := New[person]().Equals("Active", byStatus).Apply(people); len(got) != 0 {
		t.Fatalf("selectors are case sensitive, got %v", got)
	}
}

func TestEqualsTrimsSelector(t *testing.T) {
	if got := New[person]().Equals("  ", byStatus).Apply(people); len(got) != len(people) {
		t.Fatalf("blank selector should be a no-op, got %d records", len(got))
	}
	got := New[person]().Equals(" vacation ", byStatus).Apply(people)
	if len(got) != 1 || got[0].Name != "Carlos Eduardo Lima" {
		t.Fatalf("padded selector should match vacation, got %v", got)
	}
	if got := New[person]().Equals(" all", byStatus).Apply(people); len(got) != len(people) {
		t.Fatalf("padded all should be a no-op, got %d records", len(got))
	}
}

func TestPredicatesAreAnded(t *testing.T) {
	got := New[person]().Equals("active", byStatus).Equals("Limpeza", byDept).Apply(people)
	if len(got) != 1 || got[0].Name != "João Silva Santos" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestApplyIsIdempotentAndStable(t *testing.T) {
	chain := New[person]().Text("a", byName).Equals("Limpeza", byDept)
	once := chain.Apply(people)
	twice := chain.Apply(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %v vs %v", once, twice)
	}
	if once[0].Name != "João Silva Santos" || once[1].Name != "Pedro Henrique Souza" {
		t.Fatalf("input order not preserved: %v", once)
	}
}

func TestNoMatchYieldsEmptyNonNil(t *testing.T) {
	got := New[person]().Text("zzz", byName).Apply(people)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCountAndDistinct(t *testing.T) {
	active := Count(people, func(p person) bool { return p.Status == "active" })
	if active != 2 {
		t.Fatalf("expected 2 active, got %d", active)
	}
	depts := Distinct(people, byDept)
	want := []string{"Limpeza", "Segurança", "Jardinagem"}
	if !reflect.DeepEqual(depts, want) {
		t.Fatalf("expected %v, got %v", want, depts)
	}
}
