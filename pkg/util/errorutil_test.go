package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorKeepsDomainErrors(t *testing.T) {
	original := NewValidationError("invalid", map[string]any{"name": "Nome é obrigatório"})
	converted := ToDomainError(original)
	if converted.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %s", converted.Code)
	}
	if converted.Details["name"] != "Nome é obrigatório" {
		t.Fatalf("expected details to survive conversion, got %v", converted.Details)
	}
}

func TestToDomainErrorMapsNoRowsToNotFound(t *testing.T) {
	converted := ToDomainError(pgx.ErrNoRows)
	if converted.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", converted.HTTPStatus)
	}
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("boom")
	converted := ToDomainError(cause)
	if converted.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", converted.HTTPStatus)
	}
	if !errors.Is(converted, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
}

func TestAuthFailedKeepsUserFacingMessage(t *testing.T) {
	err := NewAuthFailed("Erro na autenticação. Tente novamente.", errors.New("redis down"))
	if ToDomainError(err).Message != "Erro na autenticação. Tente novamente." {
		t.Fatalf("unexpected message %q", ToDomainError(err).Message)
	}
}
