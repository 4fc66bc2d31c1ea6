package usecase

import (
	"database/sql"
	"errors"
)

// Erros de negócio (entrada inválida, estágio desconhecido): viram 4xx.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// Erros técnicos (banco fora, rede): o chamador só sabe que falhou.
// Nada é retentado automaticamente.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// leadLookupError separa "não existe" de "banco fora do ar": só a ausência
// da linha é erro de negócio, o resto sobe como falha técnica.
func leadLookupError(id string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead não encontrado: " + id}
	}
	return &TechnicalError{
		Code:    "DATABASE_ERROR",
		Message: "falha ao buscar lead: " + err.Error(),
	}
}
