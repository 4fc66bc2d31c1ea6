package entity

import (
	"errors"
	"strings"
)

// Entidade: Tag
// O nome é a chave natural (unique no banco): "Alto Valor" criada uma vez,
// reaproveitada em todos os leads.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (t *Tag) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("tag name is required")
	}
	return nil
}
