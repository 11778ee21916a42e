package store

import (
	"errors"

	"github.com/shopspring/decimal"

	"autorepair/models"
)

// Seed inserts the fixture records a fresh database starts with: one admin,
// three client accounts, two parts and two tools. Inserts that collide with
// rows from an earlier run are skipped silently; anything else aborts.
func (s *Store) Seed() error {
	users := []NewUser{
		{Username: "admin", Password: "admin123", FullName: "Administrador chefe", Email: "admin@autorepair.com", Phone: "1198765432", Role: models.RoleAdmin},
		{Username: "cliente1", Password: "cli123", FullName: "João Silva", Email: "enzo@mail.com", Phone: "11988880000", Role: models.RoleClient},
		{Username: "cliente2", Password: "cli123", FullName: "Guilherme Gomes", Email: "guilherme@mail.com", Phone: "11977770000", Role: models.RoleClient},
		{Username: "cliente3", Password: "cli123", FullName: "Igor Souza", Email: "igor@mail.com", Phone: "11966660000", Role: models.RoleClient},
	}
	for _, u := range users {
		if _, err := s.CreateUser(u); err != nil && !errors.Is(err, ErrDuplicateKey) {
			return err
		}
	}

	parts := []NewPart{
		{Name: "Filtro de Óleo", SKU: "P-OIL-001", Quantity: 20, UnitPrice: decimal.NewFromFloat(35.0), Description: "Filtro padrão para motores 1.6/2.0"},
		{Name: "Pastilha de Freio", SKU: "P-BRK-002", Quantity: 50, UnitPrice: decimal.NewFromFloat(80.0), Description: "Pastilha dianteira"},
	}
	for _, p := range parts {
		if _, err := s.CreatePart(p); err != nil && !errors.Is(err, ErrDuplicateKey) {
			return err
		}
	}

	tools := []NewTool{
		{Name: "Macaco Hidráulico", Code: "T-JCK-001", Available: 1, Description: "Capacidade 2 toneladas"},
		{Name: "Chave de Roda", Code: "T-WLK-002", Available: 5, Description: "Padrão 17mm"},
	}
	for _, t := range tools {
		if _, err := s.CreateTool(t); err != nil && !errors.Is(err, ErrDuplicateKey) {
			return err
		}
	}

	return nil
}
