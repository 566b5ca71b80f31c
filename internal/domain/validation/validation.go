// Package validation implementa las reglas de validación de envíos.
//
// Cada regla se evalúa en orden y la primera que falla aborta el envío con un único
// *domain.ValidationError. Los números llegan como texto: "no es un número" es una regla
// más, no un error de decodificación.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func fail(msg string) error { return domain.NewValidationError(msg) }

func trim(s string) string { return strings.TrimSpace(s) }

func required(s, msg string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fail(msg)
	}
	return s, nil
}

// parseInt acepta solo enteros en base 10 (con espacios alrededor).
func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Email valida presencia y formato; devuelve el email normalizado en minúsculas.
func Email(s string) (string, error) {
	s, err := required(s, "El correo electrónico es requerido")
	if err != nil {
		return "", err
	}
	if !emailRe.MatchString(s) {
		return "", fail("El formato del correo electrónico no es válido")
	}
	return strings.ToLower(s), nil
}
