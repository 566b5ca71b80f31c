package http

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// bodyError cuerpo JSON ilegible o con claves no permitidas.
type bodyError struct {
	msg string
}

func (e *bodyError) Error() string { return e.msg }

// parseBody decodifica el cuerpo con el parser de fiber; campos desconocidos se ignoran.
// Sin Content-Type JSON el cuerpo se rechaza.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &bodyError{msg: msgInvalidBody}
	}
	return nil
}

// parsePatch decodifica un PUT parcial y rechaza claves que no sean campos editables.
func parsePatch(c *fiber.Ctx, out any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		if field, ok := unknownField(err); ok {
			return &bodyError{msg: "Campo no permitido: " + field}
		}
		return &bodyError{msg: msgInvalidBody}
	}
	if dec.More() {
		return &bodyError{msg: msgInvalidBody}
	}
	return nil
}

// unknownField extrae el nombre del campo del error de DisallowUnknownFields.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}
