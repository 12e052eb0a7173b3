package req

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode reads a JSON body into T and validates it against its `validate` tags
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request: %w", err)
	}
	if err := validate.Struct(payload); err != nil {
		return payload, err
	}
	return payload, nil
}
