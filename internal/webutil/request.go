package webutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go_5_vocab_srs/internal/model"
)

// maxRequestBodyBytes はリクエストボディの上限です。
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーです。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("empty request body: %w", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %v: %w", err, model.ErrInvalidInput)
	}
	return nil
}
