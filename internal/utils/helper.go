package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/casafurnish/storefront-gateway/internal/errors"
)

// DecodeJSONBody reads and parses the request body into dest. Failures come
// back as AppErrors so the caller can hand them straight to response.Error.
func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.BadRequestError("Failed to read request body").WithError(err)
	}
	defer r.Body.Close()

	if len(body) == 0 {
		return errors.BadRequestError("Request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.BadRequestError("Invalid JSON in request body").WithError(err)
	}

	return nil
}
