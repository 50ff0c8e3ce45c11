package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const maxBodyBytes = 1 << 20

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object and validates it
// when object implements validation.Validatable.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer func() {
		errClose := body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}
