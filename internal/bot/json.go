package bot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxResponseSize = 4 << 20

func decodeJSON(resp *http.Response, v any) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unmarshaling response: %w", err)
	}
	return nil
}
