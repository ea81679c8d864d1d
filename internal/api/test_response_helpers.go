package api

import (
	"encoding/json"
	"io"
	"testing"
)

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]any{}
	decodeJSONBody(t, body, &payload)
	message, _ := payload["error"].(string)
	return message
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(bytes), err)
	}
}
