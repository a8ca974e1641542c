package llm_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/palazzem/shoshin/pkg/llm"
)

// testConfig points a client at a local stand-in for the hosted API.
func testConfig(srv *httptest.Server) llm.ClientConfig {
	return llm.ClientConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"}
}

// writeAPIError renders an error payload in the shape the hosted API uses.
func writeAPIError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error","param":null,"code":null}}`)
}
