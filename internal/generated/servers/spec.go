package servers

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger returns the parsed OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}

// SecuredRoutes lists the operations that require a session, keyed by
// "METHOD path" with paths in echo syntax under baseURL. An operation is
// secured unless it overrides the document-level security with an empty list.
func SecuredRoutes(swagger *openapi3.T, baseURL string) map[string]bool {
	routes := make(map[string]bool)
	for path, item := range swagger.Paths.Map() {
		for method, op := range item.Operations() {
			security := swagger.Security
			if op.Security != nil {
				security = *op.Security
			}
			if len(security) > 0 {
				routes[method+" "+baseURL+echoPath(path)] = true
			}
		}
	}
	return routes
}

// echoPath turns "/orders/{orderId}" into "/orders/:orderId".
func echoPath(path string) string {
	var b strings.Builder
	for _, segment := range strings.SplitAfter(path, "/") {
		if strings.HasPrefix(segment, "{") {
			trailing := strings.HasSuffix(segment, "/")
			segment = ":" + strings.Trim(segment, "{}/")
			if trailing {
				segment += "/"
			}
		}
		b.WriteString(segment)
	}
	return b.String()
}
