package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// swaggerDoc serves a prepared OpenAPI document through the swag registry.
type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

// registerDocs publishes swagger at /swagger/index.html. The swag registry is
// process wide, so the document is registered once.
func registerDocs(e *echo.Echo, swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
