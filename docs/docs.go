// Package docs registra la especificación Swagger de la API (ver swagger.json).
// Regenerar con: swag init -g cmd/api/main.go -o docs
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var docTemplate string

// SwaggerInfo metadatos exportados de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventario de Proyectos API",
	Description:      "Inventario, proyectos, movimientos de stock, disponibilidad de componentes y reportes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// JSON devuelve la especificación registrada, lista para servirla sin depender del directorio de trabajo.
func JSON() []byte {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return []byte(SwaggerInfo.ReadDoc())
	}
	return []byte(doc)
}
