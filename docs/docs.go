// Package docs registra el documento OpenAPI que sirve /swagger/*. Se mantiene a mano a
// partir de las anotaciones godoc de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/adopters": {
            "get": {"produces": ["application/json"], "tags": ["adopters"], "summary": "Listar adoptantes", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/adopters-delete": {
            "delete": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["adopters"], "summary": "Borrar adoptante", "description": "Sus solicitudes de adopción se borran en cascada.", "parameters": [{"description": "Adoptante", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/adopters.deleteAdopterRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "404": {"description": "adopter not found", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/animals": {
            "get": {"produces": ["application/json"], "tags": ["animals"], "summary": "Animales con especie", "responses": {"200": {"description": "OK"}}}
        },
        "/applications": {
            "get": {"produces": ["application/json"], "tags": ["applications"], "summary": "Listar solicitudes de adopción", "responses": {"200": {"description": "OK"}}}
        },
        "/applications-submit": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["applications"], "summary": "Crear solicitud de adopción", "parameters": [{"description": "Solicitud", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/applications.applicationRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "400": {"description": "fecha/estado/IDs inválidos", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "409": {"description": "la solicitud ya existe o referencia filas inexistentes", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/applications-update": {
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["applications"], "summary": "Actualizar estado/fecha de una solicitud", "parameters": [{"description": "Solicitud", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/applications.applicationRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "404": {"description": "application not found", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/applications-withdraw": {
            "delete": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["applications"], "summary": "Retirar (borrar) una solicitud", "parameters": [{"description": "Clave de la solicitud", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/applications.keyRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "404": {"description": "application not found", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/available-animals": {
            "get": {"produces": ["application/json"], "tags": ["animals"], "summary": "Animales disponibles", "responses": {"200": {"description": "OK"}}}
        },
        "/check-db-connection": {
            "get": {"produces": ["text/plain"], "tags": ["health"], "summary": "Verificar conexión a la base", "responses": {"200": {"description": "connected", "schema": {"type": "string"}}, "503": {"description": "unable to connect", "schema": {"type": "string"}}}}
        },
        "/count-demotable": {
            "get": {"produces": ["application/json"], "tags": ["demotable"], "summary": "Contar filas de la tabla demo", "responses": {"200": {"description": "OK"}}}
        },
        "/demotable": {
            "get": {"produces": ["application/json"], "tags": ["demotable"], "summary": "Filas de la tabla demo", "responses": {"200": {"description": "OK"}, "404": {"description": "tabla no inicializada", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/donors-attend-all-events": {
            "get": {"produces": ["application/json"], "tags": ["donors"], "summary": "Donantes que asistieron a todos los eventos", "responses": {"200": {"description": "OK"}}}
        },
        "/events": {
            "get": {"produces": ["application/json"], "tags": ["events"], "summary": "Listar eventos", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/events.eventResponse"}}}}},
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["events"], "summary": "Filtrar eventos", "parameters": [{"description": "Condiciones", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/events.filterEventsRequest"}}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/events.eventResponse"}}}, "400": {"description": "atributo/valor/conector inválido", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/health": {
            "get": {"produces": ["text/plain"], "tags": ["health"], "summary": "Liveness", "responses": {"200": {"description": "ok", "schema": {"type": "string"}}}}
        },
        "/initiate-demotable": {
            "post": {"produces": ["application/json"], "tags": ["demotable"], "summary": "(Re)crear la tabla demo", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/insert-demotable": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["demotable"], "summary": "Insertar fila en la tabla demo", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "409": {"description": "id repetido", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/projection": {
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["projection"], "summary": "Proyectar columnas de una tabla", "parameters": [{"description": "Tabla y columnas", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/projection.ProjectInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/projection.Result"}}, "400": {"description": "tabla/columna desconocida", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/projection/tables": {
            "get": {"produces": ["application/json"], "tags": ["projection"], "summary": "Tablas y columnas proyectables", "responses": {"200": {"description": "OK"}}}
        },
        "/shelters": {
            "get": {"produces": ["application/json"], "tags": ["shelters"], "summary": "Listar sucursales", "responses": {"200": {"description": "OK"}}}
        },
        "/shelters-update": {
            "put": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["shelters"], "summary": "Actualizar teléfono y dirección de una sucursal", "parameters": [{"description": "Contacto", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/shelters.updateShelterRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "400": {"description": "teléfono/dirección inválidos", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "404": {"description": "shelter not found", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/top-donors": {
            "get": {"produces": ["application/json"], "tags": ["donors"], "summary": "Donantes por encima del promedio", "responses": {"200": {"description": "OK"}}}
        },
        "/update-name-demotable": {
            "post": {"consumes": ["application/json"], "produces": ["application/json"], "tags": ["demotable"], "summary": "Renombrar filas de la tabla demo", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}, "404": {"description": "ninguna fila con oldName", "schema": {"$ref": "#/definitions/httpx.SuccessResponse"}}}}
        },
        "/vaccinations": {
            "get": {"produces": ["application/json"], "tags": ["animals"], "summary": "Cantidad de vacunas por animal", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "adopters.deleteAdopterRequest": {"type": "object", "properties": {"adopterID": {"type": "integer"}}},
        "applications.keyRequest": {"type": "object", "properties": {"adopterID": {"type": "integer"}, "animalID": {"type": "integer"}, "branchID": {"type": "integer"}}},
        "applications.applicationRequest": {"type": "object", "properties": {"adopterID": {"type": "integer"}, "animalID": {"type": "integer"}, "branchID": {"type": "integer"}, "applicationDate": {"type": "string", "example": "2024-01-15"}, "applicationStatus": {"type": "string", "enum": ["accepted", "rejected", "pending"]}}},
        "events.conditionInput": {"type": "object", "properties": {"attribute": {"type": "string"}, "connective": {"type": "string"}, "value": {"type": "string"}}},
        "events.filterEventsRequest": {"type": "object", "properties": {"where": {"type": "array", "items": {"$ref": "#/definitions/events.conditionInput"}}}},
        "events.eventResponse": {"type": "object", "properties": {"eventDate": {"type": "string"}, "eventID": {"type": "integer"}, "eventLocation": {"type": "string"}, "eventType": {"type": "string"}, "title": {"type": "string"}}},
        "httpx.SuccessResponse": {"type": "object", "properties": {"error": {"type": "string"}, "success": {"type": "boolean"}}},
        "projection.ProjectInput": {"type": "object", "properties": {"attributes": {"type": "array", "items": {"type": "string"}}, "table_name": {"type": "string"}}},
        "projection.Result": {"type": "object", "properties": {"columns": {"type": "array", "items": {"type": "string"}}, "rows": {"type": "array", "items": {"type": "object", "additionalProperties": true}}}},
        "shelters.updateShelterRequest": {"type": "object", "properties": {"branchID": {"type": "integer"}, "phoneNum": {"type": "string", "example": "6045551234"}, "shelterAddress": {"type": "string", "example": "123 Main St, Vancouver"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shelter Admin API",
	Description:      "API de administración de refugios: animales, solicitudes de adopción, donantes, eventos y sucursales.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
