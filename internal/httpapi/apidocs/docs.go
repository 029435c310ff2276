// Package apidocs registers the OpenAPI document served by the Swagger UI.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/process/chat": {
            "post": {
                "summary": "Send a chat message to a model",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.ChatRequest"}}],
                "responses": {
                    "200": {"description": "model output", "schema": {"$ref": "#/definitions/types.ChatResponse"}},
                    "400": {"description": "missing or unavailable model", "schema": {"$ref": "#/definitions/types.ChatResponse"}},
                    "500": {"description": "model failed", "schema": {"$ref": "#/definitions/types.ChatResponse"}}
                }
            }
        },
        "/api/process/summarize": {
            "post": {
                "summary": "Summarize text with a model",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.SummarizeRequest"}}],
                "responses": {
                    "200": {"description": "model output", "schema": {"$ref": "#/definitions/types.SummarizeResponse"}},
                    "400": {"description": "missing or unavailable model", "schema": {"$ref": "#/definitions/types.SummarizeResponse"}},
                    "500": {"description": "model failed", "schema": {"$ref": "#/definitions/types.SummarizeResponse"}}
                }
            }
        },
        "/api/models": {
            "get": {
                "summary": "List available models",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModelsResponse"}}}
            }
        },
        "/api/models/types/{type}": {
            "get": {
                "summary": "List available models of one type",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "type", "required": true, "type": "string", "enum": ["CHAT", "SUMMARIZE", "GENERATE_IMAGE"]}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModelsResponse"}}}
            }
        },
        "/health": {
            "get": {
                "summary": "Liveness",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthResponse"}}}
            }
        }
    },
    "definitions": {
        "types.Message": {
            "type": "object",
            "properties": {"actor": {"type": "string", "example": "user"}, "content": {"type": "string"}}
        },
        "types.ChatRequest": {
            "type": "object",
            "properties": {
                "modelName": {"type": "string", "example": "echo"},
                "userMessage": {"type": "string", "example": "hi"},
                "conversationHistory": {"type": "array", "items": {"$ref": "#/definitions/types.Message"}}
            }
        },
        "types.ChatResponse": {
            "type": "object",
            "properties": {"actor": {"type": "string"}, "content": {"type": "string"}, "error": {"type": "string"}}
        },
        "types.SummarizeRequest": {
            "type": "object",
            "properties": {"modelName": {"type": "string", "example": "py-summary"}, "originalText": {"type": "string"}}
        },
        "types.SummarizeResponse": {
            "type": "object",
            "properties": {"actor": {"type": "string"}, "summary": {"type": "string"}, "error": {"type": "string"}}
        },
        "types.ModelsResponse": {
            "type": "object",
            "properties": {"availableModels": {"type": "array", "items": {"type": "string"}}}
        },
        "types.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "ok"}, "timestamp": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "modelhub API",
	Description:      "Uniform HTTP interface over pluggable chat, summarization and image models.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
