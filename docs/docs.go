// Package docs registers the OpenAPI description served under /swagger/.
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
        "/api/send": {
            "post": {
                "description": "Sends native SOL from the configured sender to the given devnet address and waits for confirmation",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transfer"],
                "summary": "Send SOL",
                "parameters": [
                    {
                        "description": "Transfer data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.SendRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SendResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "402": {"description": "Payment Required", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/state": {
            "get": {
                "description": "Returns the current inputs, submission status and last outcome of the transfer form",
                "produces": ["application/json"],
                "tags": ["transfer"],
                "summary": "Get form state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.FormState"}}
                }
            }
        },
        "/api/wallet": {
            "get": {
                "description": "Returns the sender address, its SOL balance and a QR code of the address for funding",
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Get sender wallet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WalletResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Checks that the Solana RPC endpoint answers getVersion",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"},
                "txId": {"type": "string"}
            }
        },
        "model.FormState": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "amount": {"type": "string"},
                "error": {"$ref": "#/definitions/model.ErrorResponse"},
                "result": {"$ref": "#/definitions/model.SendResult"},
                "status": {"type": "string", "enum": ["IDLE", "SUBMITTING", "COMPLETED", "FAILED"]}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "rpcUrl": {"type": "string"},
                "senderAddress": {"type": "string"},
                "solanaCore": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "model.SendRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "0.05"},
                "toAddress": {"type": "string", "example": "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"}
            }
        },
        "model.SendResponse": {
            "type": "object",
            "properties": {
                "explorerUrl": {"type": "string"},
                "txId": {"type": "string"}
            }
        },
        "model.SendResult": {
            "type": "object",
            "properties": {
                "completedAt": {"type": "string"},
                "explorerUrl": {"type": "string"},
                "txId": {"type": "string"}
            }
        },
        "model.WalletResponse": {
            "type": "object",
            "properties": {
                "QR": {"type": "string"},
                "address": {"type": "string"},
                "sol": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Devnet Transfer API",
	Description:      "Send native SOL on Solana devnet from a configured sender wallet.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
