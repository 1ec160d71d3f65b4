// Package docs registers the OpenAPI document served under /swagger/. It is
// maintained by hand in the layout swag init produces.
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
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meta"
                ],
                "summary": "Service metadata",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ServiceInfo"
                        }
                    }
                }
            }
        },
        "/analyze": {
            "post": {
                "description": "Explain what is on a photo for the selected audience. Image is sent as base64 string in JSON, optionally with a data URI prefix.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "analyze"
                ],
                "summary": "Explain a photo",
                "parameters": [
                    {
                        "description": "Analyze request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AnalyzeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.AnalyzeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/modes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "meta"
                ],
                "summary": "List explanation modes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.ModesResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.AnalyzeRequest": {
            "type": "object",
            "required": [
                "image",
                "mode"
            ],
            "properties": {
                "image": {
                    "type": "string",
                    "example": "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQ..."
                },
                "mode": {
                    "enum": [
                        "kid",
                        "student",
                        "expert"
                    ],
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Mode"
                        }
                    ],
                    "example": "kid"
                }
            }
        },
        "models.AnalyzeResponse": {
            "type": "object",
            "properties": {
                "explanation": {
                    "type": "string",
                    "example": "I see a fluffy dog! It looks very happy."
                },
                "mode": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Mode"
                        }
                    ],
                    "example": "kid"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "timestamp": {
                    "type": "string",
                    "example": "2026-01-02T15:04:05Z"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "string",
                    "example": "Image too small (minimum 100x100 pixels)"
                }
            }
        },
        "models.Mode": {
            "type": "string",
            "enum": [
                "kid",
                "student",
                "expert"
            ],
            "x-enum-varnames": [
                "ModeKid",
                "ModeStudent",
                "ModeExpert"
            ]
        },
        "models.ModeInfo": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "example": "Simple, friendly explanations for children"
                },
                "id": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Mode"
                        }
                    ],
                    "example": "kid"
                },
                "name": {
                    "type": "string",
                    "example": "👶 Kid Mode"
                }
            }
        },
        "models.ModesResponse": {
            "type": "object",
            "properties": {
                "modes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ModeInfo"
                    }
                }
            }
        },
        "models.ServiceInfo": {
            "type": "object",
            "properties": {
                "endpoints": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "service": {
                    "type": "string",
                    "example": "Explain This Camera API"
                },
                "status": {
                    "type": "string",
                    "example": "running"
                },
                "version": {
                    "type": "string",
                    "example": "1.0.0"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Explain This Camera API",
	Description:      "Adaptive real-time image explanation system",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
