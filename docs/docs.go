// Package docs registers the OpenAPI description of the API with swag so
// echo-swagger can serve it at /swagger. It is maintained by hand alongside
// the handler annotations.
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
		"/auth/signup": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Create an account",
				"parameters": [
					{
						"type": "string",
						"description": "Form instance key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "Signup form",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.signupRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.signupResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"description": "The optional role is checked against the account; on mismatch the new session is signed out.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Login",
				"parameters": [
					{
						"type": "string",
						"description": "Form instance key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "Login credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.loginResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"auth"
				],
				"summary": "Logout",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/auth/session": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Current session",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.sessionResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/events": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "List events",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.eventListResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/events/{id}/positions": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "List an event's staffing positions",
				"parameters": [
					{
						"type": "string",
						"description": "Event ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.positionListResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/organiser/events": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"events"
				],
				"summary": "Create an event with staffing positions",
				"parameters": [
					{
						"type": "string",
						"description": "Form instance key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "Event",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createEventRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createEventResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/vendor/profile": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns {\"profile\": null} when the vendor has not saved one yet.",
				"produces": [
					"application/json"
				],
				"tags": [
					"vendor"
				],
				"summary": "Get the vendor profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.profileResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"vendor"
				],
				"summary": "Create or update the vendor profile",
				"parameters": [
					{
						"description": "Profile",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.profileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.profileResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/vendor/applications": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"vendor"
				],
				"summary": "List events the vendor applied to",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.applicationsResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"vendor"
				],
				"summary": "Apply to work an event",
				"parameters": [
					{
						"type": "string",
						"description": "Form instance key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "Event to apply for",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.applyRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/vendor/documents": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"vendor"
				],
				"summary": "Upload a verification document",
				"parameters": [
					{
						"type": "string",
						"description": "Form instance key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"type": "string",
						"description": "GovID or Business",
						"name": "doc_type",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "Image or PDF",
						"name": "file",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.VendorDocument"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.errorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"domain.Account": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"domain.Destination": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"path": {
					"type": "string"
				}
			}
		},
		"domain.Event": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"organiser_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"event_date": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"domain.Position": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"event_id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				}
			}
		},
		"domain.VendorProfile": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"contact": {
					"type": "string"
				},
				"business_type": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				},
				"verified": {
					"type": "boolean"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"domain.VendorDocument": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"vendor_id": {
					"type": "string"
				},
				"doc_type": {
					"type": "string"
				},
				"file_url": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"uploaded_at": {
					"type": "string"
				}
			}
		},
		"handler.signupRequest": {
			"type": "object",
			"required": [
				"email",
				"full_name",
				"password",
				"role"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 8
				},
				"role": {
					"type": "string",
					"enum": [
						"vendor",
						"company",
						"organiser"
					]
				}
			}
		},
		"handler.loginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"type": "string",
					"enum": [
						"vendor",
						"company",
						"organiser"
					]
				}
			}
		},
		"handler.signupResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/domain.Account"
				}
			}
		},
		"handler.loginResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"expires_at": {
					"type": "string"
				},
				"destination": {
					"$ref": "#/definitions/domain.Destination"
				},
				"user": {
					"$ref": "#/definitions/domain.Account"
				}
			}
		},
		"handler.sessionResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/domain.Account"
				},
				"destination": {
					"$ref": "#/definitions/domain.Destination"
				}
			}
		},
		"handler.positionRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				}
			}
		},
		"handler.createEventRequest": {
			"type": "object",
			"required": [
				"event_date",
				"location",
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"event_date": {
					"type": "string",
					"example": "2026-05-01"
				},
				"location": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"positions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handler.positionRequest"
					}
				}
			}
		},
		"handler.createEventResponse": {
			"type": "object",
			"properties": {
				"event": {
					"$ref": "#/definitions/domain.Event"
				},
				"positions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Position"
					}
				},
				"warning": {
					"type": "string"
				}
			}
		},
		"handler.eventListResponse": {
			"type": "object",
			"properties": {
				"events": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Event"
					}
				}
			}
		},
		"handler.positionListResponse": {
			"type": "object",
			"properties": {
				"positions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Position"
					}
				}
			}
		},
		"handler.profileRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"contact": {
					"type": "string"
				},
				"business_type": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				}
			}
		},
		"handler.profileResponse": {
			"type": "object",
			"properties": {
				"profile": {
					"$ref": "#/definitions/domain.VendorProfile"
				}
			}
		},
		"handler.applyRequest": {
			"type": "object",
			"required": [
				"event_id"
			],
			"properties": {
				"event_id": {
					"type": "string"
				}
			}
		},
		"handler.applicationsResponse": {
			"type": "object",
			"properties": {
				"event_ids": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"handler.messageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the access token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hospitality Hub API",
	Description:      "Accounts, role routing and dashboards for vendors, companies and event organisers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
