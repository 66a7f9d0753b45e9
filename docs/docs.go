// Package docs holds the OpenAPI 2.0 document served under /swagger. It is
// maintained by hand alongside the handler annotations.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.detailResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Revoke the current token",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.detailResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.detailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/contacts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List contacts",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Contact"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Create a contact",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"description": "Contact", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Contact"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/contacts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Get a contact",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Contact ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Contact"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Delete a contact",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Contact ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.detailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/articles": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List articles",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Article"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Create an article",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"description": "Article", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createArticleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Article"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/articles/filter": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Articles created strictly between two dates",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Exclusive lower bound", "name": "date_start", "in": "query", "required": true},
                    {"type": "string", "description": "Exclusive upper bound", "name": "date_end", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Article"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/articles/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Search article content",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Case-sensitive substring", "name": "keyword", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Article"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/articles/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Get an article",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Article"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Delete an article and its comments",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Article ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.detailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/comments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List comments",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Comment on an article",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"description": "Comment", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Comment"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/comments/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Get a comment",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Comment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Comment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [
                    {"type": "string", "description": "Required correlation header", "name": "X-Custom-Header", "in": "header", "required": true},
                    {"type": "string", "description": "Comment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.detailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.detailResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "domain.Article": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/domain.Author"},
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "domain.Author": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.Comment": {
            "type": "object",
            "properties": {
                "article_id": {"type": "string"},
                "author_name": {"type": "string"},
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "domain.Contact": {
            "type": "object",
            "properties": {
                "account_id": {"type": "string"},
                "address": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "string"},
                "last_name": {"type": "string"},
                "phone_number": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "is_active": {"type": "boolean"},
                "role": {"type": "string", "enum": ["admin", "user"]},
                "username": {"type": "string"}
            }
        },
        "handler.authorRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string", "maxLength": 50},
                "name": {"type": "string", "maxLength": 50, "minLength": 2}
            }
        },
        "handler.createArticleRequest": {
            "type": "object",
            "required": ["author", "content", "title"],
            "properties": {
                "author": {"$ref": "#/definitions/handler.authorRequest"},
                "content": {"type": "string", "maxLength": 10000, "minLength": 1},
                "title": {"type": "string", "maxLength": 200, "minLength": 1}
            }
        },
        "handler.createCommentRequest": {
            "type": "object",
            "required": ["article_id", "author_name", "content"],
            "properties": {
                "article_id": {"type": "string", "maxLength": 100, "minLength": 1},
                "author_name": {"type": "string", "maxLength": 50, "minLength": 2},
                "content": {"type": "string", "maxLength": 2000, "minLength": 1},
                "created_at": {"type": "string"}
            }
        },
        "handler.createContactRequest": {
            "type": "object",
            "required": ["email", "first_name", "phone_number", "username"],
            "properties": {
                "account_id": {"type": "string", "maxLength": 255},
                "address": {"type": "string", "maxLength": 150},
                "email": {"type": "string", "maxLength": 50, "minLength": 3},
                "first_name": {"type": "string", "maxLength": 50, "minLength": 2},
                "last_name": {"type": "string", "maxLength": 50},
                "phone_number": {"type": "string", "example": "+380(66)-123-45-78"},
                "username": {"type": "string", "maxLength": 50, "minLength": 2}
            }
        },
        "handler.detailResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "maxLength": 100},
                "password": {"type": "string", "maxLength": 72, "minLength": 8},
                "username": {"type": "string", "maxLength": 50, "minLength": 3}
            }
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
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

// SwaggerInfo is registered with swag and read by echo-swagger.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Infohub API",
	Description:      "Contacts, articles and comments behind bearer-token authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
