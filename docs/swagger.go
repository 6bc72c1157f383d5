// Package docs holds the swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

// @tag.name Auth
// @tag.description Registration, login and logout

// @tag.name Tasks
// @tag.description Task management operations

// @tag.name Lists
// @tag.description List management operations

// @tag.name Profile
// @tag.description Profile operations

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/register": {"post": {"tags": ["Auth"], "summary": "Create an account"}},
        "/login": {"post": {"tags": ["Auth"], "summary": "Sign in"}},
        "/logout": {"post": {"tags": ["Auth"], "summary": "Sign out"}},
        "/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List own tasks"},
            "post": {"tags": ["Tasks"], "summary": "Create a task"}
        },
        "/tasks/{id}": {
            "put": {"tags": ["Tasks"], "summary": "Edit a task"},
            "delete": {"tags": ["Tasks"], "summary": "Delete a task"}
        },
        "/tasks/{id}/toggle": {"post": {"tags": ["Tasks"], "summary": "Toggle completion"}},
        "/tasks/{id}/assign": {"post": {"tags": ["Tasks"], "summary": "Assign a task to a list"}},
        "/lists": {
            "get": {"tags": ["Lists"], "summary": "List own lists"},
            "post": {"tags": ["Lists"], "summary": "Create a list"}
        },
        "/lists/overview": {"get": {"tags": ["Lists"], "summary": "Lists with their tasks"}},
        "/profile": {
            "get": {"tags": ["Profile"], "summary": "Current profile"},
            "put": {"tags": ["Profile"], "summary": "Update profile"}
        },
        "/profile/password": {"put": {"tags": ["Profile"], "summary": "Update password"}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Todolist API",
	Description:      "API for managing personal task lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
