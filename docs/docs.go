// Package docs содержит описание API в формате Swagger 2.0, отдаваемое на /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/members": {
            "post": {
                "tags": ["Members"],
                "summary": "Зарегистрировать участника",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Members"],
                "summary": "Список участников",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/members/expiring": {
            "get": {
                "tags": ["Members"],
                "summary": "Участники с истекающим абонементом",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/members/{id}": {
            "get": {
                "tags": ["Members"],
                "summary": "Карточка участника",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "put": {
                "tags": ["Members"],
                "summary": "Изменить анкету участника",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "delete": {
                "tags": ["Members"],
                "summary": "Удалить участника",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/members/{id}/payments": {
            "post": {
                "tags": ["Members"],
                "summary": "Продлить абонемент",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Members"],
                "summary": "История платежей участника",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/plans": {
            "post": {
                "tags": ["Plans"],
                "summary": "Добавить тариф",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Plans"],
                "summary": "Каталог тарифов",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/plans/preview": {
            "post": {
                "tags": ["Plans"],
                "summary": "Рассчитать срок абонемента",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/plans/{id}": {
            "delete": {
                "tags": ["Plans"],
                "summary": "Удалить тариф",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/coaches": {
            "post": {
                "tags": ["Coaches"],
                "summary": "Добавить тренера",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Coaches"],
                "summary": "Список тренеров",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/coaches/{id}": {
            "delete": {
                "tags": ["Coaches"],
                "summary": "Удалить тренера",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/coaches/{id}/salaries": {
            "post": {
                "tags": ["Coaches"],
                "summary": "Выплатить зарплату",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Coaches"],
                "summary": "История выплат тренеру",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/expenses/misc": {
            "post": {
                "tags": ["Expenses"],
                "summary": "Добавить прочий расход",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Expenses"],
                "summary": "Прочие расходы",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/expenses/misc/{id}": {
            "delete": {
                "tags": ["Expenses"],
                "summary": "Удалить прочий расход",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/expenses/bills": {
            "post": {
                "tags": ["Expenses"],
                "summary": "Добавить коммунальный счёт",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Expenses"],
                "summary": "Коммунальные счета",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/expenses/bills/{id}": {
            "delete": {
                "tags": ["Expenses"],
                "summary": "Удалить коммунальный счёт",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/inventory": {
            "post": {
                "tags": ["Inventory"],
                "summary": "Добавить позицию инвентаря",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "get": {
                "tags": ["Inventory"],
                "summary": "Инвентарь",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/inventory/{id}": {
            "put": {
                "tags": ["Inventory"],
                "summary": "Изменить позицию инвентаря",
                "produces": ["application/json"],
                "consumes": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            },
            "delete": {
                "tags": ["Inventory"],
                "summary": "Удалить позицию инвентаря",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/reports/revenue": {
            "get": {
                "tags": ["Reports"],
                "summary": "Выручка за месяц",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Reports"],
                "summary": "Сводка панели",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "default": {"description": "Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "error": {"type": "string"},
                "data": {}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "Error"},
                "error": {"type": "string", "example": "invalid request body"}
            }
        }
    }
}`

// SwaggerInfo общие сведения об API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Gym Dashboard API",
	Description:      "API панели администратора тренажёрного зала: участники, тарифы, тренеры, расходы и отчёты",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
