// Package swagger serves the OpenAPI document mounted at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o api/swagger
package swagger

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
		"/api/requests": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"requests"
				],
				"summary": "Submit purchase request",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.SubmitRequestDTO"
						}
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"requests"
				],
				"summary": "List requests",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				]
			}
		},
		"/api/requests/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"requests"
				],
				"summary": "Get request",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				]
			}
		},
		"/api/requests/{id}/review": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"requests"
				],
				"summary": "Review request",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "payload",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/handler.ActorDTO"
						}
					}
				]
			}
		},
		"/api/requests/{id}/decision": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"requests"
				],
				"summary": "Decide request",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.DecisionDTO"
						}
					}
				]
			}
		},
		"/api/requests/{id}/purchase-order": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"purchase-orders"
				],
				"summary": "Create purchase order",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.CreatePODTO"
						}
					}
				]
			}
		},
		"/api/requests/{id}/purchase-order/send": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"purchase-orders"
				],
				"summary": "Send purchase order",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "payload",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/handler.ActorDTO"
						}
					}
				]
			}
		},
		"/api/requests/{id}/purchase-order/close": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"purchase-orders"
				],
				"summary": "Close purchase order",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "payload",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/handler.ActorDTO"
						}
					}
				]
			}
		},
		"/api/purchase-orders": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"purchase-orders"
				],
				"summary": "List purchase orders",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				]
			}
		},
		"/api/invoices": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"invoices"
				],
				"summary": "Submit invoice",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.SubmitInvoiceDTO"
						}
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"invoices"
				],
				"summary": "List invoices",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				]
			}
		},
		"/api/statistics/summary": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"statistics"
				],
				"summary": "Dashboard KPIs",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/statistics/request-status": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"statistics"
				],
				"summary": "Requests per status",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/statistics/decisions": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"statistics"
				],
				"summary": "Approval decisions",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/statistics/spend-by-vendor": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"statistics"
				],
				"summary": "Spend by vendor",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/statistics/traceability": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"statistics"
				],
				"summary": "Request to PO to invoice traceability",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				]
			}
		},
		"/api/approvals": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"approvals"
				],
				"summary": "Approval trail",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				]
			}
		},
		"/api/audit-logs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"audit"
				],
				"summary": "Get audit logs",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "entity_type",
						"in": "query",
						"required": false,
						"type": "string"
					},
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				]
			}
		},
		"/api/reports/export": {
			"get": {
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"tags": [
					"reports"
				],
				"summary": "Export full report",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/api/intake/extract": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"intake"
				],
				"summary": "Extract request fields",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					},
					"default": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ExtractDTO"
						}
					}
				]
			}
		}
	},
	"definitions": {
		"response.Response": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"status_code": {
					"type": "integer"
				},
				"data": {},
				"error": {
					"type": "string"
				},
				"code": {
					"type": "string"
				}
			}
		},
		"handler.ActorDTO": {
			"type": "object",
			"properties": {
				"actor": {
					"type": "string",
					"example": "Shalini"
				}
			}
		},
		"handler.ExtractDTO": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				}
			}
		},
		"service.SubmitRequestDTO": {
			"type": "object",
			"properties": {
				"requester_name": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"item_desc": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"est_cost": {
					"type": "number"
				},
				"justification": {
					"type": "string"
				},
				"vendor_name": {
					"type": "string"
				}
			}
		},
		"service.DecisionDTO": {
			"type": "object",
			"properties": {
				"approver_name": {
					"type": "string"
				},
				"decision": {
					"type": "string",
					"enum": [
						"Approved",
						"Rejected"
					]
				},
				"comments": {
					"type": "string"
				}
			}
		},
		"service.CreatePODTO": {
			"type": "object",
			"properties": {
				"created_by": {
					"type": "string"
				},
				"vendor_name": {
					"type": "string"
				},
				"total_amount": {
					"type": "number"
				},
				"po_number": {
					"type": "string"
				}
			}
		},
		"service.SubmitInvoiceDTO": {
			"type": "object",
			"properties": {
				"po_number": {
					"type": "string"
				},
				"vendor_name": {
					"type": "string"
				},
				"invoice_number": {
					"type": "string"
				},
				"invoice_amount": {
					"type": "number"
				},
				"invoice_date": {
					"type": "string"
				},
				"tolerance": {
					"type": "number"
				},
				"submitted_by": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"BuyIT Hub API",
	Description:	  "Procurement lifecycle: request, approval, purchase order and invoice matching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
