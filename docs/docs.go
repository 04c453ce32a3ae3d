// Package docs registers the OpenAPI description served at /api-docs.
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
        "/v1/documents": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Create a document",
                "parameters": [
                    {
                        "description": "document",
                        "name": "document",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.CreateDocumentRequest"
                        }
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created document",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentDTO"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "List documents",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Free-text search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Document kind",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Comma-separated statuses",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Matching documents",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentListResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/documents/summary": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Summarize documents",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Free-text search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Document kind",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Comma-separated statuses",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "Allocated budget in USD",
                        "name": "budget",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Summary",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentSummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/documents/{documentId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Get a document",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentDTO"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/documents/{documentId}/items": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Add a line item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "item",
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.AddItemRequest"
                        }
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created item and updated document",
                        "schema": {
                            "$ref": "#/definitions/model.AddItemResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid quantity or price",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document, product or service not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/v1/documents/{documentId}/items/{index}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Remove a line item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based line item position",
                        "name": "index",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated document",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentDTO"
                        }
                    },
                    "404": {
                        "description": "Document not found or index out of range",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/documents/{documentId}/totals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Get document totals",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Totals",
                        "schema": {
                            "$ref": "#/definitions/model.TotalsDTO"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/documents/{documentId}/tax-rate": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Update the tax rate",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.UpdateTaxRateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated document",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentDTO"
                        }
                    },
                    "400": {
                        "description": "Invalid tax rate",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/v1/documents/{documentId}/status": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Update the status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "body",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.UpdateStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated document",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentDTO"
                        }
                    },
                    "400": {
                        "description": "Status not valid for the document kind",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/v1/documents/{documentId}/submit": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Submit a document",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Submitted document",
                        "schema": {
                            "$ref": "#/definitions/model.DocumentDTO"
                        }
                    },
                    "400": {
                        "description": "Invalid item or tax rate",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Document has no line items",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/documents/{documentId}/export": {
            "get": {
                "produces": [
                    "application/pdf",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "Export a document",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "documentId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "pdf (default) or xlsx",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Rendered document",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format or currency",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Document not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/products": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "List products",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Name or SKU contains",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Category, or all",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Products",
                        "schema": {
                            "$ref": "#/definitions/model.ProductListResponse"
                        }
                    }
                }
            }
        },
        "/v1/products/{productId}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "Get a product",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "productId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Display currency (USD or AED)",
                        "name": "currency",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Product",
                        "schema": {
                            "$ref": "#/definitions/model.ProductDTO"
                        }
                    },
                    "404": {
                        "description": "Product not found",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/currency/rates": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "currency"
                ],
                "summary": "Get exchange rates",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Base currency (default: USD)",
                        "name": "base",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Exchange rates",
                        "schema": {
                            "$ref": "#/definitions/currency.ExchangeRates"
                        }
                    },
                    "400": {
                        "description": "Unsupported currency",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/currency/convert": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "currency"
                ],
                "summary": "Convert currency",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Amount to convert",
                        "name": "amount",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Source currency",
                        "name": "from",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Target currency",
                        "name": "to",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Conversion result",
                        "schema": {
                            "$ref": "#/definitions/model.ConversionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/statuses": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "documents"
                ],
                "summary": "List document statuses",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Restrict to one document kind",
                        "name": "kind",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Statuses per kind",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.KindStatusesResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Unknown kind",
                        "schema": {
                            "$ref": "#/definitions/model.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.ErrorDetail"
                    }
                }
            }
        },
        "model.ErrorDetail": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "model.CreateDocumentRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "example": "quotation"
                },
                "counterparty_name": {
                    "type": "string",
                    "example": "Globex Trading LLC"
                },
                "issue_date": {
                    "type": "string",
                    "example": "2025-03-10"
                },
                "due_date": {
                    "type": "string",
                    "example": "2025-04-09"
                },
                "tax_rate": {
                    "type": "number",
                    "example": 0.09
                },
                "notes": {
                    "type": "string"
                }
            },
            "required": [
                "kind",
                "counterparty_name"
            ]
        },
        "model.AddItemRequest": {
            "type": "object",
            "properties": {
                "product_id": {
                    "type": "string",
                    "example": "PRD-001"
                },
                "quantity": {
                    "type": "integer",
                    "example": 1
                },
                "service_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "product_id"
            ]
        },
        "model.UpdateTaxRateRequest": {
            "type": "object",
            "properties": {
                "tax_rate": {
                    "type": "number",
                    "example": 0.05
                }
            },
            "required": [
                "tax_rate"
            ]
        },
        "model.UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "accepted"
                }
            },
            "required": [
                "status"
            ]
        },
        "model.SelectedServiceDTO": {
            "type": "object",
            "properties": {
                "service_id": {
                    "type": "string"
                },
                "service_name": {
                    "type": "string"
                },
                "service_price": {
                    "type": "string"
                }
            }
        },
        "model.LineItemDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "product_id": {
                    "type": "string"
                },
                "product_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "string"
                },
                "selected_services": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.SelectedServiceDTO"
                    }
                },
                "amount": {
                    "type": "string"
                },
                "display_amount": {
                    "type": "string"
                }
            }
        },
        "model.TotalsDTO": {
            "type": "object",
            "properties": {
                "subtotal": {
                    "type": "string"
                },
                "tax_amount": {
                    "type": "string"
                },
                "total_amount": {
                    "type": "string"
                },
                "display_currency": {
                    "type": "string"
                },
                "display": {
                    "type": "object",
                    "properties": {
                        "subtotal": {
                            "type": "string"
                        },
                        "tax_amount": {
                            "type": "string"
                        },
                        "total_amount": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "domain.StatusDisplay": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "variant": {
                    "type": "string"
                },
                "terminal": {
                    "type": "boolean"
                }
            }
        },
        "model.DocumentDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "counterparty_name": {
                    "type": "string"
                },
                "issue_date": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "status_display": {
                    "$ref": "#/definitions/domain.StatusDisplay"
                },
                "tax_rate": {
                    "type": "string"
                },
                "currency": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.LineItemDTO"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/model.TotalsDTO"
                },
                "submitted_at": {
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
        "model.AddItemResponse": {
            "type": "object",
            "properties": {
                "item": {
                    "$ref": "#/definitions/model.LineItemDTO"
                },
                "document": {
                    "$ref": "#/definitions/model.DocumentDTO"
                }
            }
        },
        "model.DocumentListResponse": {
            "type": "object",
            "properties": {
                "documents": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.DocumentDTO"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "model.StatusTotalDTO": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                },
                "total_amount": {
                    "type": "string"
                }
            }
        },
        "model.DocumentSummaryResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "subtotal": {
                    "type": "string"
                },
                "tax_amount": {
                    "type": "string"
                },
                "total_amount": {
                    "type": "string"
                },
                "display_total": {
                    "type": "string"
                },
                "by_status": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.StatusTotalDTO"
                    }
                },
                "budget": {
                    "type": "string"
                },
                "utilization_percent": {
                    "type": "string"
                }
            }
        },
        "model.ServiceDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "string"
                }
            }
        },
        "model.ProductDTO": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "sku": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "selling_price": {
                    "type": "string"
                },
                "cost_price": {
                    "type": "string"
                },
                "display_price": {
                    "type": "string"
                },
                "stock": {
                    "type": "integer"
                },
                "reorder_level": {
                    "type": "integer"
                },
                "stock_status": {
                    "type": "string"
                },
                "services": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.ServiceDTO"
                    }
                }
            }
        },
        "model.ProductListResponse": {
            "type": "object",
            "properties": {
                "products": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.ProductDTO"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "currency.ExchangeRates": {
            "type": "object",
            "properties": {
                "base": {
                    "type": "string"
                },
                "rates": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                }
            }
        },
        "model.ConversionResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string"
                },
                "from": {
                    "type": "string"
                },
                "to": {
                    "type": "string"
                },
                "result": {
                    "type": "string"
                },
                "formatted": {
                    "type": "string"
                }
            }
        },
        "model.StatusDTO": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "variant": {
                    "type": "string"
                },
                "terminal": {
                    "type": "boolean"
                }
            }
        },
        "model.KindStatusesResponse": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "number_prefix": {
                    "type": "string"
                },
                "submitted_status": {
                    "type": "string"
                },
                "statuses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.StatusDTO"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ERP Pricing Service API",
	Description:      "Line-item pricing for quotations, invoices and purchase orders",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
