package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>sahyatri-backend — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

var swaggerJSON = gin.H{
	"openapi": "3.0.0",
	"info": gin.H{
		"title":   "Sahyatri backend",
		"version": "1.0.0",
	},
	"paths": gin.H{
		"/api/sync-user": gin.H{
			"post": gin.H{
				"summary":  "Upsert the caller's user profile from token claims",
				"security": []gin.H{{"bearerAuth": []string{}}},
				"responses": gin.H{
					"200": gin.H{"description": "synced user record"},
					"401": gin.H{"description": "missing or invalid token"},
					"500": gin.H{"description": "store error"},
				},
			},
		},
		"/api/complaints": gin.H{
			"post": gin.H{
				"summary":  "File a complaint against a named zone",
				"security": []gin.H{{"bearerAuth": []string{}}},
				"responses": gin.H{
					"201": gin.H{"description": "created complaint record"},
					"400": gin.H{"description": "zoneName/details missing"},
					"500": gin.H{"description": "store error"},
				},
			},
		},
		"/api/places/{name}/icon": gin.H{
			"post": gin.H{
				"summary":  "Upload an icon image for a place",
				"security": []gin.H{{"bearerAuth": []string{}}},
				"responses": gin.H{
					"200": gin.H{"description": "place name and icon URL"},
					"404": gin.H{"description": "unknown place"},
					"503": gin.H{"description": "icon storage not configured"},
				},
			},
		},
		"/fetch_loc": gin.H{
			"get": gin.H{
				"summary":   "Fetch the full map data document",
				"responses": gin.H{"200": gin.H{"description": "zones, places, points"}},
			},
		},
		"/update_loc": gin.H{
			"post": gin.H{
				"summary":   "Replace the whole map data document",
				"responses": gin.H{"200": gin.H{"description": "plain text ack"}},
			},
		},
		"/update_co": gin.H{
			"post": gin.H{
				"summary":   "Move or create a live point by label",
				"responses": gin.H{"200": gin.H{"description": "message and full points list"}},
			},
		},
	},
	"components": gin.H{
		"securitySchemes": gin.H{
			"bearerAuth": gin.H{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"},
		},
	},
}
