package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const homePage = `<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>SkinCare - Ton Coach Beauté Personnel</title>
</head>
<body>
	<h1>🌸 SkinCare App</h1>
	<p>Ton coach beauté personnel propulsé par l'IA</p>
	<p><a href="/health">Statut Système</a></p>
</body>
</html>
`

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
	}
}

func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"app":       "SkinCare API",
			"version":   "1.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
