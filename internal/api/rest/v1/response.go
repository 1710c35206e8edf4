package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func respondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Envelope{Code: http.StatusOK, Message: "Success", Data: data})
}

func respondError(ctx *gin.Context, code int, message string) {
	ctx.AbortWithStatusJSON(code, Envelope{Code: code, Message: message, Data: gin.H{}})
}
