package v1

import (
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/sethvargo/go-limiter"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	symmetricService cryptoalg.SymmetricService,
	asymmetricService cryptoalg.AsymmetricService,
	store limiter.Store,
	log logger.Logger) {

	v1 := r.Group(BasePath)
	v1.Use(RequestID(), RateLimit(store, log))

	keyHandler := NewKeyHandler(symmetricService, asymmetricService)
	v1.POST("/keys", keyHandler.GenerateKey)

	aesHandler := NewAESHandler(symmetricService)
	v1.POST("/aes/keys", aesHandler.GenerateKey)
	v1.POST("/aes/encrypt", aesHandler.Encrypt)
	v1.POST("/aes/decrypt", aesHandler.Decrypt)

	rsaHandler := NewRSAHandler(asymmetricService)
	v1.POST("/rsa/keys", rsaHandler.GenerateKeyPair)
	v1.POST("/rsa/encrypt", rsaHandler.Encrypt)
	v1.POST("/rsa/decrypt", rsaHandler.Decrypt)
}
