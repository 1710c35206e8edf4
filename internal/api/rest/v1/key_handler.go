package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/gin-gonic/gin"
)

// Algorithms accepted by KeyRequest.
const (
	AlgorithmAES = "AES"
	AlgorithmRSA = "RSA"
)

// KeyHandler defines the interface for algorithm-agnostic key generation
type KeyHandler interface {
	GenerateKey(ctx *gin.Context)
}

type keyHandler struct {
	symmetricService  cryptoalg.SymmetricService
	asymmetricService cryptoalg.AsymmetricService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(symmetricService cryptoalg.SymmetricService, asymmetricService cryptoalg.AsymmetricService) KeyHandler {
	return &keyHandler{symmetricService: symmetricService, asymmetricService: asymmetricService}
}

// GenerateKey handles the POST request to generate an AES key or an RSA key pair
// @Summary Generate a key for the requested algorithm
// @Tags Keys
// @Accept json
// @Produce json
// @Param requestBody body KeyRequest true "Algorithm and key size"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /keys [post]
func (handler *keyHandler) GenerateKey(ctx *gin.Context) {
	var request KeyRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	response := KeyResponse{Algorithm: request.Algorithm}

	switch request.Algorithm {
	case AlgorithmAES:
		result := handler.symmetricService.GenerateKey(request.KeySize, request.Mode)
		if !result.Success {
			respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error generating key: %s", result.Error))
			return
		}
		response.Key = result.Text()

	case AlgorithmRSA:
		pair := handler.asymmetricService.GenerateKeyPair(request.KeySize, request.Format)
		for _, result := range []cryptoalg.Result{pair.PublicKey, pair.PrivateKey} {
			if !result.Success {
				respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error generating key pair: %s", result.Error))
				return
			}
		}
		response.PublicKey = pair.PublicKey.Text()
		response.PrivateKey = pair.PrivateKey.Text()
	}

	respondOK(ctx, response)
}
