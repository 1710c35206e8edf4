package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/gin-gonic/gin"
)

// RSAHandler defines the interface for handling RSA operations
type RSAHandler interface {
	GenerateKeyPair(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type rsaHandler struct {
	asymmetricService cryptoalg.AsymmetricService
}

// NewRSAHandler creates a new RSAHandler
func NewRSAHandler(asymmetricService cryptoalg.AsymmetricService) RSAHandler {
	return &rsaHandler{asymmetricService: asymmetricService}
}

// GenerateKeyPair handles the POST request to generate an RSA key pair
// @Summary Generate an RSA key pair
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSAKeyPairRequest true "Key pair options"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /rsa/keys [post]
func (handler *rsaHandler) GenerateKeyPair(ctx *gin.Context) {
	var request RSAKeyPairRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	pair := handler.asymmetricService.GenerateKeyPair(request.KeySize, request.Format)
	if !pair.PublicKey.Success {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error generating public key: %s", pair.PublicKey.Error))
		return
	}
	if !pair.PrivateKey.Success {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error generating private key: %s", pair.PrivateKey.Error))
		return
	}
	respondOK(ctx, RSAKeyPairResponse{PublicKey: pair.PublicKey.Text(), PrivateKey: pair.PrivateKey.Text()})
}

// Encrypt handles the POST request to encrypt data with an RSA public key
// @Summary Encrypt data with RSA
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSARequest true "Plaintext, public key and options"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /rsa/encrypt [post]
func (handler *rsaHandler) Encrypt(ctx *gin.Context) {
	var request RSARequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result := handler.asymmetricService.Encrypt(toAsymmetricRequest(request))
	if !result.Success {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error encrypting data: %s", result.Error))
		return
	}
	respondOK(ctx, RSAResponse{Result: result.Text()})
}

// Decrypt handles the POST request to decrypt base64 RSA ciphertext
// @Summary Decrypt RSA ciphertext
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body RSARequest true "Ciphertext, private key and options"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /rsa/decrypt [post]
func (handler *rsaHandler) Decrypt(ctx *gin.Context) {
	var request RSARequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result := handler.asymmetricService.Decrypt(toAsymmetricRequest(request))
	if !result.Success {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error decrypting data: %s", result.Error))
		return
	}
	respondOK(ctx, RSAResponse{Result: result.Text()})
}

func toAsymmetricRequest(r RSARequest) cryptoalg.AsymmetricRequest {
	return cryptoalg.AsymmetricRequest{
		Data:    r.Data,
		Key:     r.Key,
		Format:  r.Format,
		Padding: r.Padding,
	}
}
