package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/gin-gonic/gin"
)

// AESHandler defines the interface for handling AES operations
type AESHandler interface {
	GenerateKey(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type aesHandler struct {
	symmetricService cryptoalg.SymmetricService
}

// NewAESHandler creates a new AESHandler
func NewAESHandler(symmetricService cryptoalg.SymmetricService) AESHandler {
	return &aesHandler{symmetricService: symmetricService}
}

// GenerateKey handles the POST request to generate an AES key
// @Summary Generate an AES key
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESKeyRequest true "Key options"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /aes/keys [post]
func (handler *aesHandler) GenerateKey(ctx *gin.Context) {
	var request AESKeyRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result := handler.symmetricService.GenerateKey(request.KeyBits, request.Mode)
	if !result.Success {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error generating key: %s", result.Error))
		return
	}
	respondOK(ctx, AESKeyResponse{Key: result.Text()})
}

// Encrypt handles the POST request to encrypt data with AES
// @Summary Encrypt data with AES
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESRequest true "Plaintext and options"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /aes/encrypt [post]
func (handler *aesHandler) Encrypt(ctx *gin.Context) {
	var request AESRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result := handler.symmetricService.Encrypt(toSymmetricRequest(request))
	if !result.Success {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error encrypting data: %s", result.Error))
		return
	}
	respondOK(ctx, AESEncryptResponse{Ciphertext: result.Text(), IV: result.IV})
}

// Decrypt handles the POST request to decrypt AES ciphertext
// @Summary Decrypt AES ciphertext
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESRequest true "Ciphertext and options"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /aes/decrypt [post]
func (handler *aesHandler) Decrypt(ctx *gin.Context) {
	var request AESRequest
	if !bindAndValidate(ctx, &request, request.Validate) {
		return
	}

	result := handler.symmetricService.Decrypt(toSymmetricRequest(request))
	if !result.Success {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("error decrypting data: %s", result.Error))
		return
	}
	respondOK(ctx, AESDecryptResponse{Plaintext: result.Text()})
}

func toSymmetricRequest(r AESRequest) cryptoalg.SymmetricRequest {
	return cryptoalg.SymmetricRequest{
		Data:        r.Data,
		Mode:        r.Mode,
		Padding:     r.Padding,
		KeyBits:     r.KeyBits,
		Encoding:    r.Encoding,
		Key:         r.Key,
		KeyEncoding: r.KeyEncoding,
		IV:          r.IV,
		IVEncoding:  r.IVEncoding,
	}
}

// bindAndValidate decodes the JSON body and runs validate, writing a 400 on failure.
func bindAndValidate(ctx *gin.Context, request interface{}, validate func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if err := validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
