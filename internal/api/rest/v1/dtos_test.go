//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAESRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request AESRequest
		wantErr bool
	}{
		{"minimal", AESRequest{Key: "k"}, false},
		{"full", AESRequest{Data: "d", Mode: "CBC", Padding: "PKCS7", KeyBits: 192, Encoding: "HEX", Key: "k", KeyEncoding: "HEX", IVEncoding: "TEXT"}, false},
		{"missing key", AESRequest{Data: "d"}, true},
		{"unknown mode", AESRequest{Key: "k", Mode: "CTR"}, true},
		{"unknown padding", AESRequest{Key: "k", Padding: "ANSI"}, true},
		{"unsupported key bits", AESRequest{Key: "k", KeyBits: 512}, true},
		{"unknown encoding", AESRequest{Key: "k", Encoding: "BASE32"}, true},
		{"raw encoding", AESRequest{Key: "k", Encoding: "NONE"}, true},
		{"lowercase key encoding", AESRequest{Key: "k", KeyEncoding: "hex", IVEncoding: "text"}, false},
		{"unknown key encoding", AESRequest{Key: "k", KeyEncoding: "BASE64"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAESKeyRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AESKeyRequest{}).Validate())
	assert.NoError(t, (&AESKeyRequest{KeyBits: 128, Mode: "XTS"}).Validate())
	assert.Error(t, (&AESKeyRequest{KeyBits: 64}).Validate())
	assert.Error(t, (&AESKeyRequest{Mode: "UNKNOWN"}).Validate())
}

func TestRSAKeyPairRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RSAKeyPairRequest{}).Validate())
	assert.NoError(t, (&RSAKeyPairRequest{KeySize: 4096, Format: "RSA"}).Validate())
	assert.Error(t, (&RSAKeyPairRequest{KeySize: 1000}).Validate())
	assert.Error(t, (&RSAKeyPairRequest{Format: "OPENSSH"}).Validate())
}

func TestRSARequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request RSARequest
		wantErr bool
	}{
		{"valid", RSARequest{Data: "d", Key: "k", Padding: "PKCS1v15"}, false},
		{"raw", RSARequest{Data: "d", Key: "k", Padding: "NO_PADDING", Format: "RSA"}, false},
		{"missing data", RSARequest{Key: "k"}, true},
		{"missing key", RSARequest{Data: "d"}, true},
		{"unknown padding", RSARequest{Data: "d", Key: "k", Padding: "PSS"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyRequest_Validate(t *testing.T) {
	assert.NoError(t, (&KeyRequest{Algorithm: "AES"}).Validate())
	assert.NoError(t, (&KeyRequest{Algorithm: "AES", KeySize: 256, Mode: "XTS"}).Validate())
	assert.NoError(t, (&KeyRequest{Algorithm: "RSA", KeySize: 512, Format: "PKCS"}).Validate())
	assert.Error(t, (&KeyRequest{Algorithm: "AES", KeySize: 4096}).Validate())
	assert.Error(t, (&KeyRequest{Algorithm: "RSA", KeySize: 128}).Validate())
	assert.Error(t, (&KeyRequest{Algorithm: "aes", KeySize: 128}).Validate())
}
