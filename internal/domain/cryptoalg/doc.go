// Package cryptoalg defines the configuration tags, result type, error taxonomy and processor
// contracts of the AES and RSA layers: cipher modes, paddings, key sizes, encodings and PEM
// conventions, plus the interfaces implemented by the infrastructure processors.
package cryptoalg
