package snowflake

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"os"
)

// LoadPrivateKey reads a PEM-encoded unencrypted RSA private key from path
// and returns it in the form the Snowflake driver's key-pair authenticator
// requires. Both PKCS#8 ("PRIVATE KEY") and PKCS#1 ("RSA PRIVATE KEY")
// encodings are accepted.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CredentialError{Path: path, Err: err}
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, &CredentialError{Path: path, Err: errors.New("no PEM block found")}
	}

	switch block.Type {
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, &CredentialError{Path: path, Err: err}
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, &CredentialError{Path: path, Err: errors.New("not an RSA private key")}
		}
		return rsaKey, nil
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, &CredentialError{Path: path, Err: err}
		}
		return key, nil
	case "ENCRYPTED PRIVATE KEY":
		return nil, &CredentialError{Path: path, Err: errors.New("encrypted private keys are not supported")}
	default:
		return nil, &CredentialError{Path: path, Err: errors.New("unexpected PEM block type " + block.Type)}
	}
}
