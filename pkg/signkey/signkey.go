// Package signkey holds the Ed25519 key used to sign access tokens.
package signkey

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"
)

type Holder struct {
	key       ed25519.PrivateKey
	generated bool
}

// Load reads the PEM encoded private key at path. When the file doesn't
// exist a new key is generated and written there.
func Load(path string) (*Holder, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing key %s error: %w", path, err)
		}
		return &Holder{key: key}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading key %s error: %w", path, err)
	}
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating key error: %w", err)
	}
	if err = store(path, key); err != nil {
		return nil, err
	}
	return &Holder{key: key, generated: true}, nil
}

func (h *Holder) Get() ed25519.PrivateKey {
	return h.key
}

func (h *Holder) Public() ed25519.PublicKey {
	return h.key.Public().(ed25519.PublicKey)
}

// Generated reports whether the key was created by Load rather than read from disk.
func (h *Holder) Generated() bool {
	return h.generated
}

func parse(data []byte) (ed25519.PrivateKey, error) {
	key, err := jwt.ParseEdPrivateKeyFromPEM(data)
	if err != nil {
		return nil, err
	}
	edKey, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("not an ed25519 key")
	}
	return edKey, nil
}

func store(path string, key ed25519.PrivateKey) error {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("marshalling key error: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating key directory error: %w", err)
	}
	data := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing key %s error: %w", path, err)
	}
	return nil
}
