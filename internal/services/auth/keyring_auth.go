package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps the token in the OS keychain.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(token string) error {
	return keyring.Set(k.serviceName, accountName, token)
}

func (k *KeyringStore) GetToken() (string, error) {
	token, err := keyring.Get(k.serviceName, accountName)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteToken() error {
	err := keyring.Delete(k.serviceName, accountName)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
