package auth

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gestion-empleados/api-trabajadores/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	mu sync.RWMutex

	privKey      *rsa.PrivateKey
	pubKeys      = map[string]*rsa.PublicKey{} // kid -> pub
	activeKID    string
	issuer       string
	audience     string
	secureCookie bool
)

var ErrNoConfigurado = errors.New("auth sin configurar: defina AUTH_RSA_PRIVATE_PATH/AUTH_KID/AUTH_ISSUER/AUTH_AUDIENCE")

// Configurar carga la llave privada RSA indicada en la configuración.
func Configurar(cfg config.Config) error {
	if cfg.AuthRSAPrivatePath == "" || cfg.AuthKID == "" || cfg.AuthIssuer == "" || cfg.AuthAudience == "" {
		return ErrNoConfigurado
	}
	b, err := os.ReadFile(cfg.AuthRSAPrivatePath)
	if err != nil {
		return fmt.Errorf("leer llave privada: %w", err)
	}
	pk, err := ParsePrivateKeyPEM(b)
	if err != nil {
		return err
	}
	ConfigurarConLlave(pk, cfg.AuthKID, cfg.AuthIssuer, cfg.AuthAudience, cfg.CookieSecure)
	return nil
}

// ConfigurarConLlave registra una llave ya cargada.
func ConfigurarConLlave(pk *rsa.PrivateKey, kid, iss, aud string, cookieSecure bool) {
	mu.Lock()
	defer mu.Unlock()
	privKey = pk
	activeKID = kid
	issuer = iss
	audience = aud
	secureCookie = cookieSecure
	pubKeys[kid] = &pk.PublicKey
}

// ParsePrivateKeyPEM acepta PKCS#1 o PKCS#8.
func ParsePrivateKeyPEM(b []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("pem decode private key failed")
	}

	var pk any
	if k, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		pk = k
	} else if k8, err2 := x509.ParsePKCS8PrivateKey(block.Bytes); err2 == nil {
		pk = k8
	} else {
		return nil, fmt.Errorf("parse private key: %v / %v", err, err2)
	}

	rsaKey, ok := pk.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return rsaKey, nil
}

func mustInitKeys() error {
	mu.RLock()
	defer mu.RUnlock()
	if privKey == nil {
		return ErrNoConfigurado
	}
	return nil
}

func getPriv() *rsa.PrivateKey {
	mu.RLock()
	defer mu.RUnlock()
	return privKey
}

func getPub(kid string) (*rsa.PublicKey, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := pubKeys[kid]
	return p, ok
}

func getKID() string {
	mu.RLock()
	defer mu.RUnlock()
	return activeKID
}

func getIssuer() string {
	mu.RLock()
	defer mu.RUnlock()
	return issuer
}

func getAudience() string {
	mu.RLock()
	defer mu.RUnlock()
	return audience
}

func cookieSecure() bool {
	mu.RLock()
	defer mu.RUnlock()
	return secureCookie
}

func signMethod() jwt.SigningMethod { return jwt.SigningMethodRS256 }
