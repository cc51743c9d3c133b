package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"net/http"
	"sort"

	"github.com/gestion-empleados/api-trabajadores/internal/models"
)

// jwk es una llave pública RSA de firma (RFC 7517).
type jwk struct {
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

func nuevoJWK(kid string, pub *rsa.PublicKey) jwk {
	return jwk{
		Kty: "RSA",
		Alg: signMethod().Alg(),
		Use: "sig",
		Kid: kid,
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

// llavesPublicas devuelve la llave activa primero y después las rotadas, ordenadas por kid.
// Las rotadas siguen validando los tokens emitidos antes del cambio.
func llavesPublicas() []jwk {
	mu.RLock()
	defer mu.RUnlock()

	var out []jwk
	if pub, ok := pubKeys[activeKID]; ok {
		out = append(out, nuevoJWK(activeKID, pub))
	}
	kids := make([]string, 0, len(pubKeys))
	for kid := range pubKeys {
		if kid != activeKID {
			kids = append(kids, kid)
		}
	}
	sort.Strings(kids)
	for _, kid := range kids {
		out = append(out, nuevoJWK(kid, pubKeys[kid]))
	}
	return out
}

// GET /.well-known/jwks.json
func JWKSHandler(w http.ResponseWriter, r *http.Request) {
	if err := mustInitKeys(); err != nil {
		http.Error(w, "JWKS no disponible", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	models.ResponderJSON(w, http.StatusOK, jwkSet{Keys: llavesPublicas()})
}
