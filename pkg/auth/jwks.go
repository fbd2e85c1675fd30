package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Minimum delay between two JWKS downloads.
const refreshInterval = time.Minute

var ErrKeyNotFound = errors.New("jwks: signing key not found")

type JWKS struct {
	Keys []JSONWebKey `json:"keys"`
}

type JSONWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// Provider caches the RSA keys published by the identity provider.
type Provider struct {
	mu         sync.RWMutex
	keys       map[string]*rsa.PublicKey
	url        string
	refreshed  time.Time
	httpClient *http.Client
}

func NewProvider(jwksURL string) *Provider {
	return &Provider{
		url:        jwksURL,
		keys:       make(map[string]*rsa.PublicKey),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// KeyFunc is a jwt.Keyfunc resolving RS256 tokens by their kid header.
func (p *Provider) KeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return nil, errors.New("kid header not found")
	}

	return p.PublicKey(kid)
}

// PublicKey returns the cached key for kid, refreshing the set once on a miss.
func (p *Provider) PublicKey(kid string) (*rsa.PublicKey, error) {
	if key, ok := p.cached(kid); ok {
		return key, nil
	}

	if err := p.refresh(); err != nil {
		return nil, err
	}

	if key, ok := p.cached(kid); ok {
		return key, nil
	}
	return nil, ErrKeyNotFound
}

func (p *Provider) cached(kid string) (*rsa.PublicKey, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	key, ok := p.keys[kid]
	return key, ok
}

func (p *Provider) refresh() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.refreshed) < refreshInterval && len(p.keys) > 0 {
		return nil
	}

	resp, err := p.httpClient.Get(p.url)
	if err != nil {
		return fmt.Errorf("jwks: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks: unexpected status %d", resp.StatusCode)
	}

	var set JWKS
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("jwks: decode failed: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := k.PublicKey()
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}
	p.keys = keys
	p.refreshed = time.Now()
	return nil
}

// PublicKey decodes the modulus and exponent of an RSA JWK.
func (k *JSONWebKey) PublicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(nBytes)

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{N: n, E: e}, nil
}
