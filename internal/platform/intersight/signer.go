package intersight

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Signature algorithms advertised in the Authorization header.
const (
	AlgorithmHS2019    = "hs2019"
	AlgorithmRSASHA256 = "rsa-sha256"
)

// signedHeaders is the ordered list of headers covered by the signature.
var signedHeaders = []string{"(request-target)", "host", "date", "digest"}

// Signer signs requests with the Intersight HTTP Signature scheme.
//
// EC keys (v3 API keys) sign with ECDSA P-256/SHA-256 under the hs2019
// algorithm name; RSA keys (v2 API keys) sign with RSASSA-PKCS1-v1_5 and
// SHA-256 under rsa-sha256.
type Signer struct {
	keyID     string
	key       crypto.Signer
	algorithm string
	now       func() time.Time
}

// NewSigner creates a signer for the given API key ID and private key.
func NewSigner(keyID string, key crypto.Signer) (*Signer, error) {
	if keyID == "" {
		return nil, fmt.Errorf("API key ID is empty")
	}

	var algorithm string
	switch key.(type) {
	case *ecdsa.PrivateKey:
		algorithm = AlgorithmHS2019
	case *rsa.PrivateKey:
		algorithm = AlgorithmRSASHA256
	default:
		return nil, fmt.Errorf("unsupported key type %T: expected an RSA or EC private key", key)
	}

	return &Signer{
		keyID:     keyID,
		key:       key,
		algorithm: algorithm,
		now:       time.Now,
	}, nil
}

// Algorithm returns the signature algorithm name used by the signer.
func (s *Signer) Algorithm() string {
	return s.algorithm
}

// Sign sets the Date, Digest and Authorization headers of req.
// body must be the exact payload that will be sent.
func (s *Signer) Sign(req *http.Request, body []byte) error {
	sum := sha256.Sum256(body)
	req.Header.Set("Date", s.now().UTC().Format(http.TimeFormat))
	req.Header.Set("Digest", "SHA-256="+base64.StdEncoding.EncodeToString(sum[:]))

	signingString := SigningString(req)
	hashed := sha256.Sum256([]byte(signingString))
	sig, err := s.key.Sign(rand.Reader, hashed[:], crypto.SHA256)
	if err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf(
		`Signature keyId="%s",algorithm="%s",headers="%s",signature="%s"`,
		s.keyID,
		s.algorithm,
		strings.Join(signedHeaders, " "),
		base64.StdEncoding.EncodeToString(sig),
	))
	return nil
}

// SigningString builds the string covered by the signature from the
// request line and the signed headers.
func SigningString(req *http.Request) string {
	host := req.Host
	if host == "" {
		host = req.URL.Host
	}

	lines := make([]string, 0, len(signedHeaders))
	for _, h := range signedHeaders {
		var value string
		switch h {
		case "(request-target)":
			value = strings.ToLower(req.Method) + " " + req.URL.RequestURI()
		case "host":
			value = host
		default:
			value = req.Header.Get(h)
		}
		lines = append(lines, h+": "+value)
	}
	return strings.Join(lines, "\n")
}

// ParseSigningKey parses a PEM encoded RSA or EC private key
// (PKCS#1, PKCS#8, SEC 1 or OpenSSH format).
func ParseSigningKey(pemBytes []byte) (crypto.Signer, error) {
	raw, err := ssh.ParseRawPrivateKey(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	switch key := raw.(type) {
	case *rsa.PrivateKey:
		return key, nil
	case *ecdsa.PrivateKey:
		return key, nil
	default:
		return nil, fmt.Errorf("unsupported private key type %T", raw)
	}
}

// LoadSigningKey reads and parses the private key at path.
func LoadSigningKey(path string) (crypto.Signer, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret key file: %w", err)
	}
	return ParseSigningKey(data)
}
