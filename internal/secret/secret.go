package secret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const generatedLength = 32

// DebugSecret is the fixed well-known signing key used when the service runs
// in debug mode. Never valid in production.
var DebugSecret = []byte("debug")

// Source decides where the process signing secret comes from. The decision is
// made once at startup and the resolved secret is handed to the token codec;
// it never changes for the lifetime of the process.
type Source struct {
	Debug    bool
	EnvValue string // explicit secret material, highest precedence outside debug
	FilePath string // durable store, created with a fresh secret on first run
}

// Resolve returns the signing secret for this process.
func (s Source) Resolve() ([]byte, error) {
	if s.Debug {
		return DebugSecret, nil
	}

	if v := strings.TrimSpace(s.EnvValue); v != "" {
		return []byte(v), nil
	}

	if strings.TrimSpace(s.FilePath) == "" {
		return nil, errors.New("no secret source configured")
	}

	data, err := os.ReadFile(s.FilePath)
	if err == nil {
		raw, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decErr != nil {
			return nil, fmt.Errorf("decode secret file: %w", decErr)
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("secret file %s is empty", s.FilePath)
		}
		return raw, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read secret file: %w", err)
	}

	raw := make([]byte, generatedLength)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("create secret directory: %w", err)
	}
	if err := os.WriteFile(s.FilePath, []byte(base64.StdEncoding.EncodeToString(raw)), 0o600); err != nil {
		return nil, fmt.Errorf("persist secret: %w", err)
	}

	return raw, nil
}
