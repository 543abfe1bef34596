package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	// Pepper is loaded from a file or generated and persisted at first use.
	pepper     string
	pepperFile string
)

func SetPepperPath(file string) {
	pepperFile = file
}

func GetPepper() string {
	if pepper != "" {
		return pepper
	}

	var err error
	pepper, err = loadOrGeneratePepper()
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	return pepper
}

func loadOrGeneratePepper() (string, error) {
	if pepperFile == "" {
		// No file configured: ephemeral pepper, hashes do not survive restarts.
		return generatePepper()
	}

	if data, err := os.ReadFile(pepperFile); err == nil && len(data) > 0 {
		return string(data), nil
	}

	generated, err := generatePepper()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(pepperFile), 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(pepperFile, []byte(generated), 0o600); err != nil {
		return "", err
	}

	return generated, nil
}

func generatePepper() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
