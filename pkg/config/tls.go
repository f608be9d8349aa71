package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
)

// ClientTLSConfig configures mutual TLS towards Protecto.
type ClientTLSConfig struct {
	Enabled             bool     `mapstructure:"enabled"`
	Certificate         string   `mapstructure:"certificate"`
	PrivateKey          string   `mapstructure:"private_key"`
	CACerts             string   `mapstructure:"ca_certs"`
	DisableSystemCAPool bool     `mapstructure:"disable_system_ca_pool"`
	CipherSuites        []uint16 `mapstructure:"cipher_suites"`
	CurvePreferences    []uint16 `mapstructure:"curve_preferences"`
	MaxVersion          string   `mapstructure:"max_version"`
}

// BuildClientTLSConfig returns nil when TLS customisation is disabled.
func BuildClientTLSConfig(cfg ClientTLSConfig) (*tls.Config, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	var certificates []tls.Certificate
	if cfg.Certificate != "" && cfg.PrivateKey != "" {
		certPath, err := resolvePath(cfg.Certificate)
		if err != nil {
			return nil, fmt.Errorf("resolve client certificate path: %w", err)
		}
		keyPath, err := resolvePath(cfg.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("resolve client private key path: %w", err)
		}
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate/key: %w", err)
		}
		certificates = append(certificates, cert)
	}

	var rootCAs *x509.CertPool
	if cfg.DisableSystemCAPool {
		rootCAs = x509.NewCertPool()
	} else {
		var err error
		rootCAs, err = x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("failed to load system CA pool: %w", err)
		}
	}

	if cfg.CACerts != "" {
		caPath, err := resolvePath(cfg.CACerts)
		if err != nil {
			return nil, fmt.Errorf("resolve CA cert path: %w", err)
		}
		caBytes, err := os.ReadFile(caPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		if ok := rootCAs.AppendCertsFromPEM(caBytes); !ok {
			return nil, fmt.Errorf("failed to append CA cert")
		}
	}

	var curvePrefs []tls.CurveID
	for _, c := range cfg.CurvePreferences {
		curvePrefs = append(curvePrefs, tls.CurveID(c))
	}

	tlsConfig := &tls.Config{
		RootCAs:          rootCAs,
		Certificates:     certificates,
		CipherSuites:     cfg.CipherSuites,
		CurvePreferences: curvePrefs,
		MinVersion:       tls.VersionTLS12,
		MaxVersion:       tlsVersion(cfg.MaxVersion),
	}

	return tlsConfig, nil
}

// resolvePath anchors relative paths at the working directory.
func resolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	projectPath, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(projectPath, path), nil
}

func tlsVersion(version string) uint16 {
	switch version {
	case "TLS12":
		return tls.VersionTLS12
	case "TLS13":
		return tls.VersionTLS13
	default:
		return tls.VersionTLS13
	}
}
