package dependency_container

import (
	"fmt"
	"net/http"

	"github.com/NeuralTrust/MaskFlow/pkg/config"
	domainprotecto "github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/auth/oauth"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/events"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/httpx"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/protecto"
	"github.com/NeuralTrust/MaskFlow/pkg/middleware"
	"github.com/NeuralTrust/MaskFlow/pkg/version"
	"github.com/sirupsen/logrus"
)

const protectoBreakerName = "protecto"

func newProtectoClient(cfg *config.Config, logger *logrus.Logger) (domainprotecto.Client, error) {
	tlsConfig, err := config.BuildClientTLSConfig(cfg.Protecto.TLS)
	if err != nil {
		return nil, fmt.Errorf("failed to build protecto tls config: %w", err)
	}

	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.Protecto.Timeout),
		httpx.WithMaxConnsPerHost(cfg.Protecto.MaxConnsPerHost),
		httpx.WithInsecureSkipVerify(cfg.Protecto.InsecureSkipVerify),
		httpx.WithTLSConfig(tlsConfig),
		httpx.WithUserAgent(fmt.Sprintf("%s/%s", version.AppName, version.Version)),
	)
	breaker := httpx.NewCircuitBreaker(
		protectoBreakerName,
		cfg.Protecto.Breaker.OpenTimeout,
		cfg.Protecto.Breaker.MaxFailures,
		protecto.CountsAsSuccess,
	)

	protectoCfg := protecto.Config{
		BaseURL: cfg.Protecto.BaseURL,
		APIKey:  cfg.Protecto.APIKey,
	}
	if oauthCfg := cfg.Protecto.OAuth; oauthCfg.Enabled {
		tokenHTTPClient := &http.Client{Timeout: cfg.Protecto.Timeout}
		if tlsConfig != nil {
			tokenHTTPClient.Transport = &http.Transport{TLSClientConfig: tlsConfig}
		}
		protectoCfg.Tokens = oauth.NewCachedTokenSource(
			oauth.NewTokenClient(oauth.WithHTTPClient(tokenHTTPClient)),
			oauth.TokenRequestDTO{
				TokenURL:     oauthCfg.TokenURL,
				ClientID:     oauthCfg.ClientID,
				ClientSecret: oauthCfg.ClientSecret,
				UseBasicAuth: oauthCfg.UseBasicAuth,
				Scopes:       oauthCfg.Scopes,
				Audience:     oauthCfg.Audience,
			},
			oauthCfg.RefreshSkew,
		)
		logger.WithField("token_url", oauthCfg.TokenURL).Info("protecto client uses oauth client credentials")
	}

	return protecto.NewClient(protectoCfg, httpClient, breaker, logger), nil
}

func exporterConfigs(configs []config.ExporterConfig) []events.ExporterConfig {
	out := make([]events.ExporterConfig, 0, len(configs))
	for _, c := range configs {
		out = append(out, events.ExporterConfig{Name: c.Name, Settings: c.Settings})
	}
	return out
}

func corsConfig(cfg config.CORSConfig) middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: cfg.AllowCredentials,
		ExposeHeaders:    cfg.ExposeHeaders,
		MaxAge:           cfg.MaxAge,
	}
}
