// Package config holds the agent configuration, bound from flags,
// environment variables and an optional config file.
package config

import (
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

const (
	// DatabaseFileName is the registry database inside the data folder.
	DatabaseFileName = "agent.db"

	// BootstrapRunbook provisions a host into the cluster.
	BootstrapRunbook = "bootstrap.yaml"
	// GetInfoRunbook gathers facts without changing the host.
	GetInfoRunbook = "get_info.yaml"
)

type Server struct {
	ListenInterface string `mapstructure:"listen-interface" default:"0.0.0.0" validate:"required"`
	HTTPPort        int    `mapstructure:"http-port" default:"8000" validate:"gt=0,lte=65535"`
	ServerMode      string `mapstructure:"mode" default:"dev" validate:"oneof=dev prod"`
	TLSCertFile     string `mapstructure:"tls-certfile"`
	TLSKeyFile      string `mapstructure:"tls-keyfile"`
}

type Agent struct {
	DataFolder     string `mapstructure:"data-folder" default:"/var/lib/bootstrap-agent" validate:"required"`
	NumWorkers     int    `mapstructure:"num-workers" default:"3" validate:"gt=0"`
	PlaybookBinary string `mapstructure:"playbook-binary" default:"ansible-playbook" validate:"required"`
	RunbookFolder  string `mapstructure:"runbook-folder" default:"/etc/bootstrap-agent/runbooks" validate:"required"`
}

type Auth struct {
	Enabled     bool   `mapstructure:"enabled" default:"false"`
	JWTFilePath string `mapstructure:"jwt-filepath"`
}

// StoreBackend declares one persistent-store target in the config file,
// the analog of the server's repeatable register-store-handler block.
type StoreBackend struct {
	Type               string   `mapstructure:"type" validate:"required"`
	ServerURL          string   `mapstructure:"server_url"`
	CertificateCAPath  string   `mapstructure:"certificate_ca_path"`
	CertificatePath    string   `mapstructure:"certificate_path"`
	CertificateKeyPath string   `mapstructure:"certificate_key_path"`
	DriverArgs         []string `mapstructure:"driver_args"`
}

type Configuration struct {
	ConfigFile string         `mapstructure:"-"`
	Server     Server         `mapstructure:"server"`
	Agent      Agent          `mapstructure:"agent"`
	Auth       Auth           `mapstructure:"authentication"`
	Stores     []StoreBackend `mapstructure:"stores"`
}

func NewConfigurationWithOptionsAndDefaults() *Configuration {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Validate fails fast on anything that would otherwise surface mid-run:
// struct constraints, TLS file pairing, auth material and recognized store
// backends missing their server URL.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return srvErrors.NewConfigurationError(err.Error())
	}

	if (c.Server.TLSCertFile == "") != (c.Server.TLSKeyFile == "") {
		return srvErrors.NewConfigurationError("both a TLS keyfile and certfile must be given for server TLS")
	}

	if c.Auth.Enabled && c.Auth.JWTFilePath == "" {
		return srvErrors.NewConfigurationError("authentication requires a jwt secret file")
	}

	for _, backend := range c.Stores {
		switch models.StoreBackendType(backend.Type) {
		case models.StoreBackendEtcd, models.StoreBackendKubernetes:
			if backend.ServerURL == "" {
				return srvErrors.NewConfigurationError(backend.Type + " store backend requires a server_url")
			}
		default:
			// Unrecognized store types are carried through untranslated.
		}
	}

	return nil
}

// StoreBackends converts the configured backends into their model form,
// preserving declaration order.
func (c *Configuration) StoreBackends() []models.StoreBackend {
	backends := make([]models.StoreBackend, 0, len(c.Stores))
	for _, b := range c.Stores {
		backends = append(backends, models.StoreBackend{
			Type:               models.StoreBackendType(b.Type),
			ServerURL:          b.ServerURL,
			CertificateCAPath:  b.CertificateCAPath,
			CertificatePath:    b.CertificatePath,
			CertificateKeyPath: b.CertificateKeyPath,
			DriverArgs:         b.DriverArgs,
		})
	}
	return backends
}
