package wallet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/logging"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"
)

// Adapter is the wallet session surface the catalog consumes for display.
// None of its methods report errors: an unavailable session reads as
// signed-out and failed writes are logged.
type Adapter interface {
	IsSignedIn() bool
	Address() (string, bool)
	Connect(profile Profile)
	Disconnect()
}

// STXAddress holds one address per network.
type STXAddress struct {
	Mainnet string `yaml:"mainnet,omitempty"`
	Testnet string `yaml:"testnet,omitempty"`
}

// For returns the address for the given network.
func (a STXAddress) For(n config.Network) string {
	if n == config.NetworkMainnet {
		return a.Mainnet
	}
	return a.Testnet
}

// Profile is the user data a wallet hands back on connect.
type Profile struct {
	STXAddress STXAddress `yaml:"stx_address"`
}

// AppDetails identifies this application to the wallet.
type AppDetails struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// Session is the persisted form of a connected wallet.
type Session struct {
	Profile     Profile    `yaml:"profile"`
	App         AppDetails `yaml:"app"`
	Scopes      []string   `yaml:"scopes"`
	ConnectedAt time.Time  `yaml:"connected_at"`
}

// DefaultAppDetails is what a new session records about this app.
var DefaultAppDetails = AppDetails{
	Name: "Stacks Contract Deployer",
	Icon: "/logo.png",
}

// DefaultScopes are the permissions requested on connect.
var DefaultScopes = []string{"store_write", "publish_data"}

// FileSession is an Adapter backed by a YAML file. A nil *FileSession is a
// valid, permanently signed-out adapter.
type FileSession struct {
	path    string
	network config.Network
	logger  *zap.Logger
	now     func() time.Time
}

var _ Adapter = (*FileSession)(nil)

// NewFileSession creates an adapter for the session file at path.
func NewFileSession(path string, network config.Network, logger *zap.Logger) *FileSession {
	return &FileSession{
		path:    path,
		network: network,
		logger:  logging.OrNop(logger),
		now:     time.Now,
	}
}

// Network returns the network addresses are resolved against.
func (s *FileSession) Network() config.Network {
	if s == nil {
		return config.NetworkTestnet
	}
	return s.network
}

// Load returns the stored session, or nil when signed out or unreadable.
func (s *FileSession) Load() *Session {
	if s == nil {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		s.logger.Warn("wallet session unreadable", zap.String("path", s.path), zap.Error(err))
		return nil
	}
	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		s.logger.Warn("wallet session corrupt", zap.String("path", s.path), zap.Error(err))
		return nil
	}
	return &sess
}

// IsSignedIn reports whether a session is stored.
func (s *FileSession) IsSignedIn() bool {
	return s.Load() != nil
}

// Address returns the address for the configured network.
func (s *FileSession) Address() (string, bool) {
	sess := s.Load()
	if sess == nil {
		return "", false
	}
	addr := sess.Profile.STXAddress.For(s.network)
	if addr == "" {
		s.logger.Debug("wallet session has no address for network", zap.String("network", string(s.network)))
		return "", false
	}
	return addr, true
}

// Connect stores a new session for profile, replacing any existing one.
func (s *FileSession) Connect(profile Profile) {
	if s == nil {
		return
	}
	sess := Session{
		Profile:     profile,
		App:         DefaultAppDetails,
		Scopes:      append([]string(nil), DefaultScopes...),
		ConnectedAt: s.now().UTC(),
	}
	if err := s.write(sess); err != nil {
		s.logger.Error("wallet connect failed", zap.String("path", s.path), zap.Error(err))
		return
	}
	s.logger.Info("wallet connected",
		zap.String("network", string(s.network)),
		zap.String("address", TruncateAddress(profile.STXAddress.For(s.network))))
}

// Disconnect removes the stored session.
func (s *FileSession) Disconnect() {
	if s == nil {
		return
	}
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error("wallet disconnect failed", zap.String("path", s.path), zap.Error(err))
		return
	}
	s.logger.Info("wallet disconnected")
}

func (s *FileSession) write(sess Session) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}
