// Package config loads runtime settings from the environment.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/sirsluginston/sitekit/store"
)

// Settings holds every externally configured value. All fields come
// from SITEKIT_* environment variables, with defaults matching the
// production deployment.
type Settings struct {
	// ConfigTable is the site configuration table name.
	ConfigTable string `mapstructure:"config_table"`

	// UsersTable is the user settings table name.
	UsersTable string `mapstructure:"users_table"`

	// UserIDAttr is the users table partition key attribute name.
	UserIDAttr string `mapstructure:"user_id_attr"`

	// DisplayNameIndex is the optional users table GSI name.
	DisplayNameIndex string `mapstructure:"display_name_index"`

	// APIBaseURL is the deployed API's base URL, for clients.
	APIBaseURL string `mapstructure:"api_base_url"`

	// UserPoolID and UserPoolClientID identify the hosted identity
	// provider. Token verification happens at the gateway; these are
	// forwarded to clients, never consulted by the handler.
	UserPoolID       string `mapstructure:"user_pool_id"`
	UserPoolClientID string `mapstructure:"user_pool_client_id"`

	// DevServerAddr is the local development server's listen address.
	DevServerAddr string `mapstructure:"dev_server_addr"`
}

// Load reads settings from the environment.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("sitekit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("config_table", "SirSluginstonCo")
	v.SetDefault("users_table", "SirSluginstonUsers")
	v.SetDefault("user_id_attr", "UserID")
	v.SetDefault("display_name_index", "DisplayNameIndex")
	v.SetDefault("api_base_url", "")
	v.SetDefault("user_pool_id", "")
	v.SetDefault("user_pool_client_id", "")
	v.SetDefault("dev_server_addr", ":8080")

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// StoreConfig maps the settings onto the store's table configuration.
func (s *Settings) StoreConfig() store.Config {
	return store.Config{
		ConfigTable:      s.ConfigTable,
		UsersTable:       s.UsersTable,
		UserIDAttr:       s.UserIDAttr,
		DisplayNameIndex: s.DisplayNameIndex,
	}
}
