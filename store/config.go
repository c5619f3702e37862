package store

// Config holds table configuration for the Store.
type Config struct {
	// ConfigTable is the name of the site configuration table.
	// Default: "SirSluginstonCo"
	ConfigTable string

	// UsersTable is the name of the user settings table.
	// Default: "SirSluginstonUsers"
	UsersTable string

	// UserIDAttr is the partition key attribute name of the users
	// table. Default: "UserID"
	UserIDAttr string

	// DisplayNameIndex is the name of the users table GSI keyed on
	// DisplayName. The index is optional; lookups against it degrade
	// when it is not provisioned. Default: "DisplayNameIndex"
	DisplayNameIndex string
}

// DefaultConfig returns the table names of the production deployment.
func DefaultConfig() Config {
	return Config{
		ConfigTable:      "SirSluginstonCo",
		UsersTable:       "SirSluginstonUsers",
		UserIDAttr:       "UserID",
		DisplayNameIndex: "DisplayNameIndex",
	}
}

// validate ensures config values are usable, filling defaults for
// empty fields.
func (c *Config) validate() {
	if c.ConfigTable == "" {
		c.ConfigTable = "SirSluginstonCo"
	}
	if c.UsersTable == "" {
		c.UsersTable = "SirSluginstonUsers"
	}
	if c.UserIDAttr == "" {
		c.UserIDAttr = "UserID"
	}
	if c.DisplayNameIndex == "" {
		c.DisplayNameIndex = "DisplayNameIndex"
	}
}
