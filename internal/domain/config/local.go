package config

// LocalConfig represents the local xform defaults stored in .xform/config.local.json.
// Empty fields are unset and fall through to the environment.
type LocalConfig struct {
	Env    string `json:"env,omitempty"`
	Config string `json:"config,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyEnv    ConfigKey = "env"
	ConfigKeyConfig ConfigKey = "config"
)

// DefaultLocalConfig returns the default local configuration, with nothing set
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// Get returns the value stored under key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyEnv:
		return c.Env
	case ConfigKeyConfig:
		return c.Config
	}
	return ""
}

// Set stores value under key. Unknown keys are ignored.
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyEnv:
		c.Env = value
	case ConfigKeyConfig:
		c.Config = value
	}
}

// IsEmpty reports whether no default is set
func (c *LocalConfig) IsEmpty() bool {
	return c.Env == "" && c.Config == ""
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyEnv,
		ConfigKeyConfig,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "node_env" && validKey == ConfigKeyEnv) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "node_env" -> "env")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "node_env" {
		return ConfigKeyEnv
	}
	return ConfigKey(key)
}
