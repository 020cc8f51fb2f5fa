package usecase

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/xform/internal/domain"
	"github.com/trebuchet-org/xform/internal/domain/config"
)

// normalizeLocalKey validates a user supplied local config key
func normalizeLocalKey(raw string) (config.ConfigKey, error) {
	// Normalize key to lowercase
	key := strings.ToLower(raw)

	if !config.IsValidConfigKey(key) {
		validKeys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string {
			if k == config.ConfigKeyEnv {
				return string(k) + " (node_env)"
			}
			return string(k)
		})
		msg := fmt.Sprintf("unknown config key: %s", raw)
		keys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
		if hint := Suggest(key, keys); hint != "" {
			msg += " (" + hint + ")"
		}
		return "", fmt.Errorf("%w: %s\nAvailable keys: %s", domain.ErrInvalidConfigKey, msg, strings.Join(validKeys, ", "))
	}

	return config.NormalizeConfigKey(key), nil
}
