// Package config manages user-level settings stored at ~/.stylescan/config.yaml.
// Values can be overridden with STYLESCAN_* environment variables, for
// example STYLESCAN_LOG_LEVEL for log.level.
package config
