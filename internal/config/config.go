package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clipkit/internal/dirs"
)

// Init wires Viper with config paths, env, defaults, and flag bindings.
// It is non-fatal: any errors are returned for optional handling by caller.
func Init(root *cobra.Command) error {
	// Ensure base directories exist
	_ = dirs.EnsureAll()

	// Setup config search path
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		_ = dirs.Ensure(cfgDir)
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: CLIPKIT_*
	viper.SetEnvPrefix("CLIPKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag("ffmpeg_binary", root.PersistentFlags().Lookup("ffmpeg-binary"))
	_ = viper.BindPFlag("ffprobe_binary", root.PersistentFlags().Lookup("ffprobe-binary"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))

	// Read config file if present (ignore not found)
	_ = viper.ReadInConfig()

	return nil
}
