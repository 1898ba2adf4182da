package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "graha",
	Short: "Vedic sidereal birth-chart engine",
	Long: "Graha computes sidereal birth charts: planetary positions, South Indian\n" +
		"house placements, Vedic aspects, yoga patterns, divisional charts and the\n" +
		"Vimshottari dasha timeline, from a birth moment and an ephemeris table.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().String("config", "", "config file (default .graha.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("ayanamsa", "", "ayanamsa model (lahiri, raman, krishnamurti, yukteshwar, fagan_bradley)")
	rootCmd.PersistentFlags().String("house-system", "", "house system (whole_sign, equal)")
	rootCmd.PersistentFlags().String("ephemeris", "", "path to a TOML ephemeris table")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("ayanamsa", rootCmd.PersistentFlags().Lookup("ayanamsa"))
	_ = viper.BindPFlag("house_system", rootCmd.PersistentFlags().Lookup("house-system"))
	_ = viper.BindPFlag("ephemeris_table", rootCmd.PersistentFlags().Lookup("ephemeris"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".graha")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("GRAHA")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func initLogging() {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
