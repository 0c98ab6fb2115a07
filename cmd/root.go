package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/miot-home/micam/internal/pkg/camera"
	"github.com/miot-home/micam/internal/pkg/logging"
	"github.com/miot-home/micam/internal/pkg/miio"
	"github.com/miot-home/micam/internal/pkg/miot"
)

var (
	_cfgFile string
	_debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "micam",
	Short: "Control a Mi Smart Camera (isa.camera.hlc7) over the local network",

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _debug {
			logrus.SetLevel(logrus.DebugLevel)
		}

		return logging.Configure(viper.GetViper())
	},

	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&_cfgFile, "config", "", "config file (default is $HOME/.micam.yaml)")
	rootCmd.PersistentFlags().BoolVar(&_debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("host", "", "camera IP address or hostname")
	rootCmd.PersistentFlags().String("token", "", "device token as 32 hex characters")
	rootCmd.PersistentFlags().Duration("timeout", time.Second*5, "per-request timeout, eg. 10s")

	errPanic(viper.GetViper().BindPFlag("device.host", rootCmd.PersistentFlags().Lookup("host")))
	errPanic(viper.GetViper().BindPFlag("device.token", rootCmd.PersistentFlags().Lookup("token")))
	errPanic(viper.GetViper().BindPFlag("device.timeout", rootCmd.PersistentFlags().Lookup("timeout")))
}

func initConfig() {
	if _cfgFile != "" {
		viper.SetConfigFile(_cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".micam")
	}

	viper.SetEnvPrefix("MICAM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logging.Logger().Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func errPanic(err error) {
	if err != nil {
		panic(err)
	}
}

func checkRequiredFlags(needFlags ...string) error {
	missingFlags := []string{}

	for _, f := range needFlags {
		if !viper.IsSet(f) || viper.GetString(f) == "" {
			missingFlags = append(missingFlags, f)
		}
	}

	if len(missingFlags) > 0 {
		itemPlural := "item"
		if len(missingFlags) > 1 {
			itemPlural = "items"
		}
		return fmt.Errorf("required config %s `%s` not set", itemPlural, strings.Join(missingFlags, "`, `"))
	}

	return nil
}

func requireDevice(cmd *cobra.Command, args []string) error {
	return checkRequiredFlags("device.host", "device.token")
}

// newCamera dials the device, completes the handshake and returns the
// camera client plus a cleanup function closing the session.
func newCamera() (*camera.Camera, func(), error) {
	host := viper.GetString("device.host")
	token := viper.GetString("device.token")

	client, err := miio.Dial(host, token)
	if err != nil {
		return nil, nil, err
	}
	client = client.WithTimeout(viper.GetDuration("device.timeout"))

	if err := client.Handshake(); err != nil {
		client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			logging.Logger().WithError(err).Debug("closing device session")
		}
	}

	return camera.New(miot.NewLiveTransport(client)), cleanup, nil
}
