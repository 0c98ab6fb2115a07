package cmd

import (
	"fmt"

	"github.com/miot-home/micam/internal/pkg/camera"
	"github.com/spf13/cobra"
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Power the camera on",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Power on", (*camera.Camera).PowerOn)
	},

	PreRunE: requireDevice,
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Power the camera off",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Power off", (*camera.Camera).PowerOff)
	},

	PreRunE: requireDevice,
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the camera",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Restart device", (*camera.Camera).Restart)
	},

	PreRunE: requireDevice,
}

var alarmCmd = &cobra.Command{
	Use:   "alarm",
	Short: "Sound a loud alarm for 10 seconds",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Alarm", (*camera.Camera).Alarm)
	},

	PreRunE: requireDevice,
}

func init() {
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(alarmCmd)
}

// doSimple runs a no-argument operation and confirms it on stdout
func doSimple(confirmation string, op func(*camera.Camera) error) error {
	cam, done, err := newCamera()
	if err != nil {
		return err
	}
	defer done()

	if err := op(cam); err != nil {
		return err
	}

	fmt.Println(confirmation)
	return nil
}
