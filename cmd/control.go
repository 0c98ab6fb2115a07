package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/miot-home/micam/internal/pkg/camera"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <left|right|up|down>",
	Short: "Rotate the camera one step in the given direction",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		direction, err := camera.ParseDirection(args[0])
		if err != nil {
			return err
		}

		return doSimple(fmt.Sprintf("Rotating to direction '%s'", direction),
			func(cam *camera.Camera) error {
				return cam.Rotate(direction)
			})
	},

	PreRunE: requireDevice,
}

var nightModeCmd = &cobra.Command{
	Use:   "night-mode <auto|on|off>",
	Short: "Set the infrared night mode",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := camera.ParseNightMode(args[0])
		if err != nil {
			return err
		}

		return doSimple(fmt.Sprintf("NightMode %s", args[0]),
			func(cam *camera.Camera) error {
				return cam.SetNightMode(mode)
			})
	},

	PreRunE: requireDevice,
}

var motionRecordCmd = &cobra.Command{
	Use:   "motion-record <on|off|stop>",
	Short: "Control motion-triggered recording",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := camera.ParseMotionRecordMode(args[0])
		if err != nil {
			return err
		}

		return doSimple(fmt.Sprintf("MotionRecord %s", mode),
			func(cam *camera.Camera) error {
				return cam.SetMotionRecord(mode)
			})
	},

	PreRunE: requireDevice,
}

// toggle functions addressable through the generic `set` command
var setters = map[string]func(*camera.Camera, bool) error{
	"light":           (*camera.Camera).SetLight,
	"flip":            (*camera.Camera).SetFlip,
	"watermark":       (*camera.Camera).SetWatermark,
	"wdr":             (*camera.Camera).SetWDR,
	"full-color":      (*camera.Camera).SetFullColor,
	"improve-program": (*camera.Camera).SetImproveProgram,
}

var setCmd = &cobra.Command{
	Use:   "set <function> <on|off>",
	Short: "Toggle a camera function (light, flip, watermark, wdr, full-color, improve-program)",
	Args:  cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		setter, ok := setters[args[0]]
		if !ok {
			return errors.Errorf("unknown function %q", args[0])
		}

		var on bool
		switch args[1] {
		case "on":
			on = true
		case "off":
			on = false
		default:
			return errors.Errorf("unsupported state %q (want on or off)", args[1])
		}

		return doSimple(fmt.Sprintf("%s %s", args[0], args[1]),
			func(cam *camera.Camera) error {
				return setter(cam, on)
			})
	},

	PreRunE: requireDevice,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(nightModeCmd)
	rootCmd.AddCommand(motionRecordCmd)
	rootCmd.AddCommand(setCmd)
}
