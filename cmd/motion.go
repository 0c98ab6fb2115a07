package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/miot-home/micam/internal/pkg/camera"
)

var motionSensitivityCmd = &cobra.Command{
	Use:   "motion-sensitivity <high|low>",
	Short: "Set motion detection sensitivity across all zones",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := camera.ParseMotionSensitivity(args[0])
		if err != nil {
			return err
		}

		return doSimple(fmt.Sprintf("Setting motion sensitivity '%s'", level),
			func(cam *camera.Camera) error {
				return cam.SetMotionSensitivity(level)
			})
	},

	PreRunE: requireDevice,
}

var _monitoringCmdOpts struct {
	startHour   int
	startMinute int
	endHour     int
	endMinute   int
	notify      int
	interval    int
}

var monitoringCmd = &cobra.Command{
	Use:   "monitoring <off|all-day|custom>",
	Short: "Set the home monitoring schedule",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := camera.ParseHomeMonitoringMode(args[0])
		if err != nil {
			return err
		}

		cfg := camera.HomeMonitoringConfig{
			Mode:        mode,
			StartHour:   viper.GetInt("monitoring.start-hour"),
			StartMinute: viper.GetInt("monitoring.start-minute"),
			EndHour:     viper.GetInt("monitoring.end-hour"),
			EndMinute:   viper.GetInt("monitoring.end-minute"),
			Notify:      viper.GetInt("monitoring.notify"),
			Interval:    viper.GetInt("monitoring.interval"),
		}

		return doSimple(fmt.Sprintf("Setting alarm config to '%s'", mode),
			func(cam *camera.Camera) error {
				return cam.SetHomeMonitoringConfig(cfg)
			})
	},

	PreRunE: requireDevice,
}

func init() {
	defaults := camera.DefaultHomeMonitoringConfig()
	monitoringCmd.Flags().IntVar(&_monitoringCmdOpts.startHour, "start-hour", defaults.StartHour, "schedule start hour")
	monitoringCmd.Flags().IntVar(&_monitoringCmdOpts.startMinute, "start-minute", defaults.StartMinute, "schedule start minute")
	monitoringCmd.Flags().IntVar(&_monitoringCmdOpts.endHour, "end-hour", defaults.EndHour, "schedule end hour")
	monitoringCmd.Flags().IntVar(&_monitoringCmdOpts.endMinute, "end-minute", defaults.EndMinute, "schedule end minute")
	monitoringCmd.Flags().IntVar(&_monitoringCmdOpts.notify, "notify", defaults.Notify, "send notifications (1) or not (0)")
	monitoringCmd.Flags().IntVar(&_monitoringCmdOpts.interval, "interval", defaults.Interval, "alarm interval in minutes")

	errPanic(viper.GetViper().BindPFlag("monitoring.start-hour", monitoringCmd.Flags().Lookup("start-hour")))
	errPanic(viper.GetViper().BindPFlag("monitoring.start-minute", monitoringCmd.Flags().Lookup("start-minute")))
	errPanic(viper.GetViper().BindPFlag("monitoring.end-hour", monitoringCmd.Flags().Lookup("end-hour")))
	errPanic(viper.GetViper().BindPFlag("monitoring.end-minute", monitoringCmd.Flags().Lookup("end-minute")))
	errPanic(viper.GetViper().BindPFlag("monitoring.notify", monitoringCmd.Flags().Lookup("notify")))
	errPanic(viper.GetViper().BindPFlag("monitoring.interval", monitoringCmd.Flags().Lookup("interval")))

	rootCmd.AddCommand(motionSensitivityCmd)
	rootCmd.AddCommand(monitoringCmd)
}
