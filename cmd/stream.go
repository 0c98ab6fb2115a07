package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miot-home/micam/internal/pkg/camera"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Control the P2P video stream",
}

var streamStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the P2P video stream",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Start P2P stream", (*camera.Camera).StartP2PStream)
	},

	PreRunE: requireDevice,
}

var streamStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the P2P video stream",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Stop P2P stream", (*camera.Camera).StopP2PStream)
	},

	PreRunE: requireDevice,
}

var alexaStreamCmd = &cobra.Command{
	Use:   "alexa-stream",
	Short: "Control the RTSP stream used by Amazon Alexa",
}

var alexaStreamStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Alexa RTSP video stream",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Start Alexa RTSP video stream", (*camera.Camera).StartAlexaRTSPStream)
	},

	PreRunE: requireDevice,
}

var alexaStreamStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the Alexa RTSP video stream",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doSimple("Stop Alexa RTSP video stream", (*camera.Camera).StopAlexaRTSPStream)
	},

	PreRunE: requireDevice,
}

var alexaStreamConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the Alexa RTSP video stream configuration",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doAlexaStreamConfig()
	},

	PreRunE: requireDevice,
}

func init() {
	streamCmd.AddCommand(streamStartCmd)
	streamCmd.AddCommand(streamStopCmd)
	rootCmd.AddCommand(streamCmd)

	alexaStreamCmd.AddCommand(alexaStreamStartCmd)
	alexaStreamCmd.AddCommand(alexaStreamStopCmd)
	alexaStreamCmd.AddCommand(alexaStreamConfigCmd)
	rootCmd.AddCommand(alexaStreamCmd)
}

func doAlexaStreamConfig() error {
	cam, done, err := newCamera()
	if err != nil {
		return err
	}
	defer done()

	result, err := cam.AlexaRTSPStreamConfiguration()
	if err != nil {
		return err
	}

	fmt.Printf("%+v\n", result.Out)
	return nil
}
