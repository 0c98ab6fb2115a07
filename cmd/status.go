package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Retrieve the camera's current settings",

	RunE: func(cmd *cobra.Command, args []string) error {
		return doStatus()
	},

	PreRunE: requireDevice,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func doStatus() error {
	cam, done, err := newCamera()
	if err != nil {
		return err
	}
	defer done()

	status, err := cam.Status()
	if err != nil {
		return err
	}

	fmt.Print(status)
	return nil
}
