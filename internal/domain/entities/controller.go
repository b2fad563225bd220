package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra metadata of a controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
}

// Controller binds a command use case to the CLI.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}

// FlagController is implemented by controllers that declare their own flags.
type FlagController interface {
	Controller
	AddFlags(cmd *cobra.Command)
}
