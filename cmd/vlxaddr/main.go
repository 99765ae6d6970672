package main

import (
	"github.com/CipherDogs/velas-address-go/cmd/vlxaddr/setup"
	"github.com/spf13/cobra"
)

func CmdVlxAddr() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vlxaddr",
		Short:        "Convert account addresses between Velas and Ethereum formats",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args)
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(CmdEthToVlx())
	cmd.AddCommand(CmdVlxToEth())
	cmd.AddCommand(CmdInspect())

	return cmd
}

func main() {
	rootCmd := CmdVlxAddr()
	_ = rootCmd.Execute()
}
