package setup

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Args struct {
	VerbosityCount int
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	verbose, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}
	return &Args{
		VerbosityCount: verbose,
	}, nil
}

func ConfigureLogger(args *Args) {
	if args.VerbosityCount == 0 {
		logrus.SetLevel(logrus.WarnLevel)
	}
	if args.VerbosityCount == 1 {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if args.VerbosityCount == 2 {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if args.VerbosityCount >= 3 {
		logrus.SetLevel(logrus.TraceLevel)
	}
}
