package main

import (
	"github.com/midbel/polar/decode"
	"github.com/spf13/cobra"
)

func convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a plot configuration between chart, toml and yaml files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getLogger()
			if err := convert(args[0], args[1]); err != nil {
				return err
			}
			logger.Debug("configuration converted", "from", args[0], "to", args[1])
			return nil
		},
	}
}

func convert(input, output string) error {
	cfg, err := decode.Load(input)
	if err != nil {
		return err
	}
	return decode.Save(output, cfg)
}
