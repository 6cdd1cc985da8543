// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const cmdName = "verchaind"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   cmdName,
		Short: "version chain playground",
	}
	rootCmd.AddCommand(
		demoCommand(&configPath),
	)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s execution failed: %v\n", cmdName, err)
		os.Exit(1)
	}
}
