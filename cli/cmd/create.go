// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:               "create",
	Short:             "Add a resource to vnxbd",
	PersistentPreRunE: preRun,
}
