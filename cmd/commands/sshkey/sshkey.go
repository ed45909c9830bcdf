// Package sshkey implements the "ssh-key" command group. Njalla takes the
// public key inline when a server is added or reset, so the group only
// checks keys locally.
package sshkey

import (
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "ssh-key" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssh-key",
		Short: "Check SSH public keys before using them",
		Long: `Check the SSH public keys you pass to "server add" and "server reset".`,
	}

	cmd.AddCommand(CheckCommand())

	cmdutil.AddFormatFlag(cmd)

	return cmd
}
