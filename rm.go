package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tonimelisma/qcdn/internal/client"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file-version-id>",
		Short: "Delete a file version (soft delete; bytes stay on disk)",
		Args:  cobra.ExactArgs(1),
		RunE:  runRm,
	}
}

func runRm(cmd *cobra.Command, args []string) error {
	cc := cliContext(cmd.Context())

	versionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid file version id %q", args[0])
	}

	c, err := client.Dial(cc.Cfg.URL, cc.Logger)
	if err != nil {
		return err
	}
	defer c.Close()

	_, err = c.Updates.DeleteFileVersion(cmd.Context(),
		&qcdnpb.DeleteFileVersionRequest{Id: versionID})
	if err != nil {
		return err
	}

	fmt.Printf("deleted version %d\n", versionID)

	return nil
}
