package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tonimelisma/qcdn/internal/client"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

func newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <file-version-id> <tag>",
		Short: "Create a tag on a version, or move it there",
		Args:  cobra.ExactArgs(2),
		RunE:  runTag,
	}
}

func runTag(cmd *cobra.Command, args []string) error {
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

	_, err = c.Updates.TagVersion(cmd.Context(), &qcdnpb.TagVersionRequest{
		FileVersionId: versionID,
		Tag:           args[1],
	})
	if err != nil {
		return err
	}

	fmt.Printf("tagged version %d as %q\n", versionID, args[1])

	return nil
}
