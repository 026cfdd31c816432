package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/tonimelisma/qcdn/internal/client"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List dirs, files and versions",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "dirs",
			Short: "List all dirs",
			Args:  cobra.NoArgs,
			RunE:  runLsDirs,
		},
		&cobra.Command{
			Use:   "files <dir-id>",
			Short: "List the files of a dir",
			Args:  cobra.ExactArgs(1),
			RunE:  runLsFiles,
		},
		&cobra.Command{
			Use:   "versions <file-id>",
			Short: "List the versions of a file with their tags",
			Args:  cobra.ExactArgs(1),
			RunE:  runLsVersions,
		},
	)

	return cmd
}

func runLsDirs(cmd *cobra.Command, _ []string) error {
	cc := cliContext(cmd.Context())

	c, err := client.Dial(cc.Cfg.URL, cc.Logger)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.Queries.GetDirs(cmd.Context(), &emptypb.Empty{})
	if err != nil {
		return err
	}

	t := newTable("ID", "NAME")
	for _, d := range res.GetItems() {
		t.AppendRow(tableRow(d.GetId(), d.GetName()))
	}
	t.Render()

	return nil
}

func runLsFiles(cmd *cobra.Command, args []string) error {
	cc := cliContext(cmd.Context())

	dirID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid dir id %q", args[0])
	}

	c, err := client.Dial(cc.Cfg.URL, cc.Logger)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.Queries.GetFiles(cmd.Context(), &qcdnpb.GetFilesRequest{DirId: dirID})
	if err != nil {
		return err
	}

	t := newTable("ID", "NAME", "MEDIA TYPE")
	for _, f := range res.GetItems() {
		t.AppendRow(tableRow(f.GetId(), f.GetName(), f.GetMediaType()))
	}
	t.Render()

	return nil
}

func runLsVersions(cmd *cobra.Command, args []string) error {
	cc := cliContext(cmd.Context())

	fileID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid file id %q", args[0])
	}

	c, err := client.Dial(cc.Cfg.URL, cc.Logger)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.Queries.GetFileVersions(cmd.Context(),
		&qcdnpb.GetFileVersionsRequest{FileId: fileID})
	if err != nil {
		return err
	}

	t := newTable("ID", "VERSION", "SIZE", "TAGS", "DELETED")
	for _, v := range res.GetItems() {
		deleted := ""
		if v.GetIsDeleted() {
			deleted = "yes"
		}

		t.AppendRow(tableRow(
			v.GetId(),
			v.GetName(),
			formatSize(v.GetSize()),
			strings.Join(v.GetTags(), ", "),
			deleted,
		))
	}
	t.Render()

	return nil
}
