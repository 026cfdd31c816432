package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/tonimelisma/qcdn/internal/client"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download <file-version-id> [local-path]",
		Short: "Download a file version, verified against its hash",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runDownload,
	}
}

func runDownload(cmd *cobra.Command, args []string) error {
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

	version, err := c.Queries.GetFileVersion(cmd.Context(),
		&qcdnpb.GetFileVersionRequest{Id: versionID})
	if err != nil {
		return err
	}

	local := version.GetName()
	if len(args) == 2 {
		local = args[1]
	}

	out, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("creating %s: %w", local, err)
	}
	defer out.Close()

	var progress func(int)

	if stdoutIsTTY() {
		bar := pb.Full.Start64(version.GetSize())
		defer bar.Finish()

		progress = func(n int) { bar.Add(n) }
	}

	n, err := c.Download(cmd.Context(), versionID, out, progress)
	if err != nil {
		// Leave no partially written artifact behind.
		out.Close()
		os.Remove(local)

		return err
	}

	fmt.Printf("downloaded %s (%s)\n", local, formatSize(n))

	return nil
}
