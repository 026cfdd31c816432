package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/tonimelisma/qcdn/internal/client"
)

func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <local-file>",
		Short: "Upload a file version",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpload,
	}

	cmd.Flags().String("dir", "", "target dir name (required)")
	cmd.Flags().String("name", "", "target file name (default: basename of local file)")
	cmd.Flags().String("media-type", "", "media type (default: by file extension)")
	cmd.Flags().String("file-version", "", "version label, e.g. 1.2.3 (required)")
	cmd.MarkFlagRequired("dir")
	cmd.MarkFlagRequired("file-version")

	return cmd
}

func runUpload(cmd *cobra.Command, args []string) error {
	cc := cliContext(cmd.Context())
	local := args[0]

	dir, _ := cmd.Flags().GetString("dir")
	name, _ := cmd.Flags().GetString("name")
	mediaType, _ := cmd.Flags().GetString("media-type")
	versionLabel, _ := cmd.Flags().GetString("file-version")

	if name == "" {
		name = filepath.Base(local)
	}

	if mediaType == "" {
		mediaType = mime.TypeByExtension(filepath.Ext(local))
		if mediaType == "" {
			mediaType = "application/octet-stream"
		}
	}

	hash, size, err := client.HashFile(local)
	if err != nil {
		return err
	}

	f, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("opening %s: %w", local, err)
	}
	defer f.Close()

	c, err := client.Dial(cc.Cfg.URL, cc.Logger)
	if err != nil {
		return err
	}
	defer c.Close()

	var progress func(int)

	if stdoutIsTTY() {
		bar := pb.Full.Start64(size)
		defer bar.Finish()

		progress = func(n int) { bar.Add(n) }
	}

	res, err := c.Upload(cmd.Context(), client.UploadSpec{
		Dir:       dir,
		Name:      name,
		MediaType: mediaType,
		Version:   versionLabel,
		Size:      size,
		Hash:      hash,
	}, f, progress)
	if err != nil {
		return err
	}

	fmt.Printf("uploaded %s (%s) as %s/%s@%s\n",
		local, formatSize(size), dir, name, versionLabel)
	fmt.Printf("dir_id=%d file_id=%d file_version_id=%d\n",
		res.GetDirId(), res.GetFileId(), res.GetFileVersionId())

	return nil
}
