// Package client wraps the generated qcdn RPC clients with the call
// patterns the CLI needs: chunked streaming upload with a precomputed
// hash, and hash-verified download.
package client

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/tonimelisma/qcdn/internal/errtypes"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

// chunkSize is the upload frame payload size.
const chunkSize = 64 * 1024

// Client bundles the four service clients over one connection.
type Client struct {
	conn *grpc.ClientConn

	General qcdnpb.GeneralClient
	Queries qcdnpb.FileQueriesClient
	Updates qcdnpb.FileUpdatesClient
	Nodes   qcdnpb.NodesClient

	logger *slog.Logger
}

// Dial connects to a qcdn server. Transport security is out of scope for
// the protocol; the connection is plaintext.
func Dial(addr string, logger *slog.Logger) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("client: connecting to %s: %w", addr, err)
	}

	return &Client{
		conn:    conn,
		General: qcdnpb.NewGeneralClient(conn),
		Queries: qcdnpb.NewFileQueriesClient(conn),
		Updates: qcdnpb.NewFileUpdatesClient(conn),
		Nodes:   qcdnpb.NewNodesClient(conn),
		logger:  logger,
	}, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// HashFile computes the base64 SHA-256 of a local file and its size, with
// streaming I/O. The upload protocol declares both up front, so the file
// is read twice: once here, once while streaming.
func HashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("client: opening %s for hashing: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()

	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("client: hashing %s: %w", path, err)
	}

	return base64.StdEncoding.EncodeToString(h.Sum(nil)), n, nil
}

// UploadSpec names the artifact an upload will create.
type UploadSpec struct {
	Dir       string
	Name      string
	MediaType string
	Version   string
	Size      int64
	Hash      string
}

// Upload streams meta then chunked parts from r and returns the server's
// response. progress, when non-nil, is called with each chunk size sent.
func (c *Client) Upload(ctx context.Context, spec UploadSpec, r io.Reader, progress func(int)) (*qcdnpb.UploadResponse, error) {
	stream, err := c.Updates.Upload(ctx)
	if err != nil {
		return nil, fmt.Errorf("client: opening upload stream: %w", err)
	}

	meta := &qcdnpb.UploadRequest{
		Request: &qcdnpb.UploadRequest_Meta{Meta: &qcdnpb.UploadMeta{
			Name:      spec.Name,
			Dir:       spec.Dir,
			MediaType: spec.MediaType,
			Version:   spec.Version,
			Size:      spec.Size,
			Hash:      spec.Hash,
		}},
	}
	if err := stream.Send(meta); err != nil {
		return nil, fmt.Errorf("client: sending upload meta: %w", err)
	}

	buf := make([]byte, chunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			part := &qcdnpb.UploadRequest{
				Request: &qcdnpb.UploadRequest_Part{Part: &qcdnpb.FilePart{
					Bytes: append([]byte(nil), buf[:n]...),
				}},
			}
			if err := stream.Send(part); err != nil {
				// The server rejected the stream; the real cause arrives
				// with CloseAndRecv.
				break
			}

			if progress != nil {
				progress(n)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("client: reading upload source: %w", err)
		}
	}

	res, err := stream.CloseAndRecv()
	if err != nil {
		return nil, fmt.Errorf("client: upload rejected: %w", err)
	}

	return res, nil
}

// Download streams a version's bytes into w, verifying the received
// content against the version's recorded hash and size. progress, when
// non-nil, is called with each chunk size received.
func (c *Client) Download(ctx context.Context, versionID int64, w io.Writer, progress func(int)) (int64, error) {
	version, err := c.Queries.GetFileVersion(ctx, &qcdnpb.GetFileVersionRequest{Id: versionID})
	if err != nil {
		return 0, fmt.Errorf("client: fetching version metadata: %w", err)
	}

	stream, err := c.Queries.Download(ctx, &qcdnpb.DownloadRequest{FileVersionId: versionID})
	if err != nil {
		return 0, fmt.Errorf("client: opening download stream: %w", err)
	}

	h := sha256.New()

	var received int64

	for {
		part, err := stream.Recv()
		if err == io.EOF {
			break
		}

		if err != nil {
			return received, fmt.Errorf("client: receiving part: %w", err)
		}

		chunk := part.GetBytes()

		if _, err := w.Write(chunk); err != nil {
			return received, fmt.Errorf("client: writing download: %w", err)
		}

		h.Write(chunk)
		received += int64(len(chunk))

		if progress != nil {
			progress(len(chunk))
		}
	}

	if received != version.GetSize() {
		return received, errtypes.DataCorruption(fmt.Sprintf(
			"received %d bytes, expected %d", received, version.GetSize()))
	}

	if digest := base64.StdEncoding.EncodeToString(h.Sum(nil)); digest != version.GetHash() {
		return received, errtypes.DataCorruption("downloaded content does not match recorded hash")
	}

	return received, nil
}
