package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/tonimelisma/qcdn/internal/client"
	"github.com/tonimelisma/qcdn/pkg/qcdnpb"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check server reachability and version",
		Args:  cobra.NoArgs,
		RunE:  runPing,
	}
}

func runPing(cmd *cobra.Command, _ []string) error {
	cc := cliContext(cmd.Context())

	c, err := client.Dial(cc.Cfg.URL, cc.Logger)
	if err != nil {
		return err
	}
	defer c.Close()

	start := time.Now()

	_, err = c.General.Ping(cmd.Context(),
		&qcdnpb.PingMessage{Timestamp: start.UnixMilli()})
	if err != nil {
		return err
	}

	rtt := time.Since(start)

	res, err := c.General.Version(cmd.Context(), &emptypb.Empty{})
	if err != nil {
		return err
	}

	fmt.Printf("%s: server %s, rtt %s\n", cc.Cfg.URL, res.GetVersion(), rtt.Round(time.Millisecond))

	return nil
}
