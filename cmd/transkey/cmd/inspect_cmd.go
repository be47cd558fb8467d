package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/OhanaFS/transkey"
	"github.com/OhanaFS/transkey/util/debug"
)

var inspectCmd = &cli.Command{
	Name:  "inspect",
	Usage: "show the public fields of a transport key without a PIN",
	Flags: []cli.Flag{flagKey},
	Action: func(cCtx *cli.Context) error {
		info, err := transkey.Inspect(cCtx.String(flagKey.Name))
		if err != nil {
			return err
		}

		w := cCtx.App.Writer
		fmt.Fprintf(w, "network id:  %#03x\n", info.NetID)
		fmt.Fprintf(w, "share:       %d of %d\n", info.ShareIndex+1, info.ShareCount)
		fmt.Fprintf(w, "checksum:    %05x\n", info.Checksum)

		data, err := info.Payload.MarshalBinary()
		if err != nil {
			return err
		}
		debug.Hexdump(w, data, "payload")
		return nil
	},
}
