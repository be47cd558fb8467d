package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/OhanaFS/transkey/network"
)

var networksCmd = &cli.Command{
	Name:  "networks",
	Usage: "list the known networks and their ids",
	Action: func(cCtx *cli.Context) error {
		nets := network.Builtin()
		if path := cCtx.String(flagNetworksFile.Name); path != "" {
			extra, err := network.LoadFile(path)
			if err != nil {
				return err
			}
			nets = append(extra, nets...)
		}

		for _, p := range nets {
			kind := "mainnet"
			if p.Testnet {
				kind = "testnet"
			}
			fmt.Fprintf(cCtx.App.Writer, "%-12s %-8s netid=%#03x addrtype=%#x\n",
				p.Name, kind, p.NetID, p.AddrTypeP2PKH)
		}
		return nil
	},
}
