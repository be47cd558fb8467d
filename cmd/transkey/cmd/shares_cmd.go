package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/OhanaFS/transkey"
)

var (
	flagShares = &cli.IntFlag{
		Name:  "shares",
		Value: 2,
		Usage: "number of shares to split the secret into",
	}
	flagPINs = &cli.StringSliceFlag{
		Name:  "pins",
		Usage: "one PIN per share, prompted for when not set",
	}
	flagBundle = &cli.StringFlag{
		Name:     "bundle",
		Usage:    "YAML or JSON list of {key, pin} entries in share order",
		Required: true,
	}
)

var splitCmd = &cli.Command{
	Name:  "split",
	Usage: "split a secret into PIN-protected shares that are all needed to recover it",
	Flags: []cli.Flag{flagSecret, flagShares, flagPINs, flagDashes},
	Action: func(cCtx *cli.Context) error {
		codec, err := newCodec(cCtx)
		if err != nil {
			return err
		}
		secret, err := parseSecret(cCtx.String(flagSecret.Name))
		if err != nil {
			return err
		}

		pins := cCtx.StringSlice(flagPINs.Name)
		if len(pins) > 0 && cCtx.IsSet(flagShares.Name) && cCtx.Int(flagShares.Name) != len(pins) {
			return fmt.Errorf("--%s is %d but %d PINs were given",
				flagShares.Name, cCtx.Int(flagShares.Name), len(pins))
		}
		if len(pins) == 0 {
			n := cCtx.Int(flagShares.Name)
			if n < 1 || n > transkey.MaxShares {
				return transkey.ErrInvalidShare
			}
			for i := 0; i < n; i++ {
				pin, err := promptPIN(cCtx, fmt.Sprintf("PIN for share %d", i+1))
				if err != nil {
					return err
				}
				pins = append(pins, pin)
			}
		}

		keys, err := codec.EncryptShares(secret, pins, rand.Reader)
		if err != nil {
			return fmt.Errorf("failed to split secret: %w", err)
		}
		for _, key := range keys {
			fmt.Fprintln(cCtx.App.Writer, formatKey(cCtx, key))
		}
		return nil
	},
}

// loadBundle reads the shares of a split secret. JSON bundles are accepted as
// they are valid YAML.
func loadBundle(path string) ([]transkey.Share, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	var shares []transkey.Share
	if err := yaml.Unmarshal(data, &shares); err != nil {
		return nil, fmt.Errorf("failed to parse bundle: %w", err)
	}
	return shares, nil
}

var combineCmd = &cli.Command{
	Name:  "combine",
	Usage: "decrypt every share of a split secret and combine them",
	Flags: []cli.Flag{flagBundle},
	Action: func(cCtx *cli.Context) error {
		codec, err := newCodec(cCtx)
		if err != nil {
			return err
		}
		shares, err := loadBundle(cCtx.String(flagBundle.Name))
		if err != nil {
			return err
		}

		secret, err := codec.DecryptShares(shares)
		if err != nil {
			return err
		}
		fmt.Fprintln(cCtx.App.Writer, hex.EncodeToString(secret))
		return nil
	},
}
