package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"
)

var encryptCmd = &cli.Command{
	Name:  "encrypt",
	Usage: "protect a secret with a PIN",
	Flags: []cli.Flag{flagSecret, flagPIN, flagDashes},
	Action: func(cCtx *cli.Context) error {
		codec, err := newCodec(cCtx)
		if err != nil {
			return err
		}
		secret, err := parseSecret(cCtx.String(flagSecret.Name))
		if err != nil {
			return err
		}
		pin, err := readPIN(cCtx, "Transport PIN")
		if err != nil {
			return err
		}

		key, err := codec.Encrypt(secret, pin)
		if err != nil {
			return fmt.Errorf("failed to encrypt secret: %w", err)
		}
		fmt.Fprintln(cCtx.App.Writer, formatKey(cCtx, key))
		return nil
	},
}

var (
	flagShareCount = &cli.IntFlag{
		Name:  "share-count",
		Value: 1,
		Usage: "number of shares the secret was split into",
	}
	flagShareIndex = &cli.IntFlag{
		Name:  "share-index",
		Usage: "index of this share, starting from zero",
	}
)

var decryptCmd = &cli.Command{
	Name:  "decrypt",
	Usage: "recover a secret or a single share from a transport key",
	Flags: []cli.Flag{flagKey, flagPIN, flagShareCount, flagShareIndex},
	Action: func(cCtx *cli.Context) error {
		codec, err := newCodec(cCtx)
		if err != nil {
			return err
		}
		pin, err := readPIN(cCtx, "Transport PIN")
		if err != nil {
			return err
		}

		secret, err := codec.DecryptShare(
			cCtx.String(flagKey.Name), pin,
			cCtx.Int(flagShareCount.Name), cCtx.Int(flagShareIndex.Name),
		)
		if err != nil {
			return fmt.Errorf("failed to decrypt key: %w", err)
		}
		fmt.Fprintln(cCtx.App.Writer, hex.EncodeToString(secret))
		return nil
	},
}
