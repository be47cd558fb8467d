package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/OhanaFS/transkey"
	"github.com/OhanaFS/transkey/network"
)

var (
	flagNetwork = &cli.StringFlag{
		Name:    "network",
		Value:   network.Mainnet.Name,
		Usage:   "name of the network keys are bound to",
		EnvVars: []string{"TRANSKEY_NETWORK"},
	}
	flagAddrType = &cli.Uint64Flag{
		Name:  "addrtype",
		Usage: "P2PKH address type to derive the network id from, overrides -network",
	}
	flagNetworksFile = &cli.StringFlag{
		Name:    "networks-file",
		Usage:   "YAML file with additional network definitions",
		EnvVars: []string{"TRANSKEY_NETWORKS_FILE"},
	}
	flagVerbose = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log why keys are rejected",
	}
	flagPIN = &cli.StringFlag{
		Name:    "pin",
		Usage:   "transport PIN, prompted for when not set",
		EnvVars: []string{"TRANSKEY_PIN"},
	}
	flagKey = &cli.StringFlag{
		Name:     "key",
		Usage:    "transport key, dashes are ignored",
		Required: true,
	}
	flagSecret = &cli.StringFlag{
		Name:     "secret",
		Usage:    "hex encoded 32-byte secret",
		Required: true,
	}
	flagDashes = &cli.BoolFlag{
		Name:  "dashes",
		Value: true,
		Usage: "group the output key in blocks of four",
	}
)

// NewApp builds the transkey command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "transkey",
		Usage: "protect private keys with a PIN for transport",
		Flags: []cli.Flag{
			flagNetwork,
			flagAddrType,
			flagNetworksFile,
			flagVerbose,
		},
		Commands: []*cli.Command{
			encryptCmd,
			decryptCmd,
			splitCmd,
			combineCmd,
			inspectCmd,
			networksCmd,
			benchCmd,
		},
	}
}

// resolveNetwork picks the network selected on the command line.
func resolveNetwork(cCtx *cli.Context) (*network.Params, error) {
	var extra []*network.Params
	if path := cCtx.String(flagNetworksFile.Name); path != "" {
		nets, err := network.LoadFile(path)
		if err != nil {
			return nil, err
		}
		extra = nets
	}

	if cCtx.IsSet(flagAddrType.Name) {
		addrType := cCtx.Uint64(flagAddrType.Name)
		return &network.Params{
			Name:          fmt.Sprintf("addrtype-%#x", addrType),
			NetID:         network.NetIDFromAddrType(uint32(addrType)),
			AddrTypeP2PKH: uint32(addrType),
		}, nil
	}

	return network.Lookup(cCtx.String(flagNetwork.Name), extra)
}

func newCodec(cCtx *cli.Context) (*transkey.Codec, error) {
	params, err := resolveNetwork(cCtx)
	if err != nil {
		return nil, err
	}

	opts := &transkey.CodecOptions{NetID: params.NetID}
	if cCtx.Bool(flagVerbose.Name) {
		opts.Logger = slog.New(slog.NewTextHandler(cCtx.App.ErrWriter, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return transkey.NewCodec(opts), nil
}

// readPIN returns the PIN from the flag or environment, or prompts for it on
// the terminal without echo.
func readPIN(cCtx *cli.Context, prompt string) (string, error) {
	if cCtx.IsSet(flagPIN.Name) {
		return cCtx.String(flagPIN.Name), nil
	}
	return promptPIN(cCtx, prompt)
}

func promptPIN(cCtx *cli.Context, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(cCtx.App.Reader)
	}

	fmt.Fprintf(cCtx.App.ErrWriter, "%s: ", prompt)
	pin, err := term.ReadPassword(fd)
	fmt.Fprintln(cCtx.App.ErrWriter)
	if err != nil {
		return "", fmt.Errorf("failed to read pin: %w", err)
	}
	return string(pin), nil
}

// readLine reads a single line from r one byte at a time, so that later
// prompts can read the lines that follow.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				break
			}
			sb.WriteByte(b[0])
		}
		if errors.Is(err, io.EOF) && sb.Len() > 0 {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read pin: %w", err)
		}
	}
	return strings.TrimRight(sb.String(), "\r"), nil
}

func parseSecret(s string) ([]byte, error) {
	secret, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid secret: %w", err)
	}
	if len(secret) != transkey.SecretSize {
		return nil, fmt.Errorf("%w: got %d", transkey.ErrKeyLength, len(secret))
	}
	return secret, nil
}

func formatKey(cCtx *cli.Context, key string) string {
	if cCtx.Bool(flagDashes.Name) {
		return transkey.WithDashes(key)
	}
	return key
}
