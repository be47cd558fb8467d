// Package network holds the static parameters of the networks a transport
// key can be bound to.
package network

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownNetwork = errors.New("unknown network")

// Params describes a network. Only NetID takes part in transport key
// encoding; the remaining fields are carried for display.
type Params struct {
	Name          string `yaml:"name"`
	Testnet       bool   `yaml:"testnet"`
	NetID         uint16 `yaml:"netid"`
	AddrTypeP2PKH uint32 `yaml:"addrtype_p2pkh"`
	AddrTypeP2SH  uint32 `yaml:"addrtype_p2sh"`
	WIFPrefix     uint32 `yaml:"wif_prefix"`
}

var (
	Mainnet = &Params{
		Name:          "mainnet",
		NetID:         0x128,
		AddrTypeP2PKH: 0xC80528,
		AddrTypeP2SH:  0xC80529,
		WIFPrefix:     0xC804AA,
	}
	Testnet = &Params{
		Name:          "testnet",
		Testnet:       true,
		NetID:         0x124,
		AddrTypeP2PKH: 0xC80524,
		AddrTypeP2SH:  0xC80525,
		WIFPrefix:     0xC805DE,
	}
)

// NetIDFromAddrType derives a network id from a P2PKH address type by keeping
// its bottom 9 bits.
func NetIDFromAddrType(addrType uint32) uint16 {
	return uint16(addrType & 0x1FF)
}

// Builtin returns the networks compiled into the package.
func Builtin() []*Params {
	return []*Params{Mainnet, Testnet}
}

// Lookup finds a network by name, searching extra before the built-in
// networks. Names are matched case-insensitively.
func Lookup(name string, extra []*Params) (*Params, error) {
	candidates := append(append([]*Params{}, extra...), Builtin()...)
	for _, p := range candidates {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

// UnmarshalYAML derives NetID from AddrTypeP2PKH when the netid key is
// absent. An explicit netid of zero is kept.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	type plain Params
	if err := value.Decode((*plain)(p)); err != nil {
		return err
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "netid" {
			return nil
		}
	}
	if p.AddrTypeP2PKH == 0 {
		return fmt.Errorf("network %q needs netid or addrtype_p2pkh", p.Name)
	}
	p.NetID = NetIDFromAddrType(p.AddrTypeP2PKH)
	return nil
}

type paramsFile struct {
	Networks []*Params `yaml:"networks"`
}

// LoadFile reads additional network definitions from a YAML file of the form
//
//	networks:
//	  - name: regtest
//	    addrtype_p2pkh: 0xC80520
//
// A network without an explicit netid gets one derived from addrtype_p2pkh.
func LoadFile(path string) ([]*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}
	return Parse(data)
}

// Parse decodes network definitions in the format accepted by LoadFile.
func Parse(data []byte) ([]*Params, error) {
	var f paramsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse networks: %w", err)
	}

	for i, p := range f.Networks {
		if p == nil || p.Name == "" {
			return nil, fmt.Errorf("network %d has no name", i)
		}
		if p.NetID > 0x3FF {
			return nil, fmt.Errorf("network %q: netid %#x does not fit in 10 bits", p.Name, p.NetID)
		}
	}
	return f.Networks, nil
}
