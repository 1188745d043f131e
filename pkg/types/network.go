package types

import (
	"fmt"
	"strings"
)

// Network holds the version bytes that tag addresses and WIF strings
// for one network.
type Network struct {
	Name string
	// PubKeyHashVersion prefixes P2PKH address payloads.
	PubKeyHashVersion byte
	// WIFVersion prefixes WIF secret key payloads.
	WIFVersion byte
}

// Known networks.
var (
	Mainnet = &Network{Name: "mainnet", PubKeyHashVersion: 0x00, WIFVersion: 0x80}
	Testnet = &Network{Name: "testnet", PubKeyHashVersion: 0x6f, WIFVersion: 0xef}
)

// String returns the network name.
func (n *Network) String() string {
	return n.Name
}

// NetworkByName returns the network with the given name (case-insensitive).
func NetworkByName(name string) (*Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Mainnet.Name, "":
		return Mainnet, nil
	case Testnet.Name:
		return Testnet, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

// NetworkByWIFVersion returns the network whose WIF version byte is v.
func NetworkByWIFVersion(v byte) (*Network, bool) {
	switch v {
	case Mainnet.WIFVersion:
		return Mainnet, true
	case Testnet.WIFVersion:
		return Testnet, true
	}
	return nil, false
}
