// derive_key.go prints the public keys, addresses and WIF strings for a
// hex-encoded private key file.
// Usage: go run scripts/derive_key.go [-testnet] [-legacy-byte-swap] <keyfile>
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/keyderive/internal/derive"
	"github.com/Klingon-tech/keyderive/pkg/types"
)

func main() {
	testnet := flag.Bool("testnet", false, "use testnet version bytes")
	legacy := flag.Bool("legacy-byte-swap", false, "swap key halves in WIF output, as the legacy tool did")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: derive_key [-testnet] [-legacy-byte-swap] <keyfile>")
		os.Exit(1)
	}
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	net := types.Mainnet
	if *testnet {
		net = types.Testnet
	}
	res, err := derive.New(net, *legacy).Derive(strings.TrimSpace(string(data)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("pubkey_compressed=%s\n", hex.EncodeToString(res.PubKeys.Compressed[:]))
	fmt.Printf("pubkey_uncompressed=%s\n", hex.EncodeToString(res.PubKeys.Uncompressed[:]))
	fmt.Printf("address_compressed=%s\n", res.CompressedAddress)
	fmt.Printf("address_uncompressed=%s\n", res.UncompressedAddress)
	fmt.Printf("wif_compressed=%s\n", res.CompressedWIF)
	fmt.Printf("wif_uncompressed=%s\n", res.UncompressedWIF)
}
