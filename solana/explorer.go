package solana

import (
	"fmt"
	"net/url"
)

const (
	ClusterDevnet      = "devnet"
	ClusterTestnet     = "testnet"
	ClusterMainnetBeta = "mainnet-beta"

	explorerBaseURL = "https://explorer.solana.com"
)

// ExplorerTxURL links a transaction signature on the Solana explorer
func ExplorerTxURL(signature, cluster string) string {
	return explorerURL("tx", signature, cluster)
}

// ExplorerAddressURL links an account on the Solana explorer
func ExplorerAddressURL(address, cluster string) string {
	return explorerURL("address", address, cluster)
}

func explorerURL(kind, id, cluster string) string {
	u := fmt.Sprintf("%s/%s/%s", explorerBaseURL, kind, url.PathEscape(id))
	if cluster != "" && cluster != ClusterMainnetBeta {
		u += "?cluster=" + url.QueryEscape(cluster)
	}
	return u
}
