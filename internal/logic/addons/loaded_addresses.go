package addons

import (
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/types"
)

// LoadedAddresses 列出通过地址查找表装载的账户。
type LoadedAddresses struct {
	Writable []string `json:"writable"`
	Readonly []string `json:"readonly"`
}

func enrichLoadedAddresses(tx *normalizer.Transaction) *LoadedAddresses {
	if len(tx.LoadedAddresses.Writable) == 0 && len(tx.LoadedAddresses.Readonly) == 0 {
		return nil
	}
	return &LoadedAddresses{
		Writable: pubkeyStrings(tx.LoadedAddresses.Writable),
		Readonly: pubkeyStrings(tx.LoadedAddresses.Readonly),
	}
}

func pubkeyStrings(keys []types.Pubkey) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.String())
	}
	return out
}
