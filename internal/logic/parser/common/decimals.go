package common

import (
	"fmt"

	"tx-resolver-sol/internal/consts"
)

// TokenDecimalsByMint 在交易的 pre/post token 余额快照中查找 mint 的精度。
// WSOL 固定为 9；其余 mint 未出现在余额快照中时无法得知精度，按错误上报。
func TokenDecimalsByMint(ctx *Context, mint string) (uint8, error) {
	if mint == consts.WSOLMintStr {
		return consts.SOLDecimals, nil
	}
	for _, tb := range ctx.Tx.Meta.PreTokenBalances {
		if tb.Mint.String() == mint {
			return tb.Decimals, nil
		}
	}
	for _, tb := range ctx.Tx.Meta.PostTokenBalances {
		if tb.Mint.String() == mint {
			return tb.Decimals, nil
		}
	}
	return 0, fmt.Errorf("field decimals: not found for mint %s", mint)
}
