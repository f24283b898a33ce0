package resolver

import (
	"math"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/logic/parser/raydiumamm"
)

// RaydiumSwap 表示归结为池内兑换的交易。
// 两腿金额各按自己的精度换算为显示单位，minimum_amount_out 按买入腿精度换算。
type RaydiumSwap struct {
	Type             string  `json:"type"`
	Who              string  `json:"who"`
	FromToken        string  `json:"from_token"`
	FromAmount       float64 `json:"from_amount"`
	ToToken          string  `json:"to_token"`
	ToAmount         float64 `json:"to_amount"`
	MinimumAmountOut float64 `json:"minimum_amount_out"`
}

func (RaydiumSwap) resolve() {}

func resolveRaydium(instrs []common.ParsedInstruction) Resolve {
	var swaps []raydiumamm.Swap
	for _, in := range instrs {
		if s, ok := in.(raydiumamm.Swap); ok {
			swaps = append(swaps, s)
		}
	}
	if len(swaps) != 1 {
		return nil
	}
	s := swaps[0]

	// 以 SOL 出现在哪一腿判定方向；两腿都不是 SOL 则记为普通 swap
	swapType := "swap"
	switch {
	case isSOL(s.FromToken):
		swapType = "buy"
	case isSOL(s.ToToken):
		swapType = "sell"
	}

	toDivisor := math.Pow10(int(s.ToTokenDecimals))
	return RaydiumSwap{
		Type:             swapType,
		Who:              s.Who,
		FromToken:        s.FromToken,
		FromAmount:       float64(s.FromTokenAmount) / math.Pow10(int(s.FromTokenDecimals)),
		ToToken:          s.ToToken,
		ToAmount:         float64(s.ToTokenAmount) / toDivisor,
		MinimumAmountOut: float64(s.MinimumAmountOut) / toDivisor,
	}
}

// isSOL 同时识别 WSOL mint 与原生 SOL 的占位地址。
func isSOL(mint string) bool {
	return mint == consts.WSOLMintStr || mint == consts.SystemProgramStr
}
