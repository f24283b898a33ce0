package resolver

import (
	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/logic/parser/pumpfun"
)

const lamportsPerSOL = 1e9

// PumpFunSwap 表示归结为 bonding curve 买入或卖出的交易。
// SOL 腿按 10^9 换算为显示单位；代币腿保持程序上报的原生单位。
type PumpFunSwap struct {
	Type       string  `json:"type"`
	Who        string  `json:"who"`
	FromToken  string  `json:"from_token"`
	FromAmount float64 `json:"from_amount"`
	ToToken    string  `json:"to_token"`
	ToAmount   float64 `json:"to_amount"`
}

func (PumpFunSwap) resolve() {}

func resolvePumpFun(instrs []common.ParsedInstruction) Resolve {
	var swaps []pumpfun.Swap
	for _, in := range instrs {
		if s, ok := in.(pumpfun.Swap); ok {
			swaps = append(swaps, s)
		}
	}
	if len(swaps) != 1 {
		return nil
	}
	s := swaps[0]

	if s.IsBuy {
		return PumpFunSwap{
			Type:       "buy",
			Who:        s.User,
			FromToken:  consts.WSOLMintStr,
			FromAmount: float64(s.SolAmount) / lamportsPerSOL,
			ToToken:    s.Mint,
			ToAmount:   float64(s.TokenAmount),
		}
	}
	return PumpFunSwap{
		Type:       "sell",
		Who:        s.User,
		FromToken:  s.Mint,
		FromAmount: float64(s.TokenAmount),
		ToToken:    consts.WSOLMintStr,
		ToAmount:   float64(s.SolAmount) / lamportsPerSOL,
	}
}
