package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/parser"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/logic/parser/pumpfun"
	"tx-resolver-sol/internal/logic/parser/raydiumamm"
	"tx-resolver-sol/internal/logic/parser/system"
)

const (
	mintAddr = "GnQ2fDgqBfAqmLBRGNjdLHVEbB1LFzJynikTAUbCbVNL"
	userAddr = "3Z1SuVUREVAvWhNjT74sPSKSWDDTjufWCmSpsKjpCrwU"
)

func parsedTx(instrs ...common.ParsedInstruction) *parser.ParsedTransaction {
	return &parser.ParsedTransaction{
		Signatures:   []string{"sig"},
		Instructions: instrs,
	}
}

func TestRun_PumpFunBuy(t *testing.T) {
	result := Run(parsedTx(pumpfun.Swap{
		Mint:        mintAddr,
		SolAmount:   2_000_000_000,
		TokenAmount: 1234,
		IsBuy:       true,
		User:        userAddr,
	}))

	swap, ok := result.(PumpFunSwap)
	require.True(t, ok)
	assert.Equal(t, "buy", swap.Type)
	assert.Equal(t, userAddr, swap.Who)
	assert.Equal(t, consts.WSOLMintStr, swap.FromToken)
	assert.InDelta(t, 2.0, swap.FromAmount, 1e-9)
	assert.Equal(t, mintAddr, swap.ToToken)
	assert.InDelta(t, 1234.0, swap.ToAmount, 1e-9)
}

func TestRun_PumpFunSell(t *testing.T) {
	result := Run(parsedTx(pumpfun.Swap{
		Mint:        mintAddr,
		SolAmount:   500_000_000,
		TokenAmount: 9999,
		IsBuy:       false,
		User:        userAddr,
	}))

	swap, ok := result.(PumpFunSwap)
	require.True(t, ok)
	assert.Equal(t, "sell", swap.Type)
	assert.Equal(t, mintAddr, swap.FromToken)
	assert.InDelta(t, 9999.0, swap.FromAmount, 1e-9)
	assert.Equal(t, consts.WSOLMintStr, swap.ToToken)
	assert.InDelta(t, 0.5, swap.ToAmount, 1e-9)
}

// 同类 swap 指令出现多于一条时证据有歧义，规则放弃，落到 Unknown
func TestRun_AmbiguousSwaps(t *testing.T) {
	s := pumpfun.Swap{Mint: mintAddr, IsBuy: true, User: userAddr}
	result := Run(parsedTx(s, s))
	assert.Equal(t, Unknown{}, result)
}

// 无规则命中的交易落到 Unknown，绝不报错
func TestRun_NoMatch(t *testing.T) {
	result := Run(parsedTx(system.Transfer{Lamports: 1}))
	assert.Equal(t, Unknown{}, result)

	assert.Equal(t, Unknown{}, Run(parsedTx()))
}

func TestRun_RaydiumBuy(t *testing.T) {
	result := Run(parsedTx(raydiumamm.Swap{
		Who:               userAddr,
		FromToken:         consts.WSOLMintStr,
		FromTokenAmount:   1_500_000_000,
		FromTokenDecimals: 9,
		ToToken:           mintAddr,
		ToTokenAmount:     42_000_000,
		ToTokenDecimals:   6,
		AmountIn:          1_500_000_000,
		MinimumAmountOut:  40_000_000,
	}))

	swap, ok := result.(RaydiumSwap)
	require.True(t, ok)
	assert.Equal(t, "buy", swap.Type)
	assert.InDelta(t, 1.5, swap.FromAmount, 1e-9)
	assert.InDelta(t, 42.0, swap.ToAmount, 1e-9)
	// minimum_amount_out 按买入腿精度换算
	assert.InDelta(t, 40.0, swap.MinimumAmountOut, 1e-9)
}

func TestRun_RaydiumSell(t *testing.T) {
	result := Run(parsedTx(raydiumamm.Swap{
		Who:               userAddr,
		FromToken:         mintAddr,
		FromTokenAmount:   10_000_000,
		FromTokenDecimals: 6,
		ToToken:           consts.WSOLMintStr,
		ToTokenAmount:     900_000_000,
		ToTokenDecimals:   9,
		MinimumAmountOut:  850_000_000,
	}))

	swap, ok := result.(RaydiumSwap)
	require.True(t, ok)
	assert.Equal(t, "sell", swap.Type)
	assert.InDelta(t, 10.0, swap.FromAmount, 1e-9)
	assert.InDelta(t, 0.9, swap.ToAmount, 1e-9)
	assert.InDelta(t, 0.85, swap.MinimumAmountOut, 1e-9)
}

// 原生 SOL 占位地址与 WSOL mint 等同对待
func TestRun_RaydiumNativeSOL(t *testing.T) {
	result := Run(parsedTx(raydiumamm.Swap{
		Who:               userAddr,
		FromToken:         consts.SystemProgramStr,
		FromTokenAmount:   1_000_000_000,
		FromTokenDecimals: 9,
		ToToken:           mintAddr,
		ToTokenAmount:     5_000_000,
		ToTokenDecimals:   6,
	}))

	swap, ok := result.(RaydiumSwap)
	require.True(t, ok)
	assert.Equal(t, "buy", swap.Type)
}

// 两腿都不是 SOL 时归为普通 swap
func TestRun_RaydiumTokenToToken(t *testing.T) {
	result := Run(parsedTx(raydiumamm.Swap{
		Who:               userAddr,
		FromToken:         mintAddr,
		FromTokenAmount:   1_000_000,
		FromTokenDecimals: 6,
		ToToken:           "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R",
		ToTokenAmount:     2_000_000,
		ToTokenDecimals:   6,
	}))

	swap, ok := result.(RaydiumSwap)
	require.True(t, ok)
	assert.Equal(t, "swap", swap.Type)
}
