package raydiumamm

import (
	"encoding/binary"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/types"
)

func testKey(t *testing.T, b byte) types.Pubkey {
	t.Helper()
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = b
	}
	p, err := types.TryPubkeyFromBytes(raw)
	require.NoError(t, err)
	return p
}

// swapData 构造外层指令数据：8 字节判别符 + amount_in + minimum_amount_out
func swapData(amountIn, minimumAmountOut uint64) string {
	data := make([]byte, 24)
	binary.BigEndian.PutUint64(data[0:8], DiscSwap)
	binary.LittleEndian.PutUint64(data[8:16], amountIn)
	binary.LittleEndian.PutUint64(data[16:24], minimumAmountOut)
	return base58.Encode(data)
}

func eventData(t *testing.T, ev common.SwapEvent) string {
	t.Helper()
	body, err := borsh.Serialize(ev)
	require.NoError(t, err)
	return base58.Encode(append(make([]byte, 16), body...))
}

// 账户 0=用户 1=程序；mint 精度放进 token 余额快照
func swapTx(t *testing.T, outerData string, mint types.Pubkey, decimals uint8, events ...common.SwapEvent) *normalizer.Transaction {
	t.Helper()
	tx := &normalizer.Transaction{
		Signatures: []string{"sig"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{testKey(t, 1), consts.RaydiumAMMProgram},
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: 1, Data: outerData, Accounts: []int{0}},
			},
		},
		Meta: normalizer.Meta{
			PreTokenBalances: []normalizer.TokenBalance{
				{AccountIndex: 0, Mint: mint, Decimals: decimals},
			},
		},
	}
	var inners []normalizer.Instruction
	for _, ev := range events {
		inners = append(inners, normalizer.Instruction{
			ProgramIDIndex: 1,
			Data:           eventData(t, ev),
			Accounts:       []int{},
		})
	}
	if len(inners) > 0 {
		tx.Meta.InnerInstructions = []normalizer.InnerInstructionGroup{
			{Index: 0, Instructions: inners},
		}
	}
	return tx
}

func routeFirst(t *testing.T, tx *normalizer.Transaction) (common.ParsedInstruction, error) {
	t.Helper()
	m := map[types.Pubkey]*common.ProgramDecoder{}
	RegisterDecoders(m)
	dec := m[consts.RaydiumAMMProgram]
	require.NotNil(t, dec)
	ctx := common.NewContext(tx)
	return dec.Route(ctx, &tx.Message.Instructions[0], 0)
}

// is_buy=true：SOL 腿在卖出侧，代币腿在买入侧
func TestDecodeSwap_BuyDirection(t *testing.T) {
	user, mint := testKey(t, 7), testKey(t, 8)
	ev := common.SwapEvent{
		Mint:        mint,
		SolAmount:   1_500_000_000,
		TokenAmount: 42_000_000,
		IsBuy:       true,
		User:        user,
	}

	parsed, err := routeFirst(t, swapTx(t, swapData(1_500_000_000, 40_000_000), mint, 6, ev))
	require.NoError(t, err)

	swap, ok := parsed.(Swap)
	require.True(t, ok)
	assert.Equal(t, "Swap", swap.InstructionName)
	assert.Equal(t, user.String(), swap.Who)
	assert.Equal(t, consts.WSOLMintStr, swap.FromToken)
	assert.Equal(t, uint64(1_500_000_000), swap.FromTokenAmount)
	assert.Equal(t, uint8(consts.SOLDecimals), swap.FromTokenDecimals)
	assert.Equal(t, mint.String(), swap.ToToken)
	assert.Equal(t, uint64(42_000_000), swap.ToTokenAmount)
	assert.Equal(t, uint8(6), swap.ToTokenDecimals)
	assert.Equal(t, uint64(1_500_000_000), swap.AmountIn)
	assert.Equal(t, uint64(40_000_000), swap.MinimumAmountOut)
}

func TestDecodeSwap_SellDirection(t *testing.T) {
	mint := testKey(t, 8)
	ev := common.SwapEvent{
		Mint:        mint,
		SolAmount:   900_000_000,
		TokenAmount: 10_000_000,
		IsBuy:       false,
		User:        testKey(t, 7),
	}

	parsed, err := routeFirst(t, swapTx(t, swapData(10_000_000, 850_000_000), mint, 6, ev))
	require.NoError(t, err)

	swap, ok := parsed.(Swap)
	require.True(t, ok)
	assert.Equal(t, mint.String(), swap.FromToken)
	assert.Equal(t, uint64(10_000_000), swap.FromTokenAmount)
	assert.Equal(t, uint8(6), swap.FromTokenDecimals)
	assert.Equal(t, consts.WSOLMintStr, swap.ToToken)
	assert.Equal(t, uint64(900_000_000), swap.ToTokenAmount)
	assert.Equal(t, uint8(consts.SOLDecimals), swap.ToTokenDecimals)
}

func TestDecodeSwap_MissingEvent(t *testing.T) {
	_, err := routeFirst(t, swapTx(t, swapData(1, 1), testKey(t, 8), 6))
	require.Error(t, err)

	var decodeErr *common.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, consts.RaydiumAMMProgramName, decodeErr.ProgramName)
}

// mint 未出现在余额快照中时精度无法得知，解码失败
func TestDecodeSwap_UnknownDecimals(t *testing.T) {
	mint := testKey(t, 8)
	ev := common.SwapEvent{
		Mint:        mint,
		SolAmount:   1,
		TokenAmount: 1,
		IsBuy:       true,
		User:        testKey(t, 7),
	}

	// 快照里放的是另一个 mint
	_, err := routeFirst(t, swapTx(t, swapData(1, 1), testKey(t, 9), 6, ev))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decimals")
}

// 截断的外层载荷在关联事件之前就报错
func TestDecodeSwap_TruncatedPayload(t *testing.T) {
	data := make([]byte, 12)
	binary.BigEndian.PutUint64(data, DiscSwap)
	tx := swapTx(t, base58.Encode(data), testKey(t, 8), 6)

	_, err := routeFirst(t, tx)
	require.Error(t, err)

	var decodeErr *common.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 0, decodeErr.InstructionIndex)
}
