package parser

import (
	"encoding/binary"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tx-resolver-sol/internal/consts"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
	"tx-resolver-sol/internal/logic/parser/spltoken"
	"tx-resolver-sol/internal/logic/parser/system"
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

// systemTransferData 构造 System Transfer 指令数据：u32 判别符 2 + u64 lamports
func systemTransferData(lamports uint64) string {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:4], 2)
	binary.LittleEndian.PutUint64(data[4:12], lamports)
	return base58.Encode(data)
}

// tokenTransferData 构造 Token Transfer 指令数据：单字节判别符 3 + u64 amount
func tokenTransferData(amount uint64) string {
	data := make([]byte, 9)
	data[0] = 3
	binary.LittleEndian.PutUint64(data[1:9], amount)
	return base58.Encode(data)
}

func TestParse_SystemTransfer(t *testing.T) {
	Init()

	from, to := testKey(t, 1), testKey(t, 2)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig-1"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{from, to, consts.SystemProgram},
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: 2, Data: systemTransferData(1_000_000), Accounts: []int{0, 1}},
			},
		},
	}

	parsed, err := Parse(tx)
	require.NoError(t, err)
	require.Len(t, parsed.Instructions, 1)
	assert.Equal(t, []string{"sig-1"}, parsed.Signatures)

	transfer, ok := parsed.Instructions[0].(system.Transfer)
	require.True(t, ok)
	assert.Equal(t, consts.SystemProgramStr, transfer.ProgramID)
	assert.Equal(t, "Transfer", transfer.InstructionName)
	assert.Equal(t, from.String(), transfer.FromAccount)
	assert.Equal(t, to.String(), transfer.ToAccount)
	assert.Equal(t, uint64(1_000_000), transfer.Lamports)
}

func TestParse_TokenTransfer(t *testing.T) {
	Init()

	src, dst, owner := testKey(t, 3), testKey(t, 4), testKey(t, 5)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig-2"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{src, dst, owner, consts.TokenProgram},
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: 3, Data: tokenTransferData(500), Accounts: []int{0, 1, 2}},
			},
		},
	}

	parsed, err := Parse(tx)
	require.NoError(t, err)
	require.Len(t, parsed.Instructions, 1)

	transfer, ok := parsed.Instructions[0].(spltoken.Transfer)
	require.True(t, ok)
	assert.Equal(t, consts.TokenProgramName, transfer.ProgramName)
	assert.Equal(t, src.String(), transfer.From)
	assert.Equal(t, dst.String(), transfer.To)
	assert.Equal(t, uint64(500), transfer.Amount)
}

// 未注册程序降级为 Unknown，不影响其余指令
func TestParse_UnknownProgram(t *testing.T) {
	Init()

	from, to := testKey(t, 1), testKey(t, 2)
	stranger := testKey(t, 9)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig-3"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{from, to, stranger, consts.SystemProgram},
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: 2, Data: base58.Encode([]byte{1, 2, 3, 4}), Accounts: []int{0}},
				{ProgramIDIndex: 3, Data: systemTransferData(42), Accounts: []int{0, 1}},
			},
		},
	}

	parsed, err := Parse(tx)
	require.NoError(t, err)
	require.Len(t, parsed.Instructions, 2)

	unknown, ok := parsed.Instructions[0].(common.Unknown)
	require.True(t, ok)
	assert.Equal(t, stranger.String(), unknown.ProgramID)
	assert.Equal(t, consts.UnknownProgramName, unknown.ProgramName)
	assert.Equal(t, 0, unknown.InstructionIndex)

	_, ok = parsed.Instructions[1].(system.Transfer)
	assert.True(t, ok)
}

// 已知程序的未识别判别符同样非致命，并携带原始判别符值
func TestParse_UnknownDiscriminator(t *testing.T) {
	Init()

	payer := testKey(t, 1)
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, 250)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig-4"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{payer, consts.SystemProgram},
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: 1, Data: base58.Encode(data), Accounts: []int{0}},
			},
		},
	}

	parsed, err := Parse(tx)
	require.NoError(t, err)
	require.Len(t, parsed.Instructions, 1)

	unknown, ok := parsed.Instructions[0].(common.Unknown)
	require.True(t, ok)
	assert.Equal(t, consts.SystemProgramName, unknown.ProgramName)
	assert.Equal(t, uint64(250), unknown.Discriminator)
}

// 空指令数据等价于零字节载荷：提取不到判别符，非致命降级为 Unknown
func TestParse_EmptyData(t *testing.T) {
	Init()

	payer := testKey(t, 1)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig-e"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{payer, consts.SystemProgram},
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: 1, Data: "", Accounts: []int{0}},
			},
		},
	}

	parsed, err := Parse(tx)
	require.NoError(t, err)
	require.Len(t, parsed.Instructions, 1)

	unknown, ok := parsed.Instructions[0].(common.Unknown)
	require.True(t, ok)
	assert.Equal(t, consts.SystemProgramName, unknown.ProgramName)
	assert.Equal(t, uint64(0), unknown.Discriminator)
}

// 已知程序内载荷截断是致命错误，错误携带程序与指令序号上下文
func TestParse_MalformedPayload(t *testing.T) {
	Init()

	src, dst, owner := testKey(t, 3), testKey(t, 4), testKey(t, 5)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig-5"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{src, dst, owner, consts.TokenProgram},
			Instructions: []normalizer.Instruction{
				// 判别符 3 合法但 amount 被截断
				{ProgramIDIndex: 3, Data: base58.Encode([]byte{3, 1, 2}), Accounts: []int{0, 1, 2}},
			},
		},
	}

	_, err := Parse(tx)
	require.Error(t, err)

	var decodeErr *common.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, consts.TokenProgramName, decodeErr.ProgramName)
	assert.Equal(t, 0, decodeErr.InstructionIndex)
}

// 解码是纯函数：同一输入重复解码结果一致
func TestParse_Idempotent(t *testing.T) {
	Init()

	from, to := testKey(t, 1), testKey(t, 2)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig-6"},
		Message: normalizer.Message{
			AccountKeys: []types.Pubkey{from, to, consts.SystemProgram},
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: 2, Data: systemTransferData(777), Accounts: []int{0, 1}},
			},
		},
	}

	first, err := Parse(tx)
	require.NoError(t, err)
	second, err := Parse(tx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
