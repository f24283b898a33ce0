package spltoken

import (
	"encoding/binary"
	"testing"

	"github.com/mr-tron/base58"
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

// route 以给定账户表与数据构造单指令交易并路由解码。
// 程序账户固定追加在账户表末位。
func route(t *testing.T, keys []types.Pubkey, accounts []int, data []byte) (common.ParsedInstruction, error) {
	t.Helper()
	m := map[types.Pubkey]*common.ProgramDecoder{}
	RegisterDecoders(m)
	dec := m[consts.TokenProgram]
	require.NotNil(t, dec)

	programIndex := len(keys)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig"},
		Message: normalizer.Message{
			AccountKeys: append(append([]types.Pubkey{}, keys...), consts.TokenProgram),
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: programIndex, Data: base58.Encode(data), Accounts: accounts},
			},
		},
	}
	ctx := common.NewContext(tx)
	return dec.Route(ctx, &tx.Message.Instructions[0], 0)
}

func amountData(disc byte, amount uint64, tail ...byte) []byte {
	data := make([]byte, 9, 9+len(tail))
	data[0] = disc
	binary.LittleEndian.PutUint64(data[1:9], amount)
	return append(data, tail...)
}

func TestDecodeTransfer(t *testing.T) {
	src, dst, owner := testKey(t, 1), testKey(t, 2), testKey(t, 3)

	parsed, err := route(t, []types.Pubkey{src, dst, owner}, []int{0, 1, 2}, amountData(3, 500))
	require.NoError(t, err)

	transfer, ok := parsed.(Transfer)
	require.True(t, ok)
	assert.Equal(t, "Transfer", transfer.InstructionName)
	assert.Equal(t, src.String(), transfer.From)
	assert.Equal(t, dst.String(), transfer.To)
	assert.Equal(t, uint64(500), transfer.Amount)
}

func TestDecodeTransferChecked(t *testing.T) {
	src, mint, dst, owner := testKey(t, 1), testKey(t, 2), testKey(t, 3), testKey(t, 4)

	parsed, err := route(t, []types.Pubkey{src, mint, dst, owner}, []int{0, 1, 2, 3}, amountData(12, 1_000_000, 6))
	require.NoError(t, err)

	transfer, ok := parsed.(TransferChecked)
	require.True(t, ok)
	assert.Equal(t, src.String(), transfer.From)
	assert.Equal(t, mint.String(), transfer.Mint)
	assert.Equal(t, dst.String(), transfer.To)
	assert.Equal(t, uint64(1_000_000), transfer.Amount)
	assert.Equal(t, uint8(6), transfer.Decimals)
}

func TestDecodeSetAuthority(t *testing.T) {
	account, owner := testKey(t, 1), testKey(t, 2)
	newAuthority := testKey(t, 5)

	data := []byte{6, 2, 1}
	data = append(data, newAuthority[:]...)
	parsed, err := route(t, []types.Pubkey{account, owner}, []int{0, 1}, data)
	require.NoError(t, err)

	sa, ok := parsed.(SetAuthority)
	require.True(t, ok)
	assert.Equal(t, account.String(), sa.Account)
	assert.Equal(t, uint8(2), sa.AuthorityType)
	assert.Equal(t, newAuthority.String(), sa.NewAuthority)
}

// option 置空表示永久放弃该权限
func TestDecodeSetAuthority_NoneAuthority(t *testing.T) {
	account, owner := testKey(t, 1), testKey(t, 2)

	parsed, err := route(t, []types.Pubkey{account, owner}, []int{0, 1}, []byte{6, 0, 0})
	require.NoError(t, err)

	sa, ok := parsed.(SetAuthority)
	require.True(t, ok)
	assert.Equal(t, "", sa.NewAuthority)
}

// 未识别判别符非致命，降级为 Unknown 并保留原始值
func TestDecode_UnknownDiscriminator(t *testing.T) {
	parsed, err := route(t, []types.Pubkey{testKey(t, 1)}, []int{0}, []byte{200})
	require.NoError(t, err)

	unknown, ok := parsed.(common.Unknown)
	require.True(t, ok)
	assert.Equal(t, uint64(200), unknown.Discriminator)
	assert.Equal(t, consts.TokenProgramName, unknown.ProgramName)
}

// 必需账户缺位是致命错误
func TestDecodeTransfer_MissingAccounts(t *testing.T) {
	_, err := route(t, []types.Pubkey{testKey(t, 1)}, []int{0}, amountData(3, 1))
	require.Error(t, err)

	var decodeErr *common.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}
