package system

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

func route(t *testing.T, keys []types.Pubkey, accounts []int, data []byte) (common.ParsedInstruction, error) {
	t.Helper()
	m := map[types.Pubkey]*common.ProgramDecoder{}
	RegisterDecoders(m)
	dec := m[consts.SystemProgram]
	require.NotNil(t, dec)

	programIndex := len(keys)
	tx := &normalizer.Transaction{
		Signatures: []string{"sig"},
		Message: normalizer.Message{
			AccountKeys: append(append([]types.Pubkey{}, keys...), consts.SystemProgram),
			Instructions: []normalizer.Instruction{
				{ProgramIDIndex: programIndex, Data: base58.Encode(data), Accounts: accounts},
			},
		},
	}
	ctx := common.NewContext(tx)
	return dec.Route(ctx, &tx.Message.Instructions[0], 0)
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func seedString(s string) []byte {
	return append(u32le(uint32(len(s))), s...)
}

func TestDecodeCreateAccount(t *testing.T) {
	funding, fresh, owner := testKey(t, 1), testKey(t, 2), testKey(t, 3)

	var data []byte
	data = append(data, u32le(0)...)
	data = append(data, u64le(1_000_000)...)
	data = append(data, u64le(165)...)
	data = append(data, owner[:]...)

	parsed, err := route(t, []types.Pubkey{funding, fresh}, []int{0, 1}, data)
	require.NoError(t, err)

	create, ok := parsed.(CreateAccount)
	require.True(t, ok)
	assert.Equal(t, "CreateAccount", create.InstructionName)
	assert.Equal(t, funding.String(), create.FundingAccount)
	assert.Equal(t, fresh.String(), create.NewAccount)
	assert.Equal(t, uint64(1_000_000), create.Lamports)
	assert.Equal(t, uint64(165), create.Space)
	assert.Equal(t, owner.String(), create.Owner)
}

func TestDecodeCreateAccountWithSeed(t *testing.T) {
	funding, fresh := testKey(t, 1), testKey(t, 2)
	baseKey, owner := testKey(t, 4), testKey(t, 3)

	var data []byte
	data = append(data, u32le(3)...)
	data = append(data, baseKey[:]...)
	data = append(data, seedString("vault-7")...)
	data = append(data, u64le(2_000_000)...)
	data = append(data, u64le(128)...)
	data = append(data, owner[:]...)

	parsed, err := route(t, []types.Pubkey{funding, fresh}, []int{0, 1}, data)
	require.NoError(t, err)

	create, ok := parsed.(CreateAccountWithSeed)
	require.True(t, ok)
	assert.Equal(t, "CreateAccountWithSeed", create.InstructionName)
	assert.Equal(t, baseKey.String(), create.BaseAccount)
	assert.Equal(t, "vault-7", create.Seed)
	assert.Equal(t, uint64(2_000_000), create.Lamports)
	assert.Equal(t, uint64(128), create.Space)
	assert.Equal(t, owner.String(), create.Owner)
}

func TestDecodeAllocateWithSeed(t *testing.T) {
	account := testKey(t, 1)
	baseKey, owner := testKey(t, 4), testKey(t, 3)

	var data []byte
	data = append(data, u32le(9)...)
	data = append(data, baseKey[:]...)
	data = append(data, seedString("stake:0")...)
	data = append(data, u64le(256)...)
	data = append(data, owner[:]...)

	parsed, err := route(t, []types.Pubkey{account}, []int{0}, data)
	require.NoError(t, err)

	alloc, ok := parsed.(AllocateWithSeed)
	require.True(t, ok)
	assert.Equal(t, "AllocateWithSeed", alloc.InstructionName)
	assert.Equal(t, account.String(), alloc.Account)
	assert.Equal(t, baseKey.String(), alloc.BaseAccount)
	assert.Equal(t, "stake:0", alloc.Seed)
	assert.Equal(t, uint64(256), alloc.Space)
	assert.Equal(t, owner.String(), alloc.Owner)
}
