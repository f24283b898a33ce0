package system

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Allocate 为账户分配存储空间。
type Allocate struct {
	common.InstructionBase
	Account string `json:"account,omitempty"`
	Space   uint64 `json:"space"`
}

// AllocateWithSeed 为种子派生地址分配存储空间。
type AllocateWithSeed struct {
	common.InstructionBase
	Account     string `json:"account,omitempty"`
	BaseAccount string `json:"base"`
	Seed        string `json:"seed"`
	Space       uint64 `json:"space"`
	Owner       string `json:"owner"`
}

func decodeAllocate(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	space := r.U64("space")
	if err := r.Err(); err != nil {
		return nil, err
	}

	account, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	return Allocate{
		InstructionBase: base("Allocate"),
		Account:         account,
		Space:           space,
	}, nil
}

func decodeAllocateWithSeed(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	baseKey := r.Pubkey("base")
	seed := r.String("seed")
	space := r.U64("space")
	owner := r.Pubkey("owner")
	if err := r.Err(); err != nil {
		return nil, err
	}

	account, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	return AllocateWithSeed{
		InstructionBase: base("AllocateWithSeed"),
		Account:         account,
		BaseAccount:     baseKey,
		Seed:            seed,
		Space:           space,
		Owner:           owner,
	}, nil
}
