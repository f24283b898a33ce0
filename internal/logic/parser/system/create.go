package system

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// CreateAccount 创建新账户并注资。
type CreateAccount struct {
	common.InstructionBase
	FundingAccount string `json:"funding_account,omitempty"`
	NewAccount     string `json:"new_account,omitempty"`
	Lamports       uint64 `json:"lamports"`
	Space          uint64 `json:"space"`
	Owner          string `json:"owner"`
}

// CreateAccountWithSeed 以种子派生地址创建新账户。
type CreateAccountWithSeed struct {
	common.InstructionBase
	FundingAccount string `json:"funding_account,omitempty"`
	NewAccount     string `json:"new_account,omitempty"`
	BaseAccount    string `json:"base"`
	Seed           string `json:"seed"`
	Lamports       uint64 `json:"lamports"`
	Space          uint64 `json:"space"`
	Owner          string `json:"owner"`
}

// Assign 变更账户的所有者程序。
type Assign struct {
	common.InstructionBase
	Account string `json:"account,omitempty"`
	Owner   string `json:"owner"`
}

func decodeCreateAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	lamports := r.U64("lamports")
	space := r.U64("space")
	owner := r.Pubkey("owner")
	if err := r.Err(); err != nil {
		return nil, err
	}

	funding, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	newAccount, err := ctx.OptionalAccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return CreateAccount{
		InstructionBase: base("CreateAccount"),
		FundingAccount:  funding,
		NewAccount:      newAccount,
		Lamports:        lamports,
		Space:           space,
		Owner:           owner,
	}, nil
}

func decodeCreateAccountWithSeed(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	baseKey := r.Pubkey("base")
	seed := r.String("seed")
	lamports := r.U64("lamports")
	space := r.U64("space")
	owner := r.Pubkey("owner")
	if err := r.Err(); err != nil {
		return nil, err
	}

	funding, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	newAccount, err := ctx.OptionalAccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return CreateAccountWithSeed{
		InstructionBase: base("CreateAccountWithSeed"),
		FundingAccount:  funding,
		NewAccount:      newAccount,
		BaseAccount:     baseKey,
		Seed:            seed,
		Lamports:        lamports,
		Space:           space,
		Owner:           owner,
	}, nil
}

func decodeAssign(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	owner := r.Pubkey("owner")
	if err := r.Err(); err != nil {
		return nil, err
	}

	account, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	return Assign{
		InstructionBase: base("Assign"),
		Account:         account,
		Owner:           owner,
	}, nil
}
