package system

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// AdvanceNonceAccount 推进 nonce 账户的存储值。
type AdvanceNonceAccount struct {
	common.InstructionBase
	NonceAccount   string `json:"nonce_account,omitempty"`
	NonceAuthority string `json:"nonce_authority,omitempty"`
}

// WithdrawNonceAccount 从 nonce 账户提取 lamports。
type WithdrawNonceAccount struct {
	common.InstructionBase
	NonceAccount       string `json:"nonce_account,omitempty"`
	DestinationAccount string `json:"destination_account,omitempty"`
	NonceAuthority     string `json:"nonce_authority,omitempty"`
	Lamports           uint64 `json:"lamports"`
}

// AuthorizeNonceAccount 变更 nonce 账户的授权者。
type AuthorizeNonceAccount struct {
	common.InstructionBase
	NonceAccount   string `json:"nonce_account,omitempty"`
	NonceAuthority string `json:"nonce_authority,omitempty"`
	NewAuthority   string `json:"new_authority"`
}

func decodeAdvanceNonceAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	nonceAccount, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	authority, err := ctx.OptionalAccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return AdvanceNonceAccount{
		InstructionBase: base("AdvanceNonceAccount"),
		NonceAccount:    nonceAccount,
		NonceAuthority:  authority,
	}, nil
}

func decodeWithdrawNonceAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	lamports := r.U64("lamports")
	if err := r.Err(); err != nil {
		return nil, err
	}

	nonceAccount, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	destination, err := ctx.OptionalAccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	authority, err := ctx.OptionalAccountAt(ix, 2)
	if err != nil {
		return nil, err
	}
	return WithdrawNonceAccount{
		InstructionBase:    base("WithdrawNonceAccount"),
		NonceAccount:       nonceAccount,
		DestinationAccount: destination,
		NonceAuthority:     authority,
		Lamports:           lamports,
	}, nil
}

func decodeAuthorizeNonceAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(4, "discriminator")
	newAuthority := r.Pubkey("new_authority")
	if err := r.Err(); err != nil {
		return nil, err
	}

	nonceAccount, err := ctx.OptionalAccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	authority, err := ctx.OptionalAccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return AuthorizeNonceAccount{
		InstructionBase: base("AuthorizeNonceAccount"),
		NonceAccount:    nonceAccount,
		NonceAuthority:  authority,
		NewAuthority:    newAuthority,
	}, nil
}
