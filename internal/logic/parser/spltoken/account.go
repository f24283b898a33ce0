package spltoken

import (
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// CloseAccount 关闭 token account 并把租金返还 destination。
type CloseAccount struct {
	common.InstructionBase
	Account     string `json:"account"`
	Destination string `json:"destination"`
	Authority   string `json:"authority"`
}

// FreezeAccount 冻结 token account。
type FreezeAccount struct {
	common.InstructionBase
	Account         string `json:"account"`
	Mint            string `json:"mint"`
	FreezeAuthority string `json:"freeze_authority"`
}

// ThawAccount 解冻 token account。
type ThawAccount struct {
	common.InstructionBase
	Account         string `json:"account"`
	Mint            string `json:"mint"`
	FreezeAuthority string `json:"freeze_authority"`
}

func decodeCloseAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	account, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	destination, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	authority, err := ctx.AccountAt(ix, 2)
	if err != nil {
		return nil, err
	}
	return CloseAccount{
		InstructionBase: base("CloseAccount"),
		Account:         account,
		Destination:     destination,
		Authority:       authority,
	}, nil
}

func decodeFreezeAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	account, mint, authority, err := frozenAccounts(ctx, ix)
	if err != nil {
		return nil, err
	}
	return FreezeAccount{
		InstructionBase: base("FreezeAccount"),
		Account:         account,
		Mint:            mint,
		FreezeAuthority: authority,
	}, nil
}

func decodeThawAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	account, mint, authority, err := frozenAccounts(ctx, ix)
	if err != nil {
		return nil, err
	}
	return ThawAccount{
		InstructionBase: base("ThawAccount"),
		Account:         account,
		Mint:            mint,
		FreezeAuthority: authority,
	}, nil
}

// frozenAccounts 提取 freeze/thaw 共用的三个必填账户。
func frozenAccounts(ctx *common.Context, ix *normalizer.Instruction) (account, mint, authority string, err error) {
	if account, err = ctx.AccountAt(ix, 0); err != nil {
		return
	}
	if mint, err = ctx.AccountAt(ix, 1); err != nil {
		return
	}
	authority, err = ctx.AccountAt(ix, 2)
	return
}
