package spltoken

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// Transfer 为不带 mint 校验的旧式转账，金额为最小单位。
type Transfer struct {
	common.InstructionBase
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// TransferChecked 携带 mint 与 decimals 的转账。
type TransferChecked struct {
	common.InstructionBase
	From     string `json:"from"`
	Mint     string `json:"mint"`
	To       string `json:"to"`
	Amount   uint64 `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

// Approve 授权 delegate 动用 source 的额度。
type Approve struct {
	common.InstructionBase
	Source   string `json:"source"`
	Delegate string `json:"delegate"`
	Amount   uint64 `json:"amount"`
}

// ApproveChecked 带 decimals 校验的授权。
type ApproveChecked struct {
	common.InstructionBase
	Source   string `json:"source"`
	Delegate string `json:"delegate"`
	Amount   uint64 `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

// Revoke 撤销 source 上的全部授权。
type Revoke struct {
	common.InstructionBase
	Source string `json:"source"`
}

// SetAuthority 变更账户或 mint 的某类权限持有者。
// new_authority 为 option<pubkey>，置空表示永久放弃该权限。
type SetAuthority struct {
	common.InstructionBase
	Account       string `json:"account"`
	AuthorityType uint8  `json:"authority_type"`
	NewAuthority  string `json:"new_authority,omitempty"`
}

func decodeTransfer(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	if err := r.Err(); err != nil {
		return nil, err
	}

	from, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	to, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return Transfer{
		InstructionBase: base("Transfer"),
		From:            from,
		To:              to,
		Amount:          amount,
	}, nil
}

func decodeTransferChecked(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	decimals := r.U8("decimals")
	if err := r.Err(); err != nil {
		return nil, err
	}

	from, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	mint, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	to, err := ctx.AccountAt(ix, 2)
	if err != nil {
		return nil, err
	}
	return TransferChecked{
		InstructionBase: base("TransferChecked"),
		From:            from,
		Mint:            mint,
		To:              to,
		Amount:          amount,
		Decimals:        decimals,
	}, nil
}

func decodeApprove(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	if err := r.Err(); err != nil {
		return nil, err
	}

	source, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	delegate, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return Approve{
		InstructionBase: base("Approve"),
		Source:          source,
		Delegate:        delegate,
		Amount:          amount,
	}, nil
}

func decodeApproveChecked(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	amount := r.U64("amount")
	decimals := r.U8("decimals")
	if err := r.Err(); err != nil {
		return nil, err
	}

	source, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	delegate, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	return ApproveChecked{
		InstructionBase: base("ApproveChecked"),
		Source:          source,
		Delegate:        delegate,
		Amount:          amount,
		Decimals:        decimals,
	}, nil
}

func decodeRevoke(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	source, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	return Revoke{
		InstructionBase: base("Revoke"),
		Source:          source,
	}, nil
}

func decodeSetAuthority(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	authorityType := r.U8("authority_type")
	newAuthority := r.OptionPubkey("new_authority")
	if err := r.Err(); err != nil {
		return nil, err
	}

	account, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	return SetAuthority{
		InstructionBase: base("SetAuthority"),
		Account:         account,
		AuthorityType:   authorityType,
		NewAuthority:    newAuthority,
	}, nil
}
