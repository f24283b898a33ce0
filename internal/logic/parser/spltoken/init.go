package spltoken

import (
	"tx-resolver-sol/internal/codec"
	"tx-resolver-sol/internal/logic/normalizer"
	"tx-resolver-sol/internal/logic/parser/common"
)

// InitializeMint 初始化一个新的 mint。
// freeze authority 为 option<pubkey>，缺省时为空串。
type InitializeMint struct {
	common.InstructionBase
	Decimals        uint8  `json:"decimals"`
	MintAuthority   string `json:"mint_authority"`
	FreezeAuthority string `json:"freeze_authority,omitempty"`
}

// InitializeAccount 初始化一个 token account。
type InitializeAccount struct {
	common.InstructionBase
	Account    string `json:"account"`
	Mint       string `json:"mint"`
	Owner      string `json:"owner"`
	RentSysvar string `json:"rent_sysvar"`
}

// InitializeMultisig 初始化一个多签账户。
type InitializeMultisig struct {
	common.InstructionBase
	M       uint8    `json:"m"`
	Signers []string `json:"signers"`
}

func decodeInitializeMint(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	decimals := r.U8("decimals")
	mintAuthority := r.Pubkey("mint_authority")
	freezeAuthority := r.OptionPubkey("freeze_authority")
	if err := r.Err(); err != nil {
		return nil, err
	}
	return InitializeMint{
		InstructionBase: base("InitializeMint"),
		Decimals:        decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
	}, nil
}

func decodeInitializeAccount(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	account, err := ctx.AccountAt(ix, 0)
	if err != nil {
		return nil, err
	}
	mint, err := ctx.AccountAt(ix, 1)
	if err != nil {
		return nil, err
	}
	owner, err := ctx.AccountAt(ix, 2)
	if err != nil {
		return nil, err
	}
	rent, err := ctx.AccountAt(ix, 3)
	if err != nil {
		return nil, err
	}
	return InitializeAccount{
		InstructionBase: base("InitializeAccount"),
		Account:         account,
		Mint:            mint,
		Owner:           owner,
		RentSysvar:      rent,
	}, nil
}

func decodeInitializeMultisig(ctx *common.Context, ix *normalizer.Instruction, index int, data []byte) (common.ParsedInstruction, error) {
	r := codec.NewReader(data)
	r.Skip(1, "discriminator")
	m := r.U8("m")
	if err := r.Err(); err != nil {
		return nil, err
	}

	signers := make([]string, 0, len(ix.Accounts))
	for _, idx := range ix.Accounts {
		addr, err := ctx.Account(idx)
		if err != nil {
			return nil, err
		}
		signers = append(signers, addr)
	}
	return InitializeMultisig{
		InstructionBase: base("InitializeMultisig"),
		M:               m,
		Signers:         signers,
	}, nil
}
