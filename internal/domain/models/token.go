package models

// TokenType discriminates governance token shapes
type TokenType string

const (
	TokenTypeERC20  TokenType = "erc20"
	TokenTypeERC721 TokenType = "erc721"
)

// TokenDetails is implemented by *Erc20Token and *Erc721Token only
type TokenDetails interface {
	TokenType() TokenType
	TokenAddress() string
	isTokenDetails()
}

// TokenBase holds the fields both token shapes share
type TokenBase struct {
	Address string `json:"address" yaml:"address"`
	Name    string `json:"name" yaml:"name"`
	Symbol  string `json:"symbol" yaml:"symbol"`
}

// Erc20Token describes a fungible governance token
type Erc20Token struct {
	TokenBase `yaml:",inline"`
	Decimals  uint8     `json:"decimals" yaml:"decimals"`
	Type      TokenType `json:"type" yaml:"type"`
}

// Erc721Token describes a non-fungible governance token
type Erc721Token struct {
	TokenBase `yaml:",inline"`
	Type      TokenType `json:"type" yaml:"type"`
}

func (t *Erc20Token) TokenType() TokenType  { return TokenTypeERC20 }
func (t *Erc20Token) TokenAddress() string  { return t.Address }
func (*Erc20Token) isTokenDetails()         {}
func (t *Erc721Token) TokenType() TokenType { return TokenTypeERC721 }
func (t *Erc721Token) TokenAddress() string { return t.Address }
func (*Erc721Token) isTokenDetails()        {}

// NewErc20Token builds fungible token details
func NewErc20Token(address, name, symbol string, decimals uint8) *Erc20Token {
	return &Erc20Token{
		TokenBase: TokenBase{Address: address, Name: name, Symbol: symbol},
		Decimals:  decimals,
		Type:      TokenTypeERC20,
	}
}

// NewErc721Token builds non-fungible token details
func NewErc721Token(address, name, symbol string) *Erc721Token {
	return &Erc721Token{
		TokenBase: TokenBase{Address: address, Name: name, Symbol: symbol},
		Type:      TokenTypeERC721,
	}
}
