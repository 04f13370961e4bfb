package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/akcotes/simple-rlp/pkg/rlp"
)

// hexBytes is a byte slice which unmarshals from a hex string, with or
// without a 0x prefix.
type hexBytes []byte

func (h *hexBytes) UnmarshalYAML(unmarshal func(interface{}) error) error {
	str := ""
	if err := unmarshal(&str); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(strings.TrimPrefix(str, "0x"))
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

func (h hexBytes) String() string {
	return hex.EncodeToString(h)
}

// transaction is a legacy Ethereum transaction. Its nine fields are RLP
// encoded in declaration order.
type transaction struct {
	Nonce    uint32   `yaml:"nonce"`
	GasPrice uint32   `yaml:"gasPrice"`
	GasLimit uint32   `yaml:"gasLimit"`
	To       hexBytes `yaml:"to"`
	Value    hexBytes `yaml:"value"`
	Data     hexBytes `yaml:"data"`
	V        hexBytes `yaml:"v"`
	R        hexBytes `yaml:"r"`
	S        hexBytes `yaml:"s"`
}

// sampleTransaction returns the fixture the demo encodes when no fixture
// file is given: a transfer with an unsigned signature placeholder.
func sampleTransaction() *transaction {
	return &transaction{
		Nonce:    0,
		GasPrice: 1000000,
		GasLimit: 1000000000,
		To:       mustHex("e0defb92145fef3c3a945637705fafd3aa74a241"),
		Value:    mustHex("de0b6b3a76400000"),
		Data:     mustHex("00000000000000000000000000000000000000000001"),
	}
}

func mustHex(s string) hexBytes {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return decoded
}

// loadTransaction reads a transaction fixture from a YAML file.
func loadTransaction(path string) (*transaction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tx := &transaction{}
	if err := yaml.Unmarshal(content, tx); err != nil {
		return nil, fmt.Errorf("parsing transaction fixture %s: %w", path, err)
	}
	return tx, nil
}

// elements lays the transaction fields out in their RLP encoding order.
func (t *transaction) elements() ([]*rlp.Element, error) {
	nonce, err := uint32Element(t.Nonce)
	if err != nil {
		return nil, err
	}
	gasPrice, err := uint32Element(t.GasPrice)
	if err != nil {
		return nil, err
	}
	gasLimit, err := uint32Element(t.GasLimit)
	if err != nil {
		return nil, err
	}
	return []*rlp.Element{
		nonce,
		gasPrice,
		gasLimit,
		rlp.ByteStringElement(t.To),
		rlp.ByteStringElement(t.Value),
		rlp.ByteStringElement(t.Data),
		rlp.ByteStringElement(t.V),
		rlp.ByteStringElement(t.R),
		rlp.ByteStringElement(t.S),
	}, nil
}

func uint32Element(v uint32) (*rlp.Element, error) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, v)
	return rlp.IntElement(4, data)
}
