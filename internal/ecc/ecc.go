// Package ecc frames payload bytes with systematic Reed-Solomon parity
// over GF(256).  Encoding appends k parity bytes; decoding corrects up
// to ⌊k/2⌋ byte errors at unknown positions using the Berlekamp-Welch
// implementation in github.com/vivint/infectious.
package ecc

import (
	"errors"
	"fmt"

	"github.com/vivint/infectious"
)

// ErrUncorrectable is returned when a codeword carries more byte
// errors than the parity can repair.
var ErrUncorrectable = errors.New("ecc: too many errors, codeword uncorrectable")

// Codec encodes and decodes codewords of a fixed geometry: dataLen
// payload bytes followed by parity parity bytes.  Safe for concurrent
// use.
type Codec struct {
	fec     *infectious.FEC
	dataLen int
	parity  int
}

// NewCodec builds a codec for dataLen payload bytes and parity parity
// bytes.  The codeword length dataLen+parity may not exceed 255.
func NewCodec(dataLen, parity int) (*Codec, error) {
	if dataLen <= 0 || parity <= 0 {
		return nil, fmt.Errorf("ecc: invalid geometry %d+%d", dataLen, parity)
	}
	total := dataLen + parity
	if total > 255 {
		return nil, fmt.Errorf("ecc: codeword length %d exceeds GF(256) limit", total)
	}
	fec, err := infectious.NewFEC(dataLen, total)
	if err != nil {
		return nil, fmt.Errorf("ecc: %w", err)
	}
	return &Codec{fec: fec, dataLen: dataLen, parity: parity}, nil
}

// DataLen returns the payload length in bytes.
func (c *Codec) DataLen() int { return c.dataLen }

// CodewordLen returns the full codeword length in bytes.
func (c *Codec) CodewordLen() int { return c.dataLen + c.parity }

// Encode returns the codeword [data || parity] for the given payload.
func (c *Codec) Encode(data []byte) ([]byte, error) {
	if len(data) != c.dataLen {
		return nil, fmt.Errorf("ecc: payload is %d bytes, want %d", len(data), c.dataLen)
	}
	out := make([]byte, c.CodewordLen())
	err := c.fec.Encode(data, func(s infectious.Share) {
		out[s.Number] = s.Data[0]
	})
	if err != nil {
		return nil, fmt.Errorf("ecc: encode: %w", err)
	}
	return out, nil
}

// Decode corrects up to ⌊parity/2⌋ byte errors in codeword and returns
// the payload bytes.  The input slice is not modified.
func (c *Codec) Decode(codeword []byte) ([]byte, error) {
	if len(codeword) != c.CodewordLen() {
		return nil, fmt.Errorf("ecc: codeword is %d bytes, want %d", len(codeword), c.CodewordLen())
	}
	shares := make([]infectious.Share, len(codeword))
	for i, b := range codeword {
		shares[i] = infectious.Share{Number: i, Data: []byte{b}}
	}
	if err := c.fec.Correct(shares); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUncorrectable, err)
	}
	data := make([]byte, c.dataLen)
	for _, s := range shares[:c.dataLen] {
		data[s.Number] = s.Data[0]
	}
	return data, nil
}
