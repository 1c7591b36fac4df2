package types

import (
	"bytes"
	"sort"
)

// OutputFlag is a single bit of OutputFeatures.Flags.
type OutputFlag uint8

const (
	OutputFlagCoinbase OutputFlag = 1 << iota
	OutputFlagBurned
)

// validOutputFlags is the set of bits a decoded OutputFeatures.Flags may
// legally set; anything outside it is a malformed wire record.
const validOutputFlags = OutputFlagCoinbase | OutputFlagBurned

// OutputFeatures carries the behavioural flags and maturity height of a
// TransactionOutput.
type OutputFeatures struct {
	Flags    OutputFlag
	Maturity uint64
}

// KernelFeature is a single bit of TransactionKernel.Features.
type KernelFeature uint8

const (
	KernelFeatureCoinbase KernelFeature = 1 << iota
	KernelFeatureBurned
)

const validKernelFeatures = KernelFeatureCoinbase | KernelFeatureBurned

// Signature is a Schnorr-style signature: a public nonce point and a
// signature scalar, both carried as opaque bytes (the core never does
// curve arithmetic on them).
type Signature struct {
	PublicNonce []byte
	Scalar      []byte
}

// TransactionOutput is the in-memory form of a decoded output record.
type TransactionOutput struct {
	Features   OutputFeatures
	Commitment []byte
	RangeProof []byte
	ScriptHash []byte
}

// TransactionInput is the in-memory form of a decoded input record.
type TransactionInput struct {
	Features   OutputFeatures
	Commitment []byte
	ScriptHash []byte
}

// TransactionKernel is the in-memory form of a decoded kernel record.
type TransactionKernel struct {
	Features      KernelFeature
	Excess        []byte
	ExcessSig     Signature
	FeeMicro      uint64
	LinkedKernel  BlockHash
	HasLinked     bool
	LockHeight    uint64
	MetaInfo      []byte
}

// AggregateBody is the canonical (sorted) collection of inputs,
// outputs and kernels that makes up a block's body.
type AggregateBody struct {
	Inputs  []TransactionInput
	Outputs []TransactionOutput
	Kernels []TransactionKernel
}

// NewAggregateBody builds a body and immediately sorts it into
// canonical order.
func NewAggregateBody(inputs []TransactionInput, outputs []TransactionOutput, kernels []TransactionKernel) AggregateBody {
	body := AggregateBody{Inputs: inputs, Outputs: outputs, Kernels: kernels}
	body.Sort()
	return body
}

// Sort canonically orders inputs, outputs and kernels by their
// commitment/excess bytes so that two bodies built from the same set
// of components are byte-identical regardless of wire order.
func (b *AggregateBody) Sort() {
	sort.Slice(b.Inputs, func(i, j int) bool {
		return bytes.Compare(b.Inputs[i].Commitment, b.Inputs[j].Commitment) < 0
	})
	sort.Slice(b.Outputs, func(i, j int) bool {
		return bytes.Compare(b.Outputs[i].Commitment, b.Outputs[j].Commitment) < 0
	})
	sort.Slice(b.Kernels, func(i, j int) bool {
		return bytes.Compare(b.Kernels[i].Excess, b.Kernels[j].Excess) < 0
	})
}
