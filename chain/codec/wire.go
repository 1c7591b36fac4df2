// Package codec translates protocol-buffer-shaped wire records into the
// in-memory types the sync core and chain store operate on. The sync
// core never decodes wire bytes itself, it only ever sees the
// already-converted types.Block / types.HistoricalBlock this package
// produces.
package codec

import (
	"fmt"

	"github.com/ironveil-chain/ironsync/chain/types"
)

// The wire* types below are the Go shape of decoded protobuf messages.
// A real deployment generates these with protoc-gen-go from a .proto
// schema; they are hand-declared here because no .proto file ships
// with this module, but their field shapes and the conversions below
// follow google.golang.org/protobuf's generated-struct conventions
// (plain structs, byte slices for opaque fields, pointer fields for
// "optional").

type WireSignature struct {
	PublicNonce []byte
	Signature   []byte
}

type WireOutputFeatures struct {
	Flags    uint32
	Maturity uint64
}

type WireTransactionOutput struct {
	Features   *WireOutputFeatures
	Commitment []byte
	RangeProof []byte
	ScriptHash []byte
}

type WireTransactionInput struct {
	Features   *WireOutputFeatures
	Commitment []byte
	ScriptHash []byte
}

type WireTransactionKernel struct {
	Features     uint32
	Excess       []byte
	ExcessSig    *WireSignature
	Fee          uint64
	LinkedKernel []byte
	LockHeight   uint64
	MetaInfo     []byte
}

type WireAggregateBody struct {
	Inputs  []*WireTransactionInput
	Outputs []*WireTransactionOutput
	Kernels []*WireTransactionKernel
}

// ConvertSignature converts a wire signature. Failure is a
// human-readable error, never a panic.
func ConvertSignature(sig *WireSignature) (types.Signature, error) {
	if sig == nil {
		return types.Signature{}, fmt.Errorf("excess_sig not provided")
	}
	if len(sig.PublicNonce) == 0 {
		return types.Signature{}, fmt.Errorf("could not get public nonce")
	}
	if len(sig.Signature) == 0 {
		return types.Signature{}, fmt.Errorf("could not get signature")
	}
	return types.Signature{
		PublicNonce: append([]byte(nil), sig.PublicNonce...),
		Scalar:      append([]byte(nil), sig.Signature...),
	}, nil
}

// ConvertOutputFeatures converts wire output features, rejecting
// unrecognised flag bits as a fatal-for-that-record error.
func ConvertOutputFeatures(f *WireOutputFeatures) (types.OutputFeatures, error) {
	if f == nil {
		return types.OutputFeatures{}, fmt.Errorf("transaction output features not provided")
	}
	flags := types.OutputFlag(f.Flags)
	if f.Flags&^uint32(flagsMask(types.OutputFlagCoinbase|types.OutputFlagBurned)) != 0 {
		return types.OutputFeatures{}, fmt.Errorf("invalid or unrecognised output flags: %#x", f.Flags)
	}
	return types.OutputFeatures{Flags: flags, Maturity: f.Maturity}, nil
}

func flagsMask[T ~uint8](v T) uint8 { return uint8(v) }

// ConvertTransactionOutput converts a wire output record.
func ConvertTransactionOutput(o *WireTransactionOutput) (types.TransactionOutput, error) {
	if o == nil {
		return types.TransactionOutput{}, fmt.Errorf("transaction output not provided")
	}
	features, err := ConvertOutputFeatures(o.Features)
	if err != nil {
		return types.TransactionOutput{}, err
	}
	if len(o.Commitment) == 0 {
		return types.TransactionOutput{}, fmt.Errorf("output commitment not provided")
	}
	return types.TransactionOutput{
		Features:   features,
		Commitment: append([]byte(nil), o.Commitment...),
		RangeProof: append([]byte(nil), o.RangeProof...),
		ScriptHash: append([]byte(nil), o.ScriptHash...),
	}, nil
}

// ConvertTransactionInput converts a wire input record.
func ConvertTransactionInput(in *WireTransactionInput) (types.TransactionInput, error) {
	if in == nil {
		return types.TransactionInput{}, fmt.Errorf("transaction input not provided")
	}
	features, err := ConvertOutputFeatures(in.Features)
	if err != nil {
		return types.TransactionInput{}, err
	}
	if len(in.Commitment) == 0 {
		return types.TransactionInput{}, fmt.Errorf("input commitment not provided")
	}
	return types.TransactionInput{
		Features:   features,
		Commitment: append([]byte(nil), in.Commitment...),
		ScriptHash: append([]byte(nil), in.ScriptHash...),
	}, nil
}

// ConvertTransactionKernel converts a wire kernel record.
func ConvertTransactionKernel(k *WireTransactionKernel) (types.TransactionKernel, error) {
	if k == nil {
		return types.TransactionKernel{}, fmt.Errorf("transaction kernel not provided")
	}
	if k.Features&^uint32(flagsMask(types.KernelFeatureCoinbase|types.KernelFeatureBurned)) != 0 {
		return types.TransactionKernel{}, fmt.Errorf("invalid or unrecognised kernel feature flag: %#x", k.Features)
	}
	if len(k.Excess) == 0 {
		return types.TransactionKernel{}, fmt.Errorf("kernel excess not provided")
	}
	excessSig, err := ConvertSignature(k.ExcessSig)
	if err != nil {
		return types.TransactionKernel{}, fmt.Errorf("excess_sig could not be converted: %w", err)
	}

	out := types.TransactionKernel{
		Features:   types.KernelFeature(k.Features),
		Excess:     append([]byte(nil), k.Excess...),
		ExcessSig:  excessSig,
		FeeMicro:   k.Fee,
		LockHeight: k.LockHeight,
		MetaInfo:   append([]byte(nil), k.MetaInfo...),
	}
	if len(k.LinkedKernel) > 0 {
		hash, err := types.BlockHashFromBytes(k.LinkedKernel)
		if err != nil {
			return types.TransactionKernel{}, fmt.Errorf("linked_kernel: %w", err)
		}
		out.LinkedKernel = hash
		out.HasLinked = true
	}
	return out, nil
}

// ConvertAggregateBody converts a wire body, converting each component
// list with first-error-wins semantics and sorting the result into
// canonical order.
func ConvertAggregateBody(wb *WireAggregateBody) (types.AggregateBody, error) {
	if wb == nil {
		return types.AggregateBody{}, fmt.Errorf("aggregate body not provided")
	}

	inputs := make([]types.TransactionInput, 0, len(wb.Inputs))
	for i, wi := range wb.Inputs {
		in, err := ConvertTransactionInput(wi)
		if err != nil {
			return types.AggregateBody{}, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}

	outputs := make([]types.TransactionOutput, 0, len(wb.Outputs))
	for i, wo := range wb.Outputs {
		out, err := ConvertTransactionOutput(wo)
		if err != nil {
			return types.AggregateBody{}, fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, out)
	}

	kernels := make([]types.TransactionKernel, 0, len(wb.Kernels))
	for i, wk := range wb.Kernels {
		k, err := ConvertTransactionKernel(wk)
		if err != nil {
			return types.AggregateBody{}, fmt.Errorf("kernel %d: %w", i, err)
		}
		kernels = append(kernels, k)
	}

	return types.NewAggregateBody(inputs, outputs, kernels), nil
}
