// Package txmanifest provides a Go implementation of the transaction
// manifest toolkit for Radix-style ledgers.
//
// A manifest is the list of instructions a transaction executes: worktop
// and auth zone moves, calls to components and packages, and resource
// operations. This library allows you to:
//   - Parse, print, compile and decompile manifests in text, JSON and binary
//   - Build manifests programmatically with producer handles
//   - Collapse low-level calls into high-level instructions and back
//   - Analyze which accounts, networks and resources a manifest touches
//
// # Basic Usage
//
// Create a builder, add instructions and build:
//
//	account, _ := txmanifest.NewComponent(accountAddr)
//
//	b := txmanifest.New(txmanifest.WithBuilderNetwork(txmanifest.NetworkStokenet))
//	b.Call(account.MustInvoke("lock_fee", txmanifest.DecimalFromInt(10)))
//	b.Call(account.MustInvoke("withdraw", xrdAddr, txmanifest.DecimalFromInt(100)))
//	bucket := b.TakeAllFromWorktop(xrdAddr)
//	b.Call(other.MustInvoke("try_deposit_or_abort", bucket, txmanifest.None()))
//
//	m, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Text, or the binary form signed into a transaction
//	fmt.Print(m.String())
//	payload, err := txmanifest.CompileManifest(m)
//
// # Values
//
// Instruction operands are Values: a sealed set of 32 kinds. The basic kinds
// (integers, strings, Enum, Array, Tuple, Map) are structural. The domain
// kinds (addresses, decimals, buckets, proofs, non-fungible ids, blobs) are
// carried on the wire as custom-tagged payloads. Bytes and NonFungibleGlobalId
// are aliases of Array<U8> and Tuple(ResourceAddress, NonFungibleLocalId).
//
// # Instructions and Aliases
//
// Low-level instructions have an opcode in the binary form. High-level
// instructions such as CREATE_ACCOUNT or MINT_FUNGIBLE are aliases of a
// specific CALL_FUNCTION or CALL_METHOD. Alias recognizes those calls and
// ToLowLevel expands them again. Parsing and decompiling alias by default;
// see WithAliasing.
//
// # Transient Identifiers
//
// Buckets, proofs, address reservations and named addresses are numbered in
// instruction order. Text names them; a ConversionContext maps names to ids
// during conversion.
//
// # Analysis
//
// AnalyzeManifest reports the network, addresses, account interactions,
// withdrawals, deposits and missing blobs of a manifest. Deposits of
// everything on the worktop are predicted from an ExecutionTrace.
package txmanifest
