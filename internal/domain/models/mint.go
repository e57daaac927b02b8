package models

import "time"

// OutcomeKind classifies the result of processing one recipient
type OutcomeKind string

const (
	// OutcomeMinted means a mint transaction was confirmed with status 1
	OutcomeMinted OutcomeKind = "MINTED"
	// OutcomeAlreadyHeld means the recipient already held exactly one token
	OutcomeAlreadyHeld OutcomeKind = "ALREADY_HELD"
	// OutcomeAlreadyHeldMultiple means the recipient held more than one token
	OutcomeAlreadyHeldMultiple OutcomeKind = "ALREADY_HELD_MULTIPLE"
	// OutcomeFailed covers reverts and every error along the mint path
	OutcomeFailed OutcomeKind = "FAILED"
)

// MintOutcome is the classified result for a single recipient.
type MintOutcome struct {
	// Address is the checksummed recipient address
	Address string `json:"address" yaml:"address"`

	// Kind classifies what happened
	Kind OutcomeKind `json:"kind" yaml:"kind"`

	// TxHash is set only for OutcomeMinted
	TxHash string `json:"txHash,omitempty" yaml:"tx_hash,omitempty"`

	// Reason is set only for OutcomeFailed
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Success reports whether the outcome counts toward the success tally.
// Holding exactly one token is treated as already satisfied, not a failure.
func (o MintOutcome) Success() bool {
	return o.Kind == OutcomeMinted || o.Kind == OutcomeAlreadyHeld
}

// Failed reports whether the outcome counts toward the failure tally.
func (o MintOutcome) Failed() bool {
	return o.Kind == OutcomeFailed
}

// MintReceipt is the confirmation result for a broadcast mint transaction.
type MintReceipt struct {
	TxHash      string
	Status      uint64
	BlockNumber uint64
	GasUsed     uint64
}

// Reverted reports whether the transaction was mined but reverted.
func (r *MintReceipt) Reverted() bool {
	return r.Status == 0
}

// RunSummary aggregates one drop run.
type RunSummary struct {
	// Contract is the checksummed drop contract address
	Contract string `json:"contract" yaml:"contract"`

	// ChainID is the chain the run executed against
	ChainID uint64 `json:"chainId" yaml:"chain_id"`

	// Sender is the checksummed minting account
	Sender string `json:"sender" yaml:"sender"`

	// StartNonce is the pending nonce fetched at the start of the run
	StartNonce uint64 `json:"startNonce" yaml:"start_nonce"`

	// EndNonce is the local nonce after the last processed recipient
	EndNonce uint64 `json:"endNonce" yaml:"end_nonce"`

	Processed int `json:"processed" yaml:"processed"`
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`

	StartedAt  time.Time `json:"startedAt" yaml:"started_at"`
	FinishedAt time.Time `json:"finishedAt" yaml:"finished_at"`

	// Outcomes holds one entry per processed recipient, in input order
	Outcomes []MintOutcome `json:"outcomes" yaml:"outcomes"`
}

// Minted returns the outcomes that produced a confirmed mint transaction.
func (s *RunSummary) Minted() []MintOutcome {
	var minted []MintOutcome
	for _, o := range s.Outcomes {
		if o.Kind == OutcomeMinted {
			minted = append(minted, o)
		}
	}
	return minted
}

// Failures returns the outcomes that count as failures.
func (s *RunSummary) Failures() []MintOutcome {
	var failures []MintOutcome
	for _, o := range s.Outcomes {
		if o.Failed() {
			failures = append(failures, o)
		}
	}
	return failures
}
