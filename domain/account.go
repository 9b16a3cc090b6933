package domain

import "time"

// Account is the local identity a feed is attached to.
type Account struct {
	Pubkey         PublicKey `json:"pubkey"`
	ExternalSigner bool      `json:"external_signer"`
	CreatedAt      time.Time `json:"created_at"`
}

// Metadata is the subset of a kind-0 profile the bridge exposes.
type Metadata struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	About       string `json:"about,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Nip05       string `json:"nip05,omitempty"`
}
