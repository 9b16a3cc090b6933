package domain

import (
	"chat-bridge/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const MaxSearchRadius = 10

var validate = validator.New()

type MatchQuality string

const (
	MatchExact    MatchQuality = "exact"
	MatchPrefix   MatchQuality = "prefix"
	MatchContains MatchQuality = "contains"
)

type MatchedField string

const (
	FieldName        MatchedField = "name"
	FieldNip05       MatchedField = "nip05"
	FieldDisplayName MatchedField = "display_name"
	FieldAbout       MatchedField = "about"
)

// UserSearchParams describes a search walking the social graph outwards from
// the searcher, one follow radius at a time.
type UserSearchParams struct {
	Query          string    `json:"query" validate:"required"`
	SearcherPubkey PublicKey `json:"searcher_pubkey" validate:"required"`
	RadiusStart    uint8     `json:"radius_start"`
	RadiusEnd      uint8     `json:"radius_end" validate:"gtefield=RadiusStart,lte=10"`
}

func (p UserSearchParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidSearchParams, err)
	}
	return nil
}

type UserSearchResult struct {
	Pubkey        PublicKey      `json:"pubkey"`
	Metadata      Metadata       `json:"metadata"`
	Radius        uint8          `json:"radius"`
	MatchQuality  MatchQuality   `json:"match_quality"`
	BestField     MatchedField   `json:"best_field"`
	MatchedFields []MatchedField `json:"matched_fields"`
}

type SearchTriggerKind string

const (
	SearchRadiusStarted   SearchTriggerKind = "radius_started"
	SearchResultsFound    SearchTriggerKind = "results_found"
	SearchRadiusCompleted SearchTriggerKind = "radius_completed"
	SearchRadiusCapped    SearchTriggerKind = "radius_capped"
	SearchRadiusTimeout   SearchTriggerKind = "radius_timeout"
	SearchCompleted       SearchTriggerKind = "search_completed"
	SearchError           SearchTriggerKind = "error"
)

// SearchUpdateTrigger is a tagged union. Only the fields belonging to Kind
// are meaningful; use the constructors below to build one.
type SearchUpdateTrigger struct {
	Kind                 SearchTriggerKind `json:"kind"`
	Radius               uint8             `json:"radius,omitempty"`
	TotalPubkeysSearched uint64            `json:"total_pubkeys_searched,omitempty"`
	Cap                  uint64            `json:"cap,omitempty"`
	Actual               uint64            `json:"actual,omitempty"`
	FinalRadius          uint8             `json:"final_radius,omitempty"`
	TotalResults         uint64            `json:"total_results,omitempty"`
	Message              string            `json:"message,omitempty"`
}

func RadiusStarted(radius uint8) SearchUpdateTrigger {
	return SearchUpdateTrigger{Kind: SearchRadiusStarted, Radius: radius}
}

func ResultsFound() SearchUpdateTrigger {
	return SearchUpdateTrigger{Kind: SearchResultsFound}
}

func RadiusCompleted(radius uint8, totalPubkeysSearched uint64) SearchUpdateTrigger {
	return SearchUpdateTrigger{Kind: SearchRadiusCompleted, Radius: radius, TotalPubkeysSearched: totalPubkeysSearched}
}

func RadiusCapped(radius uint8, cap, actual uint64) SearchUpdateTrigger {
	return SearchUpdateTrigger{Kind: SearchRadiusCapped, Radius: radius, Cap: cap, Actual: actual}
}

func RadiusTimeout(radius uint8) SearchUpdateTrigger {
	return SearchUpdateTrigger{Kind: SearchRadiusTimeout, Radius: radius}
}

func SearchCompletedTrigger(finalRadius uint8, totalResults uint64) SearchUpdateTrigger {
	return SearchUpdateTrigger{Kind: SearchCompleted, FinalRadius: finalRadius, TotalResults: totalResults}
}

func SearchErrorTrigger(message string) SearchUpdateTrigger {
	return SearchUpdateTrigger{Kind: SearchError, Message: message}
}

// UserSearchUpdate reports search progress. NewResults only holds the results
// found since the previous update, TotalResultCount is cumulative.
type UserSearchUpdate struct {
	Trigger          SearchUpdateTrigger `json:"trigger"`
	NewResults       []UserSearchResult  `json:"new_results"`
	TotalResultCount uint64              `json:"total_result_count"`
}

type UserSearchSubscription = Subscription[UserSearchResult, UserSearchUpdate]
type UserSearchStreamItem = StreamItem[UserSearchResult, UserSearchUpdate]
