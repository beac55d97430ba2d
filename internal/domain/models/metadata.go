package models

// ProposalResource is a link attached to proposal metadata
type ProposalResource struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// ProposalMedia holds optional images shown with a proposal
type ProposalMedia struct {
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	Logo   string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// ProposalMetadata is the off-chain JSON document a proposal's metadata URI points to
type ProposalMetadata struct {
	Title       string             `json:"title" yaml:"title"`
	Summary     string             `json:"summary" yaml:"summary"`
	Description string             `json:"description" yaml:"description"`
	Resources   []ProposalResource `json:"resources" yaml:"resources"`
	Media       *ProposalMedia     `json:"media,omitempty" yaml:"media,omitempty"`
}

// ProposalListItemMetadata is the subset of metadata shown in list views
type ProposalListItemMetadata struct {
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
}

// DaoMetadata is the off-chain JSON document describing a DAO
type DaoMetadata struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Avatar      string             `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Links       []ProposalResource `json:"links" yaml:"links"`
}

// DegradedReason explains why placeholder metadata was substituted
type DegradedReason string

const (
	// MetadataUnavailable: the content could not be fetched or parsed
	MetadataUnavailable DegradedReason = "unavailable"
	// MetadataUnsupportedLink: the metadata link is not a valid IPFS identifier
	MetadataUnsupportedLink DegradedReason = "unsupported link"
	// MetadataNotDefined: no metadata link was set
	MetadataNotDefined DegradedReason = "not defined"
)

// Placeholder proposal metadata
var (
	UnavailableProposalMetadata = ProposalMetadata{
		Title:       "(unavailable metadata)",
		Summary:     "(the proposal metadata is not available)",
		Description: "",
		Resources:   []ProposalResource{},
	}
	UnsupportedProposalMetadataLink = ProposalMetadata{
		Title:       "(unsupported metadata link)",
		Summary:     "(the metadata link is not supported)",
		Description: "",
		Resources:   []ProposalResource{},
	}
	EmptyProposalMetadata = ProposalMetadata{
		Title:       "(the proposal has no metadata)",
		Summary:     "(the current proposal does not have any content defined)",
		Description: "",
		Resources:   []ProposalResource{},
	}
)

// Placeholder DAO metadata
var (
	UnavailableDaoMetadata = DaoMetadata{
		Name:        "(unavailable metadata)",
		Description: "(the DAO metadata is not available)",
		Links:       []ProposalResource{},
	}
	UnsupportedDaoMetadataLink = DaoMetadata{
		Name:        "(unsupported metadata link)",
		Description: "(the metadata link is not supported)",
		Links:       []ProposalResource{},
	}
	EmptyDaoMetadata = DaoMetadata{
		Name:        "(the DAO has no metadata)",
		Description: "(the DAO did not define any content)",
		Links:       []ProposalResource{},
	}
)

// MetadataResult is either real metadata or a placeholder with the reason it was substituted
type MetadataResult[T any] struct {
	Metadata T
	Degraded bool
	Reason   DegradedReason
}

// OkMetadata wraps metadata that was fetched and parsed
func OkMetadata[T any](m T) MetadataResult[T] {
	return MetadataResult[T]{Metadata: m}
}

// DegradedMetadata wraps a placeholder
func DegradedMetadata[T any](reason DegradedReason, placeholder T) MetadataResult[T] {
	return MetadataResult[T]{Metadata: placeholder, Degraded: true, Reason: reason}
}

// ProposalPlaceholder returns the placeholder proposal metadata for a reason
func ProposalPlaceholder(reason DegradedReason) ProposalMetadata {
	switch reason {
	case MetadataUnsupportedLink:
		return UnsupportedProposalMetadataLink
	case MetadataNotDefined:
		return EmptyProposalMetadata
	default:
		return UnavailableProposalMetadata
	}
}

// DaoPlaceholder returns the placeholder DAO metadata for a reason
func DaoPlaceholder(reason DegradedReason) DaoMetadata {
	switch reason {
	case MetadataUnsupportedLink:
		return UnsupportedDaoMetadataLink
	case MetadataNotDefined:
		return EmptyDaoMetadata
	default:
		return UnavailableDaoMetadata
	}
}
