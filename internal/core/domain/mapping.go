package domain

// Mapping links one source attribute to one destination attribute for a destination
// type. Unique per (WorkspaceID, Source.ID, DestinationType).
type Mapping struct {
	ID              int64                `json:"id"`
	WorkspaceID     int64                `json:"workspace_id"`
	SourceType      AttributeType        `json:"source_type"`
	DestinationType AttributeType        `json:"destination_type"`
	Source          SourceAttribute      `json:"source"`
	Destination     DestinationAttribute `json:"destination"`
	Timestamps
}

// MappingUpsert carries the resolved identifiers written by a mapping upsert.
type MappingUpsert struct {
	WorkspaceID     int64
	SourceType      AttributeType
	DestinationType AttributeType
	SourceID        int64
	DestinationID   int64
}
