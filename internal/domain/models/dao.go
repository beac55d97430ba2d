package models

// InstalledPlugin is a plugin installation listed on a DAO
type InstalledPlugin struct {
	InstanceAddress string `json:"instanceAddress" yaml:"instanceAddress"`
	ID              string `json:"id" yaml:"id"`
	Release         int    `json:"release" yaml:"release"`
	Build           int    `json:"build" yaml:"build"`
}

// DaoListItem is the summary view of a DAO
type DaoListItem struct {
	Address          string            `json:"address" yaml:"address"`
	EnsDomain        string            `json:"ensDomain" yaml:"ensDomain"`
	Metadata         DaoMetadata       `json:"metadata" yaml:"metadata"`
	MetadataDegraded bool              `json:"metadataDegraded,omitempty" yaml:"metadataDegraded,omitempty"`
	Plugins          []InstalledPlugin `json:"plugins" yaml:"plugins"`
}
