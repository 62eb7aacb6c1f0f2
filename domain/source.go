package domain

// Source is a configured news provider. Reference data owned by seeding,
// never mutated by ingestion.
type Source struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	BaseURL string `db:"base_url"`
	APIKey  string `db:"api_key"`
}

// Category is a provider-agnostic topic. Value is the opaque token used to
// build provider queries (e.g. "technology").
type Category struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Value string `db:"value"`
}

// SourcePair is one (source, category) combination driving a single adapter
// invocation.
type SourcePair struct {
	Source   Source
	Category Category
}
