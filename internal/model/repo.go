package model

// RepoReference is one normalized GitHub repository identity extracted from
// free-form user input. CanonicalURL is the dedup key.
type RepoReference struct {
	Owner        string `json:"owner"`
	Repo         string `json:"repo"`
	CanonicalURL string `json:"url"`
}

// ArtifactBundle holds everything fetched for one repository that gets fed
// to the model as analysis context. LanguageSummary and FilesBundle may be
// empty when their fetches fail; a failed metadata fetch drops the bundle
// entirely.
type ArtifactBundle struct {
	RepoName        string `json:"repo_name"`
	RepoURL         string `json:"repo_url"`
	LanguageSummary string `json:"language_summary"`
	FilesBundle     string `json:"files_bundle"`
}
