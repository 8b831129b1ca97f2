package model

// EvidenceItem is the unified shape for corroborating material, whether it
// came from the fact-check index or the news-search fallback.
type EvidenceItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// Citation is the normalized reference shape returned to callers.
type Citation struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// FactCheckRecord is one flattened claim review. A single claim from the
// index may carry zero or many reviews, each becoming its own record.
type FactCheckRecord struct {
	ClaimText  string `json:"claim_text"`
	Publisher  string `json:"publisher"`
	Rating     string `json:"rating"`
	URL        string `json:"url"`
	ReviewDate string `json:"review_date,omitempty"`
}

// Claim mirrors one record of the fact-check index's claims:search response.
type Claim struct {
	Text        string        `json:"text"`
	ClaimReview []ClaimReview `json:"claimReview"`
}

type ClaimReview struct {
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Publisher     Publisher `json:"publisher"`
	TextualRating string    `json:"textualRating"`
	ReviewDate    string    `json:"reviewDate"`
}

type Publisher struct {
	Name string `json:"name"`
}

// Bundle is everything the evidence stage hands to the reasoner and the
// normalizer: unified evidence, preferred citations, flattened fact-check
// records, plus the raw index claims kept for logging.
type Bundle struct {
	Evidence         []EvidenceItem
	Citations        []Citation
	FactCheckRecords []FactCheckRecord
	RawClaims        []Claim
}
