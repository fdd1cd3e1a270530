package ledger

// Block is a single entry of the chain.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Record    Record `json:"record"`
}

// Record describes one completed commit-reveal exchange.
type Record struct {
	RoundID      string `json:"round_id"`
	Label        string `json:"label"`
	Range        int    `json:"range"`
	Digest       string `json:"digest"`
	Key          string `json:"key"` // hex encoded
	Value        int    `json:"value"`
	Contribution int    `json:"contribution"`
	Result       int    `json:"result"`
	Verified     bool   `json:"verified"`
}

const genesisLabel = "genesis"
