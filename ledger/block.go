package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Block is one entry of the chain.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Run       Run    `json:"run"`
}

// Run is the record of one analysis.
type Run struct {
	ID        string   `json:"id"`
	StartedAt int64    `json:"started_at"`
	Source    string   `json:"source"` // file path, or "random"
	Seed      int64    `json:"seed,omitempty"`
	Hands     []string `json:"hands"`
	Ranking   []string `json:"ranking"`
}

// NewRun creates a Run with a fresh random id.
func NewRun(source string, seed int64, hands, ranking []string) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().Unix(),
		Source:    source,
		Seed:      seed,
		Hands:     hands,
		Ranking:   ranking,
	}
}
