package ledger

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/luca-patrignani/mental-dice/fairness"
)

// Chain is the hash-chained log of a session's exchanges. It is safe for
// concurrent use.
type Chain struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewChain creates a chain holding only the genesis block. The genesis block
// has index 0 and previous hash "0".
func NewChain() *Chain {
	c := &Chain{
		blocks: make([]Block, 0),
		now:    time.Now,
	}
	genesis := Block{
		Index:     0,
		Timestamp: c.now().Unix(),
		PrevHash:  "0",
		Record:    Record{Label: genesisLabel},
	}
	genesis.Hash = calculateHash(genesis)
	c.blocks = append(c.blocks, genesis)
	return c
}

// Append links a new block holding rec to the end of the chain and returns it.
func (c *Chain) Append(rec Record) (Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	latest := c.blocks[len(c.blocks)-1]
	block := Block{
		Index:     latest.Index + 1,
		Timestamp: c.now().Unix(),
		PrevHash:  latest.Hash,
		Record:    rec,
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	c.blocks = append(c.blocks, block)
	return block, nil
}

// Latest returns the most recently appended block.
func (c *Chain) Latest() Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks[len(c.blocks)-1]
}

// GetByIndex returns the block at index.
func (c *Chain) GetByIndex(index int) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return c.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// Records returns the records of all blocks after genesis, in order.
func (c *Chain) Records() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recs := make([]Record, 0, len(c.blocks)-1)
	for _, b := range c.blocks[1:] {
		recs = append(recs, b.Record)
	}
	return recs
}

// Verify validates the genesis block, the linkage and hash of every block,
// and the commitment held by every record.
func (c *Chain) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.blocks) == 0 {
		return fmt.Errorf("empty chain")
	}
	if c.blocks[0].PrevHash != "0" || c.blocks[0].Record.Label != genesisLabel {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(c.blocks); i++ {
		if err := validateBlock(c.blocks[i], c.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
		if err := verifyRecord(c.blocks[i].Record); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

func verifyRecord(rec Record) error {
	if rec.Range < 1 {
		return fmt.Errorf("invalid range %d", rec.Range)
	}
	key, err := hex.DecodeString(rec.Key)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	if !fairness.Verify(key, rec.Value, rec.Digest) {
		return fairness.ErrVerificationFailed
	}
	if rec.Result != (rec.Value+rec.Contribution)%rec.Range {
		return fmt.Errorf("result %d does not combine value %d and contribution %d", rec.Result, rec.Value, rec.Contribution)
	}
	return nil
}

// calculateHash computes the SHA3-256 of a block from its index, timestamp,
// previous hash and JSON encoded record.
func calculateHash(block Block) string {
	recordBytes, _ := json.Marshal(block.Record)
	data := fmt.Sprintf("%d%d%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(recordBytes),
	)
	hash := sha3.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
