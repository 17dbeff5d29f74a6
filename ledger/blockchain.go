package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const genesisPrevHash = "0"

var ErrEmptyChain = errors.New("blockchain is empty")

// Store persists blocks. Load returns them ordered by index.
type Store interface {
	Save(ctx context.Context, b Block) error
	Load(ctx context.Context) ([]Block, error)
}

type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	store  Store
}

// NewBlockchain creates an in-memory blockchain holding only the genesis
// block. The genesis block has index 0, previous hash "0" and an empty run.
func NewBlockchain() *Blockchain {
	bc := &Blockchain{}
	bc.blocks = append(bc.blocks, bc.genesis())
	return bc
}

// Open loads the chain kept in store and verifies it. An empty store is
// initialised with a genesis block. Blocks appended later are saved to store.
func Open(ctx context.Context, store Store) (*Blockchain, error) {
	blocks, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	bc := &Blockchain{blocks: blocks, store: store}
	if len(blocks) == 0 {
		genesis := bc.genesis()
		if err := store.Save(ctx, genesis); err != nil {
			return nil, fmt.Errorf("save genesis block: %w", err)
		}
		bc.blocks = append(bc.blocks, genesis)
		return bc, nil
	}
	if err := bc.Verify(); err != nil {
		return nil, fmt.Errorf("verify ledger: %w", err)
	}
	return bc, nil
}

func (bc *Blockchain) genesis() Block {
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  genesisPrevHash,
		Run:       Run{Source: "genesis"},
	}
	genesis.Hash = bc.calculateHash(genesis)
	return genesis
}

// Append adds run to the chain as a new block and saves it to the store,
// if any. The chain is left unchanged when saving fails.
func (bc *Blockchain) Append(ctx context.Context, run Run) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Run:       run,
	}
	newBlock.Hash = bc.calculateHash(newBlock)

	if err := bc.validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	if bc.store != nil {
		if err := bc.store.Save(ctx, newBlock); err != nil {
			return Block{}, fmt.Errorf("save block %d: %w", newBlock.Index, err)
		}
	}
	bc.blocks = append(bc.blocks, newBlock)
	return newBlock, nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// GetLatest returns the most recently added block in the blockchain.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, ErrEmptyChain
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return bc.blocks[index], nil
}

// Verify validates the integrity of the entire blockchain by checking the
// genesis block and each subsequent block's hash, index continuity and
// previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return ErrEmptyChain
	}
	genesis := bc.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != genesisPrevHash {
		return fmt.Errorf("invalid genesis block")
	}
	if genesis.Hash != bc.calculateHash(genesis) {
		return fmt.Errorf("invalid genesis hash")
	}
	for i := 1; i < len(bc.blocks); i++ {
		if err := bc.validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock checks index continuity, previous hash linkage and the
// block's own hash.
func (bc *Blockchain) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := bc.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash and JSON encoded run.
func (bc *Blockchain) calculateHash(block Block) string {
	runBytes, _ := json.Marshal(block.Run)
	data := fmt.Sprintf("%d%d%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(runBytes),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
