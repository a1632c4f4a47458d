// Package hashing detects refereed games that end in the same position
// after the same number of plies.
package hashing

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// DuplicateDetector tracks final positions of refereed games. It is not
// safe for concurrent use; feed it from the goroutine that consumes
// results in input order.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a second, cheaper hash of the placement
	WeakHash uint64
	// Plies is the number of half-moves played
	Plies int
	// GameNum is the game the signature was first seen in
	GameNum int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]GameSignature),
	}
}

// CheckAndAdd checks whether an earlier game ended in the same position
// after the same number of plies. It returns that game's number, or 0 and
// records this game.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, plies, gameNum int) int {
	if board == nil {
		return 0
	}

	sig := GameSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
		Plies:    plies,
		GameNum:  gameNum,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.GameNum
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return 0
}

// signaturesMatch checks if two game signatures match.
func signaturesMatch(a, b GameSignature) bool {
	return a.Hash == b.Hash && a.WeakHash == b.WeakHash && a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
