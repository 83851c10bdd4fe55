package wavm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const instructionLeafPrefix = "Instruction merkle tree:"

// instructionMerkleRoot folds instruction leaf hashes into a balanced
// binary keccak tree, padding the frontier with the zero hash. The shape
// depends only on the leaf count, so equal bodies always share a root.
func instructionMerkleRoot(leaves []common.Hash) common.Hash {
	if len(leaves) == 0 {
		return crypto.Keccak256Hash([]byte(instructionLeafPrefix))
	}
	layer := make([]common.Hash, len(leaves))
	copy(layer, leaves)

	var zero common.Hash
	for len(layer) > 1 {
		if len(layer)%2 == 1 {
			layer = append(layer, zero)
		}
		next := layer[:0]
		for i := 0; i < len(layer); i += 2 {
			h := crypto.Keccak256Hash([]byte(instructionLeafPrefix), layer[i][:], layer[i+1][:])
			next = append(next, h)
		}
		layer = next
	}
	return layer[0]
}
