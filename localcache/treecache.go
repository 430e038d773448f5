package localcache

import (
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zkairdrop/claim-service/claimtree"
	"golang.org/x/sync/singleflight"
)

// TreeCache keeps built merkle trees keyed by the digest of the allocation they come from.
type TreeCache interface {
	GetOrBuild(digest common.Hash, build func() *claimtree.MerkleTree) *claimtree.MerkleTree
	Len() int
}

// treeCacheImpl implements the TreeCache interface
type treeCacheImpl struct {
	trees *lru.Cache[common.Hash, *claimtree.MerkleTree]
	group singleflight.Group
}

// noTreeCache builds a new tree on every call
type noTreeCache struct{}

// NewTreeCache creates a cache holding up to size trees. A size of 0 disables caching.
func NewTreeCache(size int) (TreeCache, error) {
	if size <= 0 {
		log.Info("merkle tree cache disabled")
		return noTreeCache{}, nil
	}
	trees, err := lru.New[common.Hash, *claimtree.MerkleTree](size)
	if err != nil {
		log.Errorf("init merkle tree cache err[%v]", err)
		return nil, err
	}
	return &treeCacheImpl{trees: trees}, nil
}

// GetOrBuild returns the cached tree for digest, building it at most once for concurrent callers.
func (c *treeCacheImpl) GetOrBuild(digest common.Hash, build func() *claimtree.MerkleTree) *claimtree.MerkleTree {
	if tree, ok := c.trees.Get(digest); ok {
		return tree
	}
	v, _, _ := c.group.Do(digest.Hex(), func() (interface{}, error) {
		if tree, ok := c.trees.Get(digest); ok {
			return tree, nil
		}
		tree := build()
		c.trees.Add(digest, tree)
		log.Debugf("merkle tree %s cached, leaves: %d", digest.Hex(), tree.Len())
		return tree, nil
	})
	return v.(*claimtree.MerkleTree)
}

func (c *treeCacheImpl) Len() int {
	return c.trees.Len()
}

func (noTreeCache) GetOrBuild(_ common.Hash, build func() *claimtree.MerkleTree) *claimtree.MerkleTree {
	return build()
}

func (noTreeCache) Len() int {
	return 0
}
