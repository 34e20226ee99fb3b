package planner

import (
	"encoding/json"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/alexanderramin/housewright/internal/domain"
)

// Fingerprint returns a CIDv1 (raw codec, sha2-256) over the plan's JSON
// encoding. Plans hold no maps, so the encoding is canonical and equal
// plans always share a fingerprint.
func Fingerprint(p *domain.Plan) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("hash plan: %w", err)
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}
