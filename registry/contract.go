// Package registry implements the asset registry contract: CRUD, ownership
// transfer and range listing over vehicle records in the world state. Every
// write goes through the canonical encoder so that all peers executing the
// same transaction commit byte-identical state.
package registry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"go.uber.org/zap"

	"example.com/chaincode/assetregistry/internal/canonjson"
	"example.com/chaincode/assetregistry/internal/statestore"
)

// AssetContract manages the Absent -> Exists -> Absent lifecycle of assets.
// It holds no state of its own between invocations; the world state owns
// every record, and concurrent transactions on the same keys are resolved
// by the ledger's conflict detection, not here.
type AssetContract struct {
	contractapi.Contract
	log *zap.Logger
}

// NewAssetContract returns a contract logging through log. A nil log
// disables logging.
func NewAssetContract(log *zap.Logger) *AssetContract {
	if log == nil {
		log = zap.NewNop()
	}
	c := &AssetContract{log: log}
	c.UnknownTransaction = c.unknownTransaction
	return c
}

// InitLedger populates the ledger with the seed assets. It does not check
// prior existence: re-running overwrites the seed keys.
func (c *AssetContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
	store := statestore.New(ctx.GetStub())
	for i := range seedAssets {
		if err := putAsset(store, &seedAssets[i]); err != nil {
			return err
		}
	}
	c.log.Info("ledger seeded", zap.Int("assets", len(seedAssets)))
	return nil
}

// CreateAsset stores a new asset parsed from assetJSON. The id must not be
// in use.
func (c *AssetContract) CreateAsset(ctx contractapi.TransactionContextInterface, assetJSON string) error {
	asset, err := ParseAsset(assetJSON)
	if err != nil {
		return err
	}

	store := statestore.New(ctx.GetStub())
	existing, err := store.Get(asset.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("asset %s: %w", asset.ID, ErrAlreadyExists)
	}

	if err := putAsset(store, asset); err != nil {
		return err
	}
	c.log.Info("asset created", zap.String("id", asset.ID), zap.String("owner", asset.Owner))
	return nil
}

// ReadAsset returns the stored value for id verbatim. Well-formed assets
// come back as their canonical JSON; values that predate the canonical
// encoding are passed through untouched rather than rejected.
func (c *AssetContract) ReadAsset(ctx contractapi.TransactionContextInterface, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: id is required", ErrMalformed)
	}

	b, err := statestore.New(ctx.GetStub()).Get(id)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}
	return string(b), nil
}

// UpdateAsset overwrites an existing asset with the record parsed from
// assetJSON. This is a full overwrite, not a merge: the stored record
// becomes exactly the input.
func (c *AssetContract) UpdateAsset(ctx contractapi.TransactionContextInterface, assetJSON string) error {
	asset, err := ParseAsset(assetJSON)
	if err != nil {
		return err
	}

	store := statestore.New(ctx.GetStub())
	existing, err := store.Get(asset.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("asset %s: %w", asset.ID, ErrNotFound)
	}

	if err := putAsset(store, asset); err != nil {
		return err
	}
	c.log.Info("asset updated", zap.String("id", asset.ID))
	return nil
}

// DeleteAsset removes an existing asset.
func (c *AssetContract) DeleteAsset(ctx contractapi.TransactionContextInterface, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrMalformed)
	}

	store := statestore.New(ctx.GetStub())
	existing, err := store.Get(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}

	if err := store.Delete(id); err != nil {
		return err
	}
	c.log.Info("asset deleted", zap.String("id", id))
	return nil
}

// AssetExists reports whether id is a live key.
func (c *AssetContract) AssetExists(ctx contractapi.TransactionContextInterface, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, fmt.Errorf("%w: id is required", ErrMalformed)
	}

	b, err := statestore.New(ctx.GetStub()).Get(id)
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// TransferAsset sets the owner of id to newOwner and returns the prior
// owner. Read-modify-write with no local concurrency check: conflicting
// transfers are left to the ledger's conflict detection.
func (c *AssetContract) TransferAsset(ctx contractapi.TransactionContextInterface, id string, newOwner string) (string, error) {
	id = strings.TrimSpace(id)
	newOwner = strings.TrimSpace(newOwner)
	if id == "" {
		return "", fmt.Errorf("%w: id is required", ErrMalformed)
	}
	if newOwner == "" {
		return "", fmt.Errorf("%w: newOwner is required", ErrMalformed)
	}

	store := statestore.New(ctx.GetStub())
	b, err := store.Get(id)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}

	var asset Asset
	if err := json.Unmarshal(b, &asset); err != nil {
		return "", fmt.Errorf("asset %s: %w: %v", id, ErrMalformed, err)
	}

	oldOwner := asset.Owner
	asset.Owner = newOwner
	if err := putAsset(store, &asset); err != nil {
		return "", err
	}

	c.log.Info("asset transferred",
		zap.String("id", id),
		zap.String("from", oldOwner),
		zap.String("to", newOwner))
	return oldOwner, nil
}

// GetAllAssets returns every record in the contract's namespace in store
// key order. Entries that do not decode as assets are returned as raw text
// instead of failing the whole listing.
func (c *AssetContract) GetAllAssets(ctx contractapi.TransactionContextInterface) ([]*Record, error) {
	it, err := statestore.New(ctx.GetStub()).Scan("", "")
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var records []*Record
	for {
		kv, err := it.Next()
		if err != nil {
			return nil, err
		}
		if kv == nil {
			break
		}

		var asset Asset
		if err := json.Unmarshal(kv.Value, &asset); err != nil {
			records = append(records, &Record{Raw: string(kv.Value)})
			continue
		}
		records = append(records, &Record{Asset: &asset})
	}
	return records, nil
}

// putAsset is the single write path: canonical encoding, then Put under the
// asset's id.
func putAsset(store *statestore.Store, asset *Asset) error {
	b, err := canonjson.Marshal(asset)
	if err != nil {
		return fmt.Errorf("encode asset %s: %w", asset.ID, err)
	}
	return store.Put(asset.ID, b)
}
